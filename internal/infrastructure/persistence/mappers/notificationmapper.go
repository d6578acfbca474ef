package mappers

import (
	"time"

	"vox/internal/domain/notification"
	vo "vox/internal/domain/notification/valueobjects"
	"vox/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) *notification.Notification
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:         n.ID(),
		UserID:     n.UserID(),
		FeedbackID: n.FeedbackID(),
		Title:      n.Title(),
		Message:    n.Message(),
		Severity:   n.Severity().String(),
		Read:       n.IsRead(),
		CreatedAt:  n.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) *notification.Notification {
	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.FeedbackID,
		model.Title,
		model.Message,
		vo.Severity(model.Severity),
		model.Read,
		time.UnixMilli(model.CreatedAt),
	)
}
