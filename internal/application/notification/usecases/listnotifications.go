package usecases

import (
	"context"

	"vox/internal/application/notification/dto"
	"vox/internal/domain/notification"
	"vox/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Limit      int
	Offset     int
}

type ListNotificationsResult struct {
	Items       []dto.NotificationDTO
	Total       int64
	UnreadCount int64
}

const defaultInboxLimit = 50

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultInboxLimit
	}

	items, total, err := uc.notificationRepo.ListByUserID(ctx, query.UserID, query.UnreadOnly, limit, query.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, err
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.NotificationDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, dto.ToNotificationDTO(item))
	}

	return &ListNotificationsResult{Items: dtos, Total: total, UnreadCount: unread}, nil
}
