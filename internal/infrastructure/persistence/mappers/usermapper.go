package mappers

import (
	"time"

	"vox/internal/domain/user"
	"vox/internal/infrastructure/persistence/models"
	"vox/internal/shared/authorization"
)

type UserMapper interface {
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := authorization.ParseRole(model.Role)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.FullName,
		role,
		model.Department,
		model.IsActive,
		model.IsVerified,
		user.NotificationPreferences{
			EmailEnabled:              model.EmailNotificationsEnabled,
			PushEnabled:               model.PushNotificationsEnabled,
			HighPriorityAlertsEnabled: model.HighPriorityAlertsEnabled,
			WeeklyDigestEnabled:       model.WeeklyDigestEnabled,
		},
		time.UnixMilli(model.CreatedAt),
	), nil
}
