package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vox/internal/domain/user"
	"vox/internal/infrastructure/persistence/mappers"
	"vox/internal/infrastructure/persistence/models"
	"vox/internal/shared/authorization"
	"vox/internal/shared/db"
	apperrors "vox/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ListByRole(ctx context.Context, role authorization.Role, department string) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("role = ? AND is_active = ?", role.String(), true)
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var modelList []models.UserModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	users := make([]*user.User, 0, len(modelList))
	for i := range modelList {
		u, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) UpdatePreferences(ctx context.Context, userID uint, prefs user.NotificationPreferences) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"email_notifications_enabled":  prefs.EmailEnabled,
			"push_notifications_enabled":   prefs.PushEnabled,
			"high_priority_alerts_enabled": prefs.HighPriorityAlertsEnabled,
			"weekly_digest_enabled":        prefs.WeeklyDigestEnabled,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update notification preferences: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when the submitted values equal the
	// stored ones; existence is checked by the use case.
	return nil
}
