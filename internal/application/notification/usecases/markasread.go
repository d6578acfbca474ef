package usecases

import (
	"context"

	"vox/internal/domain/notification"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

type MarkAsReadCommand struct {
	NotificationID uint
	UserID         uint
}

// MarkAsReadUseCase flips the read flag on one inbox entry. Users can
// only touch their own entries; anything else reads as not found.
type MarkAsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAsReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, cmd MarkAsReadCommand) error {
	entry, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}
	if entry.UserID() != cmd.UserID {
		return errors.NewNotFoundError("notification not found")
	}
	if entry.IsRead() {
		return nil
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "notification_id", cmd.NotificationID, "error", err)
		return err
	}
	return nil
}

type MarkAllAsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllAsReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

// Execute returns the number of entries marked.
func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	marked, err := uc.notificationRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", userID, "error", err)
		return 0, err
	}
	return marked, nil
}
