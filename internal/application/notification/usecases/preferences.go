package usecases

import (
	"context"

	"vox/internal/application/notification/dto"
	"vox/internal/domain/user"
	"vox/internal/shared/logger"
)

type GetPreferencesUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetPreferencesUseCase(userRepo user.Repository, logger logger.Interface) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetPreferencesUseCase) Execute(ctx context.Context, userID uint) (*dto.PreferencesDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs := dto.ToPreferencesDTO(u.Preferences())
	return &prefs, nil
}

type UpdatePreferencesCommand struct {
	UserID                    uint
	EmailEnabled              bool
	PushEnabled               bool
	HighPriorityAlertsEnabled bool
	WeeklyDigestEnabled       bool
}

type UpdatePreferencesUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdatePreferencesUseCase(userRepo user.Repository, logger logger.Interface) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, cmd UpdatePreferencesCommand) (*dto.PreferencesDTO, error) {
	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	prefs := user.NotificationPreferences{
		EmailEnabled:              cmd.EmailEnabled,
		PushEnabled:               cmd.PushEnabled,
		HighPriorityAlertsEnabled: cmd.HighPriorityAlertsEnabled,
		WeeklyDigestEnabled:       cmd.WeeklyDigestEnabled,
	}
	if err := uc.userRepo.UpdatePreferences(ctx, cmd.UserID, prefs); err != nil {
		uc.logger.Errorw("failed to update notification preferences", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("notification preferences updated", "user_id", cmd.UserID)
	result := dto.ToPreferencesDTO(prefs)
	return &result, nil
}
