package usecases

import (
	"context"

	"vox/internal/application/feedback/dto"
	"vox/internal/domain/feedback"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

type GetFeedbackQuery struct {
	FeedbackID uint
	ViewerID   uint
	Role       string
	Department string
}

type GetFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewGetFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *GetFeedbackUseCase {
	return &GetFeedbackUseCase{feedbackRepo: feedbackRepo, logger: logger}
}

func (uc *GetFeedbackUseCase) Execute(ctx context.Context, query GetFeedbackQuery) (*dto.FeedbackDTO, error) {
	role, err := authorization.ParseRole(query.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	item, err := uc.feedbackRepo.GetByID(ctx, query.FeedbackID)
	if err != nil {
		return nil, err
	}

	viewer := feedback.Actor{ID: query.ViewerID, Role: role, Department: query.Department}
	if !feedback.CanView(viewer, item) {
		if role.IsOversight() {
			return nil, errors.NewForbiddenError("use analytics endpoints for this role")
		}
		return nil, errors.NewForbiddenError("insufficient permissions")
	}

	return dto.ToFeedbackDTO(item, query.ViewerID, role), nil
}
