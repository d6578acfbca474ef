package usecases

import (
	"context"

	"vox/internal/application/feedback/dto"
	"vox/internal/domain/feedback"
	vo "vox/internal/domain/feedback/valueobjects"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

type ListFeedbackQuery struct {
	ViewerID   uint
	Role       string
	Department string
	Type       string
	Status     string
	Limit      int
	Offset     int
}

type ListFeedbackResult struct {
	Items []dto.FeedbackListItemDTO
	Total int64
}

const defaultListLimit = 50

// ListFeedbackUseCase returns the viewer's slice of the stream. The
// role's scope is compiled into the repository filter, so out-of-scope
// rows are never even loaded.
type ListFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewListFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *ListFeedbackUseCase {
	return &ListFeedbackUseCase{feedbackRepo: feedbackRepo, logger: logger}
}

func (uc *ListFeedbackUseCase) Execute(ctx context.Context, query ListFeedbackQuery) (*ListFeedbackResult, error) {
	role, err := authorization.ParseRole(query.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	filter, err := uc.buildFilter(query, role)
	if err != nil {
		return nil, err
	}

	items, total, err := uc.feedbackRepo.List(ctx, *filter)
	if err != nil {
		uc.logger.Errorw("failed to list feedback", "viewer_id", query.ViewerID, "error", err)
		return nil, err
	}

	dtos := make([]dto.FeedbackListItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, dto.ToFeedbackListItemDTO(item, query.ViewerID))
	}

	return &ListFeedbackResult{Items: dtos, Total: total}, nil
}

func (uc *ListFeedbackUseCase) buildFilter(query ListFeedbackQuery, role authorization.Role) (*feedback.Filter, error) {
	filter := feedback.Filter{
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	if query.Type != "" {
		ft, err := vo.NewFeedbackType(query.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = &ft
	}
	if query.Status != "" {
		fs, err := vo.NewFeedbackStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &fs
	}

	perms := authorization.PermissionsFor(role)
	switch perms.Scope {
	case authorization.ScopeOwn:
		viewerID := query.ViewerID
		filter.SubmitterID = &viewerID
	case authorization.ScopeAcademicDepartment:
		academic := vo.TypeAcademic
		filter.Type = &academic
		department := query.Department
		filter.Department = &department
	case authorization.ScopeNonAcademic:
		nonAcademic := vo.TypeNonAcademic
		filter.Type = &nonAcademic
		if perms.AssignedOnly {
			viewerID := query.ViewerID
			filter.AssigneeID = &viewerID
		}
	default:
		return nil, errors.NewForbiddenError("use analytics endpoints for this role")
	}

	return &filter, nil
}
