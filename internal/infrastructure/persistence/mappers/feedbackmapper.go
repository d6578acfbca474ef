package mappers

import (
	"time"

	"vox/internal/domain/feedback"
	vo "vox/internal/domain/feedback/valueobjects"
	"vox/internal/infrastructure/persistence/models"
)

// FeedbackMapper handles the conversion between Feedback domain entities
// and persistence models.
type FeedbackMapper interface {
	ToModel(f *feedback.Feedback) *models.FeedbackModel
	ToDomain(model *models.FeedbackModel) (*feedback.Feedback, error)
	HistoryToModel(h *feedback.StatusHistory) *models.StatusHistoryModel
	HistoryToDomain(model *models.StatusHistoryModel) *feedback.StatusHistory
	NoteToModel(n *feedback.InternalNote) *models.InternalNoteModel
	NoteToDomain(model *models.InternalNoteModel) *feedback.InternalNote
}

type FeedbackMapperImpl struct{}

func NewFeedbackMapper() FeedbackMapper {
	return &FeedbackMapperImpl{}
}

func (m *FeedbackMapperImpl) ToModel(f *feedback.Feedback) *models.FeedbackModel {
	model := &models.FeedbackModel{
		ID:                f.ID(),
		Type:              f.Type().String(),
		Category:          f.Category(),
		Subject:           f.Subject(),
		Description:       f.Description(),
		Status:            f.Status().String(),
		Priority:          f.Priority().String(),
		IsAnonymous:       f.IsAnonymous(),
		Department:        f.Department(),
		SimilarityGroup:   f.SimilarityGroup(),
		ResolutionSummary: f.ResolutionSummary(),
		SubmitterID:       f.SubmitterID(),
		AssigneeID:        f.AssigneeID(),
		AssignerID:        f.AssignerID(),
		OverdueAlertSent:  f.OverdueAlertSent(),
		Version:           f.Version(),
		CreatedAt:         f.CreatedAt().UnixMilli(),
		UpdatedAt:         f.UpdatedAt().UnixMilli(),
	}

	if f.AssignedAt() != nil {
		assigned := f.AssignedAt().UnixMilli()
		model.AssignedAt = &assigned
	}
	if f.DueAt() != nil {
		due := f.DueAt().UnixMilli()
		model.DueAt = &due
	}

	return model
}

// ToDomain converts a feedback model to a domain entity. History and
// notes are loaded separately by the repository.
func (m *FeedbackMapperImpl) ToDomain(model *models.FeedbackModel) (*feedback.Feedback, error) {
	feedbackType, err := vo.NewFeedbackType(model.Type)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewFeedbackStatus(model.Status)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}

	return feedback.ReconstructFeedback(
		model.ID,
		feedbackType,
		model.Category,
		model.Subject,
		model.Description,
		status,
		priority,
		model.IsAnonymous,
		model.Department,
		model.SimilarityGroup,
		model.ResolutionSummary,
		model.SubmitterID,
		model.AssigneeID,
		model.AssignerID,
		milliToTime(model.AssignedAt),
		milliToTime(model.DueAt),
		model.OverdueAlertSent,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *FeedbackMapperImpl) HistoryToModel(h *feedback.StatusHistory) *models.StatusHistoryModel {
	return &models.StatusHistoryModel{
		ID:         h.ID(),
		FeedbackID: h.FeedbackID(),
		Status:     h.Status().String(),
		ActorID:    h.ActorID(),
		Note:       h.Note(),
		CreatedAt:  h.CreatedAt().UnixMilli(),
	}
}

func (m *FeedbackMapperImpl) HistoryToDomain(model *models.StatusHistoryModel) *feedback.StatusHistory {
	return feedback.ReconstructStatusHistory(
		model.ID,
		model.FeedbackID,
		vo.FeedbackStatus(model.Status),
		model.ActorID,
		model.Note,
		time.UnixMilli(model.CreatedAt),
	)
}

func (m *FeedbackMapperImpl) NoteToModel(n *feedback.InternalNote) *models.InternalNoteModel {
	return &models.InternalNoteModel{
		ID:         n.ID(),
		FeedbackID: n.FeedbackID(),
		AuthorID:   n.AuthorID(),
		Text:       n.Text(),
		CreatedAt:  n.CreatedAt().UnixMilli(),
	}
}

func (m *FeedbackMapperImpl) NoteToDomain(model *models.InternalNoteModel) *feedback.InternalNote {
	return feedback.ReconstructInternalNote(
		model.ID,
		model.FeedbackID,
		model.AuthorID,
		model.Text,
		time.UnixMilli(model.CreatedAt),
	)
}

func milliToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}
