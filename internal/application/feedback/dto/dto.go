package dto

import (
	"time"

	"vox/internal/domain/feedback"
	"vox/internal/shared/authorization"
)

type FeedbackDTO struct {
	ID                uint               `json:"id"`
	Type              string             `json:"type"`
	Category          string             `json:"category"`
	Subject           string             `json:"subject"`
	Description       string             `json:"description"`
	Status            string             `json:"status"`
	Priority          string             `json:"priority"`
	IsAnonymous       bool               `json:"is_anonymous"`
	Department        string             `json:"department,omitempty"`
	SimilarityGroup   string             `json:"similarity_group,omitempty"`
	ResolutionSummary string             `json:"resolution_summary,omitempty"`
	SubmitterID       *uint              `json:"submitter_id"`
	AssigneeID        *uint              `json:"assignee_id"`
	DueAt             *time.Time         `json:"due_at"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	StatusHistory     []StatusHistoryDTO `json:"status_history"`
	Notes             []InternalNoteDTO  `json:"notes,omitempty"`
}

type StatusHistoryDTO struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	ActorID   uint      `json:"actor_id"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type InternalNoteDTO struct {
	ID        uint      `json:"id"`
	AuthorID  uint      `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackListItemDTO struct {
	ID          uint       `json:"id"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Subject     string     `json:"subject"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Department  string     `json:"department,omitempty"`
	SubmitterID *uint      `json:"submitter_id"`
	AssigneeID  *uint      `json:"assignee_id"`
	DueAt       *time.Time `json:"due_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToFeedbackDTO projects the aggregate for a viewer. Anonymous
// submissions hide the submitter from everyone but the submitter;
// internal notes are included only for staff viewers.
func ToFeedbackDTO(f *feedback.Feedback, viewerID uint, viewerRole authorization.Role) *FeedbackDTO {
	if f == nil {
		return nil
	}

	history := make([]StatusHistoryDTO, 0, len(f.History()))
	for _, h := range f.History() {
		history = append(history, StatusHistoryDTO{
			ID:        h.ID(),
			Status:    h.Status().String(),
			ActorID:   h.ActorID(),
			Note:      h.Note(),
			CreatedAt: h.CreatedAt(),
		})
	}

	var notes []InternalNoteDTO
	if !viewerRole.IsStudent() {
		notes = make([]InternalNoteDTO, 0, len(f.Notes()))
		for _, n := range f.Notes() {
			notes = append(notes, InternalNoteDTO{
				ID:        n.ID(),
				AuthorID:  n.AuthorID(),
				Text:      n.Text(),
				CreatedAt: n.CreatedAt(),
			})
		}
	}

	// Oversight roles only ever reach aggregates, but any serialization
	// for them still redacts the free-text body.
	description := f.Description()
	if viewerRole.IsOversight() {
		description = "[REDACTED]"
	}

	return &FeedbackDTO{
		ID:                f.ID(),
		Type:              f.Type().String(),
		Category:          f.Category(),
		Subject:           f.Subject(),
		Description:       description,
		Status:            f.Status().String(),
		Priority:          f.Priority().String(),
		IsAnonymous:       f.IsAnonymous(),
		Department:        f.Department(),
		SimilarityGroup:   f.SimilarityGroup(),
		ResolutionSummary: f.ResolutionSummary(),
		SubmitterID:       submitterFor(f, viewerID),
		AssigneeID:        f.AssigneeID(),
		DueAt:             f.DueAt(),
		CreatedAt:         f.CreatedAt(),
		UpdatedAt:         f.UpdatedAt(),
		StatusHistory:     history,
		Notes:             notes,
	}
}

func ToFeedbackListItemDTO(f *feedback.Feedback, viewerID uint) FeedbackListItemDTO {
	return FeedbackListItemDTO{
		ID:          f.ID(),
		Type:        f.Type().String(),
		Category:    f.Category(),
		Subject:     f.Subject(),
		Status:      f.Status().String(),
		Priority:    f.Priority().String(),
		Department:  f.Department(),
		SubmitterID: submitterFor(f, viewerID),
		AssigneeID:  f.AssigneeID(),
		DueAt:       f.DueAt(),
		CreatedAt:   f.CreatedAt(),
	}
}

func submitterFor(f *feedback.Feedback, viewerID uint) *uint {
	if f.IsAnonymous() && f.SubmitterID() != viewerID {
		return nil
	}
	id := f.SubmitterID()
	return &id
}
