package feedback

import "time"

type SubmitFeedbackRequest struct {
	Type        string `json:"type" validate:"required,oneof=academic non_academic"`
	Category    string `json:"category" validate:"required,max=80"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
	IsAnonymous bool   `json:"is_anonymous"`
	Department  string `json:"department" validate:"max=120"`
}

type EditFeedbackRequest struct {
	Type        string `json:"type" validate:"required,oneof=academic non_academic"`
	Category    string `json:"category" validate:"required,max=80"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
	IsAnonymous bool   `json:"is_anonymous"`
	Department  string `json:"department" validate:"max=120"`
}

type AssignFeedbackRequest struct {
	AssigneeID uint       `json:"assignee_id" validate:"required,gt=0"`
	DueAt      *time.Time `json:"due_at"`
	Note       string     `json:"note" validate:"max=2000"`
}

type UpdateStatusRequest struct {
	Status            string `json:"status" validate:"required"`
	Note              string `json:"note" validate:"max=2000"`
	ResolutionSummary string `json:"resolution_summary" validate:"max=5000"`
}

type AddNoteRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type SubmitFeedbackResponse struct {
	ID              uint      `json:"id"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	SimilarityGroup string    `json:"similarity_group,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type SweepResponse struct {
	Alerted int `json:"alerted"`
}
