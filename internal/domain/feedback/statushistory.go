package feedback

import (
	"time"

	vo "vox/internal/domain/feedback/valueobjects"
)

// StatusHistory is one append-only audit entry. Entries are never
// mutated or deleted while the parent feedback exists.
type StatusHistory struct {
	id         uint
	feedbackID uint
	status     vo.FeedbackStatus
	actorID    uint
	note       string
	createdAt  time.Time
}

func NewStatusHistory(feedbackID uint, status vo.FeedbackStatus, actorID uint, note string) *StatusHistory {
	return &StatusHistory{
		feedbackID: feedbackID,
		status:     status,
		actorID:    actorID,
		note:       note,
		createdAt:  time.Now(),
	}
}

func ReconstructStatusHistory(
	id uint,
	feedbackID uint,
	status vo.FeedbackStatus,
	actorID uint,
	note string,
	createdAt time.Time,
) *StatusHistory {
	return &StatusHistory{
		id:         id,
		feedbackID: feedbackID,
		status:     status,
		actorID:    actorID,
		note:       note,
		createdAt:  createdAt,
	}
}

func (h *StatusHistory) ID() uint                  { return h.id }
func (h *StatusHistory) FeedbackID() uint          { return h.feedbackID }
func (h *StatusHistory) Status() vo.FeedbackStatus { return h.status }
func (h *StatusHistory) ActorID() uint             { return h.actorID }
func (h *StatusHistory) Note() string              { return h.note }
func (h *StatusHistory) CreatedAt() time.Time      { return h.createdAt }
