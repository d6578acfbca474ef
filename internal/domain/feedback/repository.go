package feedback

import (
	"context"
	"time"

	vo "vox/internal/domain/feedback/valueobjects"
)

// Repository persists the Feedback aggregate together with its owned
// history entries and notes. Save and Update must run inside the
// caller's transaction when one is present in the context.
type Repository interface {
	// Save inserts a new feedback row plus its uncommitted history.
	Save(ctx context.Context, f *Feedback) error

	// Update writes the aggregate using an optimistic version check and
	// appends any uncommitted history. Returns a conflict error when a
	// concurrent writer won.
	Update(ctx context.Context, f *Feedback) error

	// Delete removes the feedback and cascades to history and notes.
	Delete(ctx context.Context, id uint) error

	GetByID(ctx context.Context, id uint) (*Feedback, error)
	List(ctx context.Context, filter Filter) ([]*Feedback, int64, error)

	// ListRecent returns the most recent items of the same type and
	// category, newest first, for the similarity scan. Read-only and
	// safe to run outside the write transaction.
	ListRecent(ctx context.Context, feedbackType vo.FeedbackType, category string, limit int) ([]*Feedback, error)

	// CountSimilarityGroup counts current members of a similarity group.
	CountSimilarityGroup(ctx context.Context, group string) (int64, error)

	// ListOverdue returns non-terminal items whose due time has passed
	// and whose overdue alert has not been sent.
	ListOverdue(ctx context.Context, now time.Time) ([]*Feedback, error)

	// AddNote appends an internal note to an existing feedback item.
	AddNote(ctx context.Context, note *InternalNote) error
}

// Filter narrows List results. Nil fields are ignored.
type Filter struct {
	Type        *vo.FeedbackType
	Status      *vo.FeedbackStatus
	Department  *string
	SubmitterID *uint
	AssigneeID  *uint
	Limit       int
	Offset      int
}
