package feedback

import (
	"fmt"
	"time"
)

const maxNoteLength = 2000

// InternalNote is a staff-only annotation on a feedback item. Students
// and oversight roles never see these.
type InternalNote struct {
	id         uint
	feedbackID uint
	authorID   uint
	text       string
	createdAt  time.Time
}

func NewInternalNote(feedbackID, authorID uint, text string) (*InternalNote, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("note text is required")
	}
	if len(text) > maxNoteLength {
		return nil, fmt.Errorf("note exceeds maximum length of %d characters", maxNoteLength)
	}

	return &InternalNote{
		feedbackID: feedbackID,
		authorID:   authorID,
		text:       text,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructInternalNote(id, feedbackID, authorID uint, text string, createdAt time.Time) *InternalNote {
	return &InternalNote{
		id:         id,
		feedbackID: feedbackID,
		authorID:   authorID,
		text:       text,
		createdAt:  createdAt,
	}
}

func (n *InternalNote) ID() uint             { return n.id }
func (n *InternalNote) FeedbackID() uint     { return n.feedbackID }
func (n *InternalNote) AuthorID() uint       { return n.authorID }
func (n *InternalNote) Text() string         { return n.text }
func (n *InternalNote) CreatedAt() time.Time { return n.createdAt }
