package notification

import (
	"fmt"
	"time"

	vo "vox/internal/domain/notification/valueobjects"
)

const (
	maxTitleLength   = 160
	maxMessageLength = 2000
)

// Notification is an in-app inbox entry. Entries are created by the
// triage workflow, never directly by users, and only their read flag
// ever changes afterwards.
type Notification struct {
	id         uint
	userID     uint
	feedbackID *uint
	title      string
	message    string
	severity   vo.Severity
	read       bool
	createdAt  time.Time
}

func NewNotification(userID uint, feedbackID *uint, title, message string, severity vo.Severity) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity: %s", severity)
	}

	return &Notification{
		userID:     userID,
		feedbackID: feedbackID,
		title:      title,
		message:    message,
		severity:   severity,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	feedbackID *uint,
	title, message string,
	severity vo.Severity,
	read bool,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:         id,
		userID:     userID,
		feedbackID: feedbackID,
		title:      title,
		message:    message,
		severity:   severity,
		read:       read,
		createdAt:  createdAt,
	}
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) FeedbackID() *uint    { return n.feedbackID }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Severity() vo.Severity { return n.severity }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead is idempotent.
func (n *Notification) MarkAsRead() {
	n.read = true
}
