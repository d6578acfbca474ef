package notification

import "context"

// Repository persists in-app notifications. Create participates in the
// caller's transaction when one is present in the context, so inbox
// entries commit atomically with the feedback change that caused them.
type Repository interface {
	Create(ctx context.Context, n *Notification) error

	// BulkCreate inserts a batch in one statement; used by the
	// high-priority fan-out.
	BulkCreate(ctx context.Context, notifications []*Notification) error

	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)

	MarkAsRead(ctx context.Context, id uint) error
	MarkAllAsRead(ctx context.Context, userID uint) (int64, error)
}
