package user

import (
	"context"

	"vox/internal/shared/authorization"
)

// Repository reads accounts and writes the one mutable slice this
// service owns: notification preferences.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*User, error)

	// ListByRole returns active users holding the role; department
	// narrows the match when non-empty. Used by the escalation chains
	// and the high-priority fan-out.
	ListByRole(ctx context.Context, role authorization.Role, department string) ([]*User, error)

	UpdatePreferences(ctx context.Context, userID uint, prefs NotificationPreferences) error
}
