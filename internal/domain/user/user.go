// Package user holds the account read model the triage workflow
// consults: role and department for access checks, preferences for
// notification gating. Account lifecycle (registration, passwords)
// lives in the identity service and is out of scope here.
package user

import (
	"fmt"
	"time"

	"vox/internal/shared/authorization"
)

// NotificationPreferences gates delivery channels per user. Email and
// push default on, high-priority alerts default on, weekly digest
// defaults off.
type NotificationPreferences struct {
	EmailEnabled              bool
	PushEnabled               bool
	HighPriorityAlertsEnabled bool
	WeeklyDigestEnabled       bool
}

func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		EmailEnabled:              true,
		PushEnabled:               true,
		HighPriorityAlertsEnabled: true,
	}
}

type User struct {
	id          uint
	email       string
	fullName    string
	role        authorization.Role
	department  string
	isActive    bool
	isVerified  bool
	preferences NotificationPreferences
	createdAt   time.Time
}

func ReconstructUser(
	id uint,
	email, fullName string,
	role authorization.Role,
	department string,
	isActive, isVerified bool,
	preferences NotificationPreferences,
	createdAt time.Time,
) *User {
	return &User{
		id:          id,
		email:       email,
		fullName:    fullName,
		role:        role,
		department:  department,
		isActive:    isActive,
		isVerified:  isVerified,
		preferences: preferences,
		createdAt:   createdAt,
	}
}

func (u *User) ID() uint                             { return u.id }
func (u *User) Email() string                        { return u.email }
func (u *User) FullName() string                     { return u.fullName }
func (u *User) Role() authorization.Role             { return u.role }
func (u *User) Department() string                   { return u.department }
func (u *User) IsActive() bool                       { return u.isActive }
func (u *User) IsVerified() bool                     { return u.isVerified }
func (u *User) Preferences() NotificationPreferences { return u.preferences }
func (u *User) CreatedAt() time.Time                 { return u.createdAt }

// UpdatePreferences replaces the notification preference set.
func (u *User) UpdatePreferences(prefs NotificationPreferences) {
	u.preferences = prefs
}

// CanReceiveAssignments reports whether the user is a valid assignment
// target at all: active, verified staff.
func (u *User) CanReceiveAssignments() error {
	if !u.isActive {
		return fmt.Errorf("user account is deactivated")
	}
	if !u.isVerified {
		return fmt.Errorf("user account is not verified")
	}
	if u.role.IsStudent() {
		return fmt.Errorf("students cannot receive assignments")
	}
	return nil
}
