package dto

import (
	"time"

	"vox/internal/domain/notification"
	"vox/internal/domain/user"
)

type NotificationDTO struct {
	ID         uint      `json:"id"`
	FeedbackID *uint     `json:"feedback_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Severity   string    `json:"severity"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

type PreferencesDTO struct {
	EmailEnabled              bool `json:"email_enabled"`
	PushEnabled               bool `json:"push_enabled"`
	HighPriorityAlertsEnabled bool `json:"high_priority_alerts_enabled"`
	WeeklyDigestEnabled       bool `json:"weekly_digest_enabled"`
}

func ToNotificationDTO(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID(),
		FeedbackID: n.FeedbackID(),
		Title:      n.Title(),
		Message:    n.Message(),
		Severity:   n.Severity().String(),
		Read:       n.IsRead(),
		CreatedAt:  n.CreatedAt(),
	}
}

func ToPreferencesDTO(prefs user.NotificationPreferences) PreferencesDTO {
	return PreferencesDTO{
		EmailEnabled:              prefs.EmailEnabled,
		PushEnabled:               prefs.PushEnabled,
		HighPriorityAlertsEnabled: prefs.HighPriorityAlertsEnabled,
		WeeklyDigestEnabled:       prefs.WeeklyDigestEnabled,
	}
}
