package notification

import "vox/internal/application/notification/dto"

type UpdatePreferencesRequest struct {
	EmailEnabled              bool `json:"email_enabled"`
	PushEnabled               bool `json:"push_enabled"`
	HighPriorityAlertsEnabled bool `json:"high_priority_alerts_enabled"`
	WeeklyDigestEnabled       bool `json:"weekly_digest_enabled"`
}

type ListResponse struct {
	Items       []dto.NotificationDTO `json:"items"`
	Total       int64                 `json:"total"`
	UnreadCount int64                 `json:"unread_count"`
}

type MarkAllResponse struct {
	Updated int64 `json:"updated"`
}
