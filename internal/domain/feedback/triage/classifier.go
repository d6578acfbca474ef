// Package triage holds the pure decision functions of the feedback
// engine: keyword classification, lexical deduplication and the
// submission content screen. Nothing here performs I/O beyond the
// candidate source handed to the deduplicator.
package triage

import "strings"

// urgentKeywords take precedence over highKeywords; neither match
// yields medium. Matching is case-insensitive substring search, so
// "URGENT: projector" and "non-urgent" both classify as urgent — the
// coarse recall is intentional.
var urgentKeywords = []string{
	"urgent",
	"danger",
	"fire",
	"flood",
	"emergency",
	"threat",
	"assault",
	"injury",
}

var highKeywords = []string{
	"broken",
	"not working",
	"critical",
	"severe",
	"serious",
}

// Priority levels returned by the classifier. These mirror the
// feedback value objects; triage keeps its own strings so it stays a
// leaf package.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// DetectPriority classifies free text by urgency keywords. Total and
// deterministic: it never fails, it degrades to medium.
func DetectPriority(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range urgentKeywords {
		if strings.Contains(lower, kw) {
			return PriorityUrgent
		}
	}
	for _, kw := range highKeywords {
		if strings.Contains(lower, kw) {
			return PriorityHigh
		}
	}
	return PriorityMedium
}
