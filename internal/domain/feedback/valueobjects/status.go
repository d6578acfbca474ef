package valueobjects

import "fmt"

type FeedbackStatus string

const (
	StatusPending  FeedbackStatus = "pending"
	StatusInReview FeedbackStatus = "in_review"
	StatusAssigned FeedbackStatus = "assigned"
	StatusWorking  FeedbackStatus = "working"
	StatusResolved FeedbackStatus = "resolved"
	StatusRejected FeedbackStatus = "rejected"
)

var validFeedbackStatuses = map[FeedbackStatus]bool{
	StatusPending:  true,
	StatusInReview: true,
	StatusAssigned: true,
	StatusWorking:  true,
	StatusResolved: true,
	StatusRejected: true,
}

// feedbackStatusTransitions encodes the forward-only lifecycle:
// pending -> in_review -> assigned -> working -> resolved, with skips
// ahead permitted (assignment jumps pending straight to assigned) and
// rejected reachable from any non-terminal state. Terminal states have
// no outgoing transitions.
var feedbackStatusTransitions = map[FeedbackStatus][]FeedbackStatus{
	StatusPending: {
		StatusInReview,
		StatusAssigned,
		StatusWorking,
		StatusResolved,
		StatusRejected,
	},
	StatusInReview: {
		StatusAssigned,
		StatusWorking,
		StatusResolved,
		StatusRejected,
	},
	StatusAssigned: {
		StatusWorking,
		StatusResolved,
		StatusRejected,
	},
	StatusWorking: {
		StatusResolved,
		StatusRejected,
	},
	StatusResolved: {},
	StatusRejected: {},
}

func (s FeedbackStatus) String() string {
	return string(s)
}

func (s FeedbackStatus) IsValid() bool {
	return validFeedbackStatuses[s]
}

func (s FeedbackStatus) CanTransitionTo(newStatus FeedbackStatus) bool {
	allowed, ok := feedbackStatusTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s FeedbackStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

func (s FeedbackStatus) IsPending() bool {
	return s == StatusPending
}

func (s FeedbackStatus) IsAssigned() bool {
	return s == StatusAssigned
}

func (s FeedbackStatus) IsResolved() bool {
	return s == StatusResolved
}

func (s FeedbackStatus) IsRejected() bool {
	return s == StatusRejected
}

func NewFeedbackStatus(s string) (FeedbackStatus, error) {
	fs := FeedbackStatus(s)
	if !fs.IsValid() {
		return "", fmt.Errorf("invalid feedback status: %s", s)
	}
	return fs, nil
}
