package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    FeedbackStatus
		to      FeedbackStatus
		allowed bool
	}{
		{"pending to in_review", StatusPending, StatusInReview, true},
		{"pending skips to assigned", StatusPending, StatusAssigned, true},
		{"pending skips to resolved", StatusPending, StatusResolved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"in_review to working", StatusInReview, StatusWorking, true},
		{"in_review back to pending", StatusInReview, StatusPending, false},
		{"assigned to working", StatusAssigned, StatusWorking, true},
		{"assigned back to in_review", StatusAssigned, StatusInReview, false},
		{"working to resolved", StatusWorking, StatusResolved, true},
		{"working back to assigned", StatusWorking, StatusAssigned, false},
		{"resolved is terminal", StatusResolved, StatusWorking, false},
		{"resolved cannot be rejected", StatusResolved, StatusRejected, false},
		{"rejected is terminal", StatusRejected, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestFeedbackStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusInReview.IsTerminal())
	assert.False(t, StatusAssigned.IsTerminal())
	assert.False(t, StatusWorking.IsTerminal())
}

func TestNewFeedbackStatus(t *testing.T) {
	s, err := NewFeedbackStatus("working")
	require.NoError(t, err)
	assert.Equal(t, StatusWorking, s)

	_, err = NewFeedbackStatus("closed")
	assert.Error(t, err)
}

func TestPriority_Max(t *testing.T) {
	assert.Equal(t, PriorityUrgent, Max(PriorityMedium, PriorityUrgent))
	assert.Equal(t, PriorityHigh, Max(PriorityHigh, PriorityLow))
	assert.Equal(t, PriorityMedium, Max(PriorityMedium, PriorityMedium))
}

func TestPriority_AtLeast(t *testing.T) {
	assert.True(t, PriorityUrgent.AtLeast(PriorityHigh))
	assert.True(t, PriorityHigh.AtLeast(PriorityHigh))
	assert.False(t, PriorityLow.AtLeast(PriorityMedium))
}
