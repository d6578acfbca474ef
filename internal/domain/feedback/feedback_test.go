package feedback

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "vox/internal/domain/feedback/valueobjects"
)

func newTestFeedback(t *testing.T) *Feedback {
	t.Helper()
	f, err := NewFeedback(
		vo.TypeAcademic,
		"grading",
		"Exam results delayed",
		"CSC301 results have not been released three weeks after the exam",
		false,
		"Computer Science",
		10,
		vo.PriorityMedium,
		"grp_test",
	)
	require.NoError(t, err)
	return f
}

func TestNewFeedback(t *testing.T) {
	tests := []struct {
		name         string
		feedbackType vo.FeedbackType
		category     string
		subject      string
		description  string
		department   string
		submitterID  uint
		priority     vo.Priority
		wantErr      string
	}{
		{
			name:         "valid academic",
			feedbackType: vo.TypeAcademic,
			category:     "grading",
			subject:      "s",
			description:  "d",
			department:   "Computer Science",
			submitterID:  1,
			priority:     vo.PriorityMedium,
		},
		{
			name:         "valid non-academic without department",
			feedbackType: vo.TypeNonAcademic,
			category:     "facilities",
			subject:      "s",
			description:  "d",
			submitterID:  1,
			priority:     vo.PriorityLow,
		},
		{
			name:         "academic without department",
			feedbackType: vo.TypeAcademic,
			category:     "grading",
			subject:      "s",
			description:  "d",
			submitterID:  1,
			priority:     vo.PriorityMedium,
			wantErr:      "department is required for academic feedback",
		},
		{
			name:         "non-academic with department",
			feedbackType: vo.TypeNonAcademic,
			category:     "facilities",
			subject:      "s",
			description:  "d",
			department:   "Computer Science",
			submitterID:  1,
			priority:     vo.PriorityMedium,
			wantErr:      "department must be empty for non-academic feedback",
		},
		{
			name:         "invalid type",
			feedbackType: vo.FeedbackType("complaint"),
			category:     "grading",
			subject:      "s",
			description:  "d",
			submitterID:  1,
			priority:     vo.PriorityMedium,
			wantErr:      "invalid feedback type",
		},
		{
			name:         "empty subject",
			feedbackType: vo.TypeNonAcademic,
			category:     "facilities",
			description:  "d",
			submitterID:  1,
			priority:     vo.PriorityMedium,
			wantErr:      "subject is required",
		},
		{
			name:         "subject too long",
			feedbackType: vo.TypeNonAcademic,
			category:     "facilities",
			subject:      strings.Repeat("x", 201),
			description:  "d",
			submitterID:  1,
			priority:     vo.PriorityMedium,
			wantErr:      "subject exceeds maximum length",
		},
		{
			name:         "missing submitter",
			feedbackType: vo.TypeNonAcademic,
			category:     "facilities",
			subject:      "s",
			description:  "d",
			priority:     vo.PriorityMedium,
			wantErr:      "submitter ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFeedback(tt.feedbackType, tt.category, tt.subject, tt.description,
				false, tt.department, tt.submitterID, tt.priority, "")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusPending, f.Status())
			assert.Equal(t, 1, f.Version())

			history := f.UncommittedHistory()
			require.Len(t, history, 1)
			assert.Equal(t, vo.StatusPending, history[0].Status())
			assert.Equal(t, "Initial submission", history[0].Note())
		})
	}
}

func TestFeedback_ChangeStatus(t *testing.T) {
	t.Run("valid transition records history", func(t *testing.T) {
		f := newTestFeedback(t)
		f.ClearUncommittedHistory()

		err := f.ChangeStatus(vo.StatusInReview, 20, "taking a look")
		require.NoError(t, err)

		assert.Equal(t, vo.StatusInReview, f.Status())
		assert.Equal(t, 2, f.Version())
		require.Len(t, f.UncommittedHistory(), 1)
		assert.Equal(t, uint(20), f.UncommittedHistory()[0].ActorID())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newTestFeedback(t)
		f.ClearUncommittedHistory()

		err := f.ChangeStatus(vo.StatusPending, 20, "")
		require.NoError(t, err)

		assert.Equal(t, 1, f.Version())
		assert.Empty(t, f.UncommittedHistory())
	})

	t.Run("backward transition rejected", func(t *testing.T) {
		f := newTestFeedback(t)
		require.NoError(t, f.ChangeStatus(vo.StatusWorking, 20, ""))

		err := f.ChangeStatus(vo.StatusInReview, 20, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot transition from working to in_review")
	})

	t.Run("terminal item is immutable", func(t *testing.T) {
		f := newTestFeedback(t)
		require.NoError(t, f.ChangeStatus(vo.StatusResolved, 20, "done"))
		f.ClearUncommittedHistory()

		err := f.ChangeStatus(vo.StatusWorking, 20, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be modified")
		assert.Empty(t, f.UncommittedHistory())
	})
}

func TestFeedback_AssignTo(t *testing.T) {
	t.Run("assignment from pending jumps to assigned", func(t *testing.T) {
		f := newTestFeedback(t)
		f.ClearUncommittedHistory()
		due := time.Now().Add(72 * time.Hour)

		err := f.AssignTo(30, 20, &due, "routed to coordinator")
		require.NoError(t, err)

		assert.Equal(t, vo.StatusAssigned, f.Status())
		require.NotNil(t, f.AssigneeID())
		assert.Equal(t, uint(30), *f.AssigneeID())
		require.NotNil(t, f.AssignerID())
		assert.Equal(t, uint(20), *f.AssignerID())
		assert.NotNil(t, f.AssignedAt())
		assert.False(t, f.OverdueAlertSent())
		require.Len(t, f.UncommittedHistory(), 1)
		assert.Equal(t, uint(20), f.UncommittedHistory()[0].ActorID())
	})

	t.Run("reassignment keeps status and resets overdue flag", func(t *testing.T) {
		f := newTestFeedback(t)
		due := time.Now().Add(-time.Hour)
		require.NoError(t, f.AssignTo(30, 20, &due, ""))
		f.MarkOverdueAlertSent()
		f.ClearUncommittedHistory()

		newDue := time.Now().Add(48 * time.Hour)
		err := f.AssignTo(31, 20, &newDue, "reassigned")
		require.NoError(t, err)

		assert.Equal(t, vo.StatusAssigned, f.Status())
		assert.Equal(t, uint(31), *f.AssigneeID())
		assert.False(t, f.OverdueAlertSent())
		// No duplicate "assigned" history row on reassignment.
		assert.Empty(t, f.UncommittedHistory())
	})

	t.Run("terminal item cannot be assigned", func(t *testing.T) {
		f := newTestFeedback(t)
		require.NoError(t, f.ChangeStatus(vo.StatusRejected, 20, "spam"))
		f.ClearUncommittedHistory()

		err := f.AssignTo(30, 20, nil, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be assigned")
		assert.Nil(t, f.AssigneeID())
		assert.Empty(t, f.UncommittedHistory())
	})
}

func TestFeedback_ApplyEdit(t *testing.T) {
	t.Run("pending item accepts edit", func(t *testing.T) {
		f := newTestFeedback(t)

		err := f.ApplyEdit(vo.TypeNonAcademic, "facilities", "Broken AC", "The AC in LT-2 is broken", true, "")
		require.NoError(t, err)

		assert.Equal(t, vo.TypeNonAcademic, f.Type())
		assert.Equal(t, "Broken AC", f.Subject())
		assert.True(t, f.IsAnonymous())
		assert.Empty(t, f.Department())
	})

	t.Run("edit rejected after review begins", func(t *testing.T) {
		f := newTestFeedback(t)
		require.NoError(t, f.ChangeStatus(vo.StatusInReview, 20, ""))

		err := f.ApplyEdit(vo.TypeAcademic, "grading", "s", "d", false, "Computer Science")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be edited")
	})

	t.Run("edit enforces department invariant", func(t *testing.T) {
		f := newTestFeedback(t)

		err := f.ApplyEdit(vo.TypeAcademic, "grading", "s", "d", false, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "department is required")
	})
}

func TestFeedback_IsOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("past due and open", func(t *testing.T) {
		f := newTestFeedback(t)
		require.NoError(t, f.AssignTo(30, 20, &past, ""))
		assert.True(t, f.IsOverdue(now))
	})

	t.Run("alert already sent", func(t *testing.T) {
		f := newTestFeedback(t)
		require.NoError(t, f.AssignTo(30, 20, &past, ""))
		f.MarkOverdueAlertSent()
		assert.False(t, f.IsOverdue(now))
	})

	t.Run("not yet due", func(t *testing.T) {
		f := newTestFeedback(t)
		require.NoError(t, f.AssignTo(30, 20, &future, ""))
		assert.False(t, f.IsOverdue(now))
	})

	t.Run("no due date", func(t *testing.T) {
		f := newTestFeedback(t)
		assert.False(t, f.IsOverdue(now))
	})

	t.Run("terminal item never overdue", func(t *testing.T) {
		f := newTestFeedback(t)
		require.NoError(t, f.AssignTo(30, 20, &past, ""))
		require.NoError(t, f.ChangeStatus(vo.StatusResolved, 30, "done"))
		assert.False(t, f.IsOverdue(now))
	})
}

func TestFeedback_WithinEditWindow(t *testing.T) {
	f := newTestFeedback(t)

	assert.True(t, f.WithinEditWindow(f.CreatedAt().Add(30*time.Minute), time.Hour))
	assert.False(t, f.WithinEditWindow(f.CreatedAt().Add(2*time.Hour), time.Hour))
}

func TestFeedback_ClearUncommittedHistory(t *testing.T) {
	f := newTestFeedback(t)
	require.Len(t, f.UncommittedHistory(), 1)

	f.ClearUncommittedHistory()

	assert.Empty(t, f.UncommittedHistory())
	assert.Len(t, f.History(), 1)
}
