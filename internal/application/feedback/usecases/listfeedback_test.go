package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vox/internal/domain/feedback"
	vo "vox/internal/domain/feedback/valueobjects"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

func TestListFeedback_ScopeCompilation(t *testing.T) {
	var captured feedback.Filter
	repo := &mockFeedbackRepository{
		listFunc: func(_ context.Context, filter feedback.Filter) ([]*feedback.Feedback, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListFeedbackUseCase(repo, logger.NewLogger())

	t.Run("student sees only own submissions", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListFeedbackQuery{ViewerID: 10, Role: "student"})
		require.NoError(t, err)
		require.NotNil(t, captured.SubmitterID)
		assert.Equal(t, uint(10), *captured.SubmitterID)
		assert.Nil(t, captured.Type)
	})

	t.Run("department head scoped to academic department", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListFeedbackQuery{
			ViewerID: 20, Role: "department_head", Department: "Computer Science",
		})
		require.NoError(t, err)
		require.NotNil(t, captured.Type)
		assert.Equal(t, vo.TypeAcademic, *captured.Type)
		require.NotNil(t, captured.Department)
		assert.Equal(t, "Computer Science", *captured.Department)
		assert.Nil(t, captured.SubmitterID)
	})

	t.Run("facilities limited to own assignments", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListFeedbackQuery{ViewerID: 40, Role: "facilities_management"})
		require.NoError(t, err)
		require.NotNil(t, captured.Type)
		assert.Equal(t, vo.TypeNonAcademic, *captured.Type)
		require.NotNil(t, captured.AssigneeID)
		assert.Equal(t, uint(40), *captured.AssigneeID)
	})

	t.Run("student affairs sees all non-academic", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListFeedbackQuery{ViewerID: 30, Role: "student_affairs"})
		require.NoError(t, err)
		assert.Nil(t, captured.AssigneeID)
		assert.Equal(t, vo.TypeNonAcademic, *captured.Type)
	})

	t.Run("status filter passes through", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListFeedbackQuery{
			ViewerID: 30, Role: "student_affairs", Status: "working",
		})
		require.NoError(t, err)
		require.NotNil(t, captured.Status)
		assert.Equal(t, vo.StatusWorking, *captured.Status)
	})

	t.Run("default limit applied", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListFeedbackQuery{ViewerID: 10, Role: "student"})
		require.NoError(t, err)
		assert.Equal(t, defaultListLimit, captured.Limit)
	})
}

func TestListFeedback_OversightForbidden(t *testing.T) {
	uc := NewListFeedbackUseCase(&mockFeedbackRepository{}, logger.NewLogger())

	for _, role := range []string{"university_management", "ict_admin"} {
		_, err := uc.Execute(context.Background(), ListFeedbackQuery{ViewerID: 50, Role: role})
		require.Error(t, err, role)
		assert.True(t, errors.IsForbiddenError(err), role)
	}
}

func TestListFeedback_AnonymousSubmitterMasked(t *testing.T) {
	anon, err := feedback.NewFeedback(vo.TypeNonAcademic, "facilities", "subject", "description",
		true, "", 10, vo.PriorityMedium, "")
	require.NoError(t, err)
	require.NoError(t, anon.SetID(5))

	repo := &mockFeedbackRepository{
		listFunc: func(_ context.Context, _ feedback.Filter) ([]*feedback.Feedback, int64, error) {
			return []*feedback.Feedback{anon}, 1, nil
		},
	}
	uc := NewListFeedbackUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListFeedbackQuery{ViewerID: 30, Role: "student_affairs"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Nil(t, result.Items[0].SubmitterID)

	// The submitter still sees their own identity.
	result, err = uc.Execute(context.Background(), ListFeedbackQuery{ViewerID: 10, Role: "student"})
	require.NoError(t, err)
	require.NotNil(t, result.Items[0].SubmitterID)
	assert.Equal(t, uint(10), *result.Items[0].SubmitterID)
}
