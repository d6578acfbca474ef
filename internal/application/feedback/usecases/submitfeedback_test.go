package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vox/internal/domain/feedback"
	"vox/internal/domain/feedback/triage"
	notificationvo "vox/internal/domain/notification/valueobjects"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

func newSubmitUseCase(repo *mockFeedbackRepository, notifier *mockNotifier) (*SubmitFeedbackUseCase, *mockTxManager) {
	tx := &mockTxManager{}
	dedup := triage.NewDeduplicator(NewCandidateSource(repo), 0, 0)
	return NewSubmitFeedbackUseCase(repo, dedup, notifier, tx, logger.NewLogger()), tx
}

func validSubmitCommand() SubmitFeedbackCommand {
	return SubmitFeedbackCommand{
		Type:        "academic",
		Category:    "grading",
		Subject:     "Exam results delayed",
		Description: "CSC301 results have not been released three weeks after the exam",
		Department:  "Computer Science",
		SubmitterID: 10,
		Role:        "student",
	}
}

func TestSubmitFeedback_Success(t *testing.T) {
	repo := &mockFeedbackRepository{}
	notifier := &mockNotifier{}
	uc, tx := newSubmitUseCase(repo, notifier)

	result, err := uc.Execute(context.Background(), validSubmitCommand())
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.FeedbackID)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, "medium", result.Priority)
	assert.NotEmpty(t, result.SimilarityGroup)
	assert.Equal(t, 1, tx.calls)
	assert.Empty(t, notifier.delivered, "medium priority must not fan out")
	assert.Equal(t, 1, notifier.flushed)
}

func TestSubmitFeedback_UrgentAcademicAlertsDepartmentHeads(t *testing.T) {
	repo := &mockFeedbackRepository{}
	notifier := &mockNotifier{}
	uc, _ := newSubmitUseCase(repo, notifier)

	cmd := validSubmitCommand()
	cmd.Subject = "Flooded lecture hall"
	cmd.Description = "There is a flood in the building, this is an emergency"

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "urgent", result.Priority)
	require.Len(t, notifier.delivered, 1)
	assert.Equal(t, authorization.RoleDepartmentHead, notifier.delivered[0].Role)
	assert.Equal(t, "Computer Science", notifier.delivered[0].Department)
	assert.Equal(t, notificationvo.SeverityWarning, notifier.delivered[0].Severity)
}

func TestSubmitFeedback_HighPriorityNonAcademicAlertsStudentAffairs(t *testing.T) {
	repo := &mockFeedbackRepository{}
	notifier := &mockNotifier{}
	uc, _ := newSubmitUseCase(repo, notifier)

	cmd := SubmitFeedbackCommand{
		Type:        "non_academic",
		Category:    "facilities",
		Subject:     "Projector down",
		Description: "The projector in LT-2 is broken",
		SubmitterID: 10,
		Role:        "student",
	}

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "high", result.Priority)
	require.Len(t, notifier.delivered, 1)
	assert.Equal(t, authorization.RoleStudentAffairs, notifier.delivered[0].Role)
	assert.Empty(t, notifier.delivered[0].Department)
}

func TestSubmitFeedback_GroupEscalation(t *testing.T) {
	repo := &mockFeedbackRepository{
		countSimilarityGroupFunc: func(_ context.Context, _ string) (int64, error) {
			return 4, nil // incoming item makes five
		},
	}
	notifier := &mockNotifier{}
	uc, _ := newSubmitUseCase(repo, notifier)

	cmd := validSubmitCommand()
	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "urgent", result.Priority)
}

func TestSubmitFeedback_NonStudentForbidden(t *testing.T) {
	uc, tx := newSubmitUseCase(&mockFeedbackRepository{}, &mockNotifier{})

	cmd := validSubmitCommand()
	cmd.Role = "academic_staff"

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Zero(t, tx.calls)
}

func TestSubmitFeedback_BlockedLanguageRejected(t *testing.T) {
	uc, tx := newSubmitUseCase(&mockFeedbackRepository{}, &mockNotifier{})

	cmd := validSubmitCommand()
	cmd.Description = "this stupid portal never works"

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, tx.calls)
}

func TestSubmitFeedback_AcademicRequiresDepartment(t *testing.T) {
	uc, _ := newSubmitUseCase(&mockFeedbackRepository{}, &mockNotifier{})

	cmd := validSubmitCommand()
	cmd.Department = ""

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "department is required")
}

func TestSubmitFeedback_HTMLStripped(t *testing.T) {
	var savedSubject string
	repo := &mockFeedbackRepository{
		saveFunc: func(_ context.Context, f *feedback.Feedback) error {
			savedSubject = f.Subject()
			return f.SetID(1)
		},
	}
	uc, _ := newSubmitUseCase(repo, &mockNotifier{})

	cmd := validSubmitCommand()
	cmd.Subject = "<b>Exam results delayed</b>"

	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "Exam results delayed", savedSubject)
}
