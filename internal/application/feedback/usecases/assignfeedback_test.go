package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vox/internal/domain/feedback"
	vo "vox/internal/domain/feedback/valueobjects"
	"vox/internal/domain/user"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

func reconstructAcademicItem(t *testing.T, id uint, status vo.FeedbackStatus, department string) *feedback.Feedback {
	t.Helper()
	now := time.Now()
	f, err := feedback.ReconstructFeedback(
		id, vo.TypeAcademic, "grading", "Exam results delayed",
		"CSC301 results have not been released", status, vo.PriorityMedium,
		false, department, "", "", 10,
		nil, nil, nil, nil, false, 1, now, now,
	)
	require.NoError(t, err)
	return f
}

func reconstructNonAcademicItem(t *testing.T, id uint, status vo.FeedbackStatus, assigneeID *uint, dueAt *time.Time) *feedback.Feedback {
	t.Helper()
	now := time.Now()
	f, err := feedback.ReconstructFeedback(
		id, vo.TypeNonAcademic, "facilities", "Broken AC",
		"The AC in LT-2 is not working", status, vo.PriorityHigh,
		false, "", "", "", 10,
		assigneeID, nil, nil, dueAt, false, 1, now, now,
	)
	require.NoError(t, err)
	return f
}

func staffUser(id uint, role authorization.Role, department string) *user.User {
	return user.ReconstructUser(id, "staff@pau.edu.ng", "Staff Member", role, department,
		true, true, user.DefaultNotificationPreferences(), time.Now())
}

func newAssignUseCase(feedbackRepo *mockFeedbackRepository, userRepo *mockUserRepository, notifier *mockNotifier) *AssignFeedbackUseCase {
	return NewAssignFeedbackUseCase(feedbackRepo, userRepo, notifier, &mockTxManager{}, logger.NewLogger())
}

func TestAssignFeedback_Success(t *testing.T) {
	item := reconstructAcademicItem(t, 5, vo.StatusPending, "Computer Science")
	feedbackRepo := &mockFeedbackRepository{
		getByIDFunc: func(_ context.Context, _ uint) (*feedback.Feedback, error) { return item, nil },
	}
	userRepo := &mockUserRepository{
		getByIDFunc: func(_ context.Context, id uint) (*user.User, error) {
			return staffUser(id, authorization.RoleCourseCoordinator, "Computer Science"), nil
		},
	}
	notifier := &mockNotifier{}
	uc := newAssignUseCase(feedbackRepo, userRepo, notifier)

	due := time.Now().Add(72 * time.Hour)
	result, err := uc.Execute(context.Background(), AssignFeedbackCommand{
		FeedbackID: 5,
		AssignerID: 20,
		Role:       "department_head",
		Department: "Computer Science",
		AssigneeID: 21,
		DueAt:      &due,
	})
	require.NoError(t, err)

	assert.Equal(t, "assigned", result.Status)
	require.NotNil(t, result.AssigneeID)
	assert.Equal(t, uint(21), *result.AssigneeID)

	require.Len(t, notifier.delivered, 1)
	assert.Equal(t, uint(21), notifier.delivered[0].RecipientID)
	assert.Equal(t, "New assignment", notifier.delivered[0].Title)
	assert.Equal(t, 1, notifier.flushed)
}

func TestAssignFeedback_CrossDepartmentForbidden(t *testing.T) {
	item := reconstructAcademicItem(t, 5, vo.StatusPending, "Computer Science")
	feedbackRepo := &mockFeedbackRepository{
		getByIDFunc: func(_ context.Context, _ uint) (*feedback.Feedback, error) { return item, nil },
	}
	userRepo := &mockUserRepository{
		getByIDFunc: func(_ context.Context, id uint) (*user.User, error) {
			return staffUser(id, authorization.RoleCourseCoordinator, "Physics"), nil
		},
	}
	uc := newAssignUseCase(feedbackRepo, userRepo, &mockNotifier{})

	_, err := uc.Execute(context.Background(), AssignFeedbackCommand{
		FeedbackID: 5,
		AssignerID: 20,
		Role:       "department_head",
		Department: "Computer Science",
		AssigneeID: 21,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Nil(t, item.AssigneeID())
}

func TestAssignFeedback_ResolvedItemRejectedWithoutHistory(t *testing.T) {
	item := reconstructNonAcademicItem(t, 5, vo.StatusResolved, nil, nil)
	feedbackRepo := &mockFeedbackRepository{
		getByIDFunc: func(_ context.Context, _ uint) (*feedback.Feedback, error) { return item, nil },
	}
	userRepo := &mockUserRepository{
		getByIDFunc: func(_ context.Context, id uint) (*user.User, error) {
			return staffUser(id, authorization.RoleFacilitiesManagement, ""), nil
		},
	}
	notifier := &mockNotifier{}
	uc := newAssignUseCase(feedbackRepo, userRepo, notifier)

	_, err := uc.Execute(context.Background(), AssignFeedbackCommand{
		FeedbackID: 5,
		AssignerID: 30,
		Role:       "student_affairs",
		AssigneeID: 40,
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.Empty(t, item.UncommittedHistory())
	assert.Empty(t, notifier.delivered)
}

func TestAssignFeedback_DeactivatedAssigneeRejected(t *testing.T) {
	item := reconstructNonAcademicItem(t, 5, vo.StatusPending, nil, nil)
	feedbackRepo := &mockFeedbackRepository{
		getByIDFunc: func(_ context.Context, _ uint) (*feedback.Feedback, error) { return item, nil },
	}
	userRepo := &mockUserRepository{
		getByIDFunc: func(_ context.Context, id uint) (*user.User, error) {
			return user.ReconstructUser(id, "x@pau.edu.ng", "X", authorization.RoleFacilitiesManagement, "",
				false, true, user.DefaultNotificationPreferences(), time.Now()), nil
		},
	}
	uc := newAssignUseCase(feedbackRepo, userRepo, &mockNotifier{})

	_, err := uc.Execute(context.Background(), AssignFeedbackCommand{
		FeedbackID: 5,
		AssignerID: 30,
		Role:       "student_affairs",
		AssigneeID: 40,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignFeedback_MissingAssigneeNotFound(t *testing.T) {
	item := reconstructNonAcademicItem(t, 5, vo.StatusPending, nil, nil)
	feedbackRepo := &mockFeedbackRepository{
		getByIDFunc: func(_ context.Context, _ uint) (*feedback.Feedback, error) { return item, nil },
	}
	uc := newAssignUseCase(feedbackRepo, &mockUserRepository{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), AssignFeedbackCommand{
		FeedbackID: 5,
		AssignerID: 30,
		Role:       "student_affairs",
		AssigneeID: 99,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignFeedback_PastDueDateRejected(t *testing.T) {
	uc := newAssignUseCase(&mockFeedbackRepository{}, &mockUserRepository{}, &mockNotifier{})

	past := time.Now().Add(-time.Hour)
	_, err := uc.Execute(context.Background(), AssignFeedbackCommand{
		FeedbackID: 5,
		AssignerID: 30,
		Role:       "student_affairs",
		AssigneeID: 40,
		DueAt:      &past,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
