package usecases

import (
	"context"
	"time"

	"vox/internal/application/notification/services"
	"vox/internal/domain/feedback"
	vo "vox/internal/domain/feedback/valueobjects"
	notificationvo "vox/internal/domain/notification/valueobjects"
	"vox/internal/domain/user"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
)

type mockFeedbackRepository struct {
	saveFunc                 func(ctx context.Context, f *feedback.Feedback) error
	updateFunc               func(ctx context.Context, f *feedback.Feedback) error
	deleteFunc               func(ctx context.Context, id uint) error
	getByIDFunc              func(ctx context.Context, id uint) (*feedback.Feedback, error)
	listFunc                 func(ctx context.Context, filter feedback.Filter) ([]*feedback.Feedback, int64, error)
	listRecentFunc           func(ctx context.Context, t vo.FeedbackType, category string, limit int) ([]*feedback.Feedback, error)
	countSimilarityGroupFunc func(ctx context.Context, group string) (int64, error)
	listOverdueFunc          func(ctx context.Context, now time.Time) ([]*feedback.Feedback, error)
	addNoteFunc              func(ctx context.Context, note *feedback.InternalNote) error
}

func (m *mockFeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, f)
	}
	return f.SetID(1)
}

func (m *mockFeedbackRepository) Update(ctx context.Context, f *feedback.Feedback) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, f)
	}
	return nil
}

func (m *mockFeedbackRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockFeedbackRepository) GetByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("feedback not found")
}

func (m *mockFeedbackRepository) List(ctx context.Context, filter feedback.Filter) ([]*feedback.Feedback, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockFeedbackRepository) ListRecent(ctx context.Context, t vo.FeedbackType, category string, limit int) ([]*feedback.Feedback, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(ctx, t, category, limit)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) CountSimilarityGroup(ctx context.Context, group string) (int64, error) {
	if m.countSimilarityGroupFunc != nil {
		return m.countSimilarityGroupFunc(ctx, group)
	}
	return 0, nil
}

func (m *mockFeedbackRepository) ListOverdue(ctx context.Context, now time.Time) ([]*feedback.Feedback, error) {
	if m.listOverdueFunc != nil {
		return m.listOverdueFunc(ctx, now)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) AddNote(ctx context.Context, note *feedback.InternalNote) error {
	if m.addNoteFunc != nil {
		return m.addNoteFunc(ctx, note)
	}
	return nil
}

type mockUserRepository struct {
	getByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	listByRoleFunc func(ctx context.Context, role authorization.Role, department string) ([]*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role authorization.Role, department string) ([]*user.User, error) {
	if m.listByRoleFunc != nil {
		return m.listByRoleFunc(ctx, role, department)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdatePreferences(ctx context.Context, userID uint, prefs user.NotificationPreferences) error {
	return nil
}

type deliveredNotification struct {
	RecipientID uint
	Role        authorization.Role
	Department  string
	Title       string
	Message     string
	Severity    notificationvo.Severity
	Mandatory   bool
}

type mockNotifier struct {
	delivered []deliveredNotification
	flushed   int
	flushErr  error
}

func (m *mockNotifier) Deliver(ctx context.Context, out *services.Outbox, recipientID uint, feedbackID *uint,
	title, message string, severity notificationvo.Severity, mandatoryEmail bool) error {
	m.delivered = append(m.delivered, deliveredNotification{
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
		Severity:    severity,
		Mandatory:   mandatoryEmail,
	})
	return nil
}

func (m *mockNotifier) DeliverToRole(ctx context.Context, out *services.Outbox, role authorization.Role, department string,
	feedbackID *uint, title, message string, severity notificationvo.Severity) error {
	m.delivered = append(m.delivered, deliveredNotification{
		Role:       role,
		Department: department,
		Title:      title,
		Message:    message,
		Severity:   severity,
	})
	return nil
}

func (m *mockNotifier) Flush(ctx context.Context, out *services.Outbox) error {
	m.flushed++
	return m.flushErr
}

// mockTxManager runs the function directly; rollback is simulated by
// the function's error return.
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
