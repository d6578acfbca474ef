package usecases

import (
	"context"

	"vox/internal/application/feedback/dto"
	"vox/internal/application/notification/services"
	notificationvo "vox/internal/domain/notification/valueobjects"
	"vox/internal/shared/authorization"
)

type SubmitFeedbackExecutor interface {
	Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error)
}

type EditFeedbackExecutor interface {
	Execute(ctx context.Context, cmd EditFeedbackCommand) (*dto.FeedbackDTO, error)
}

type AssignFeedbackExecutor interface {
	Execute(ctx context.Context, cmd AssignFeedbackCommand) (*dto.FeedbackDTO, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.FeedbackDTO, error)
}

type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) (*dto.FeedbackDTO, error)
}

type EscalateFeedbackExecutor interface {
	Execute(ctx context.Context, cmd EscalateFeedbackCommand) error
}

type GetFeedbackExecutor interface {
	Execute(ctx context.Context, query GetFeedbackQuery) (*dto.FeedbackDTO, error)
}

type ListFeedbackExecutor interface {
	Execute(ctx context.Context, query ListFeedbackQuery) (*ListFeedbackResult, error)
}

// TransactionManager runs a function inside a database transaction
// carried through the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationDispatcher is the slice of the notifier the feedback use
// cases need.
type NotificationDispatcher interface {
	Deliver(ctx context.Context, out *services.Outbox, recipientID uint, feedbackID *uint,
		title, message string, severity notificationvo.Severity, mandatoryEmail bool) error
	DeliverToRole(ctx context.Context, out *services.Outbox, role authorization.Role, department string,
		feedbackID *uint, title, message string, severity notificationvo.Severity) error
	Flush(ctx context.Context, out *services.Outbox) error
}
