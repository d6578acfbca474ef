package usecases

import (
	"context"
	"fmt"
	"time"

	"vox/internal/application/feedback/dto"
	"vox/internal/application/notification/services"
	"vox/internal/domain/feedback"
	notificationvo "vox/internal/domain/notification/valueobjects"
	"vox/internal/domain/user"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

type AssignFeedbackCommand struct {
	FeedbackID uint
	AssignerID uint
	Role       string
	Department string
	AssigneeID uint
	DueAt      *time.Time
	Note       string
}

// AssignFeedbackUseCase routes an item down the role hierarchy. The
// assignment, its history entry and the assignee's in-app alert commit
// as one transaction.
type AssignFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	userRepo     user.Repository
	notifier     NotificationDispatcher
	txManager    TransactionManager
	logger       logger.Interface
}

func NewAssignFeedbackUseCase(
	feedbackRepo feedback.Repository,
	userRepo user.Repository,
	notifier NotificationDispatcher,
	txManager TransactionManager,
	logger logger.Interface,
) *AssignFeedbackUseCase {
	return &AssignFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *AssignFeedbackUseCase) Execute(ctx context.Context, cmd AssignFeedbackCommand) (*dto.FeedbackDTO, error) {
	uc.logger.Infow("executing assign feedback use case",
		"feedback_id", cmd.FeedbackID, "assigner_id", cmd.AssignerID, "assignee_id", cmd.AssigneeID)

	role, err := authorization.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}
	if cmd.DueAt != nil && cmd.DueAt.Before(time.Now()) {
		return nil, errors.NewValidationError("due date must be in the future")
	}

	var item *feedback.Feedback
	out := &services.Outbox{}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err = uc.feedbackRepo.GetByID(txCtx, cmd.FeedbackID)
		if err != nil {
			return err
		}

		assignee, err := uc.userRepo.GetByID(txCtx, cmd.AssigneeID)
		if err != nil {
			return errors.NewNotFoundError("assignee not found")
		}
		if err := assignee.CanReceiveAssignments(); err != nil {
			return errors.NewValidationError(err.Error())
		}

		assigner := feedback.Actor{ID: cmd.AssignerID, Role: role, Department: cmd.Department}
		assigneeActor := feedback.Actor{ID: assignee.ID(), Role: assignee.Role(), Department: assignee.Department()}
		if !feedback.CanAssign(assigner, item, assigneeActor) {
			return errors.NewForbiddenError("invalid assignment target")
		}

		note := cmd.Note
		if note == "" {
			note = "Assigned"
		}
		if err := item.AssignTo(assignee.ID(), cmd.AssignerID, cmd.DueAt, note); err != nil {
			return errors.NewInvalidTransitionError(err.Error())
		}

		if err := uc.feedbackRepo.Update(txCtx, item); err != nil {
			return err
		}
		item.ClearUncommittedHistory()

		id := item.ID()
		return uc.notifier.Deliver(txCtx, out, assignee.ID(), &id,
			"New assignment",
			fmt.Sprintf("You have been assigned feedback '%s'.", item.Subject()),
			notificationvo.SeverityWarning, false)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign feedback", "feedback_id", cmd.FeedbackID, "error", err)
		return nil, err
	}

	if err := uc.notifier.Flush(ctx, out); err != nil {
		uc.logger.Warnw("post-commit email flush failed", "feedback_id", cmd.FeedbackID, "error", err)
	}

	return dto.ToFeedbackDTO(item, cmd.AssignerID, role), nil
}
