package usecases

import (
	"context"
	"fmt"

	"vox/internal/application/feedback/dto"
	"vox/internal/application/notification/services"
	"vox/internal/domain/feedback"
	vo "vox/internal/domain/feedback/valueobjects"
	notificationvo "vox/internal/domain/notification/valueobjects"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

type UpdateStatusCommand struct {
	FeedbackID        uint
	ActorID           uint
	Role              string
	Department        string
	Status            string
	Note              string
	ResolutionSummary string
}

// UpdateStatusUseCase moves an item through the lifecycle and tells the
// submitter about it.
type UpdateStatusUseCase struct {
	feedbackRepo feedback.Repository
	notifier     NotificationDispatcher
	txManager    TransactionManager
	logger       logger.Interface
}

func NewUpdateStatusUseCase(
	feedbackRepo feedback.Repository,
	notifier NotificationDispatcher,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		feedbackRepo: feedbackRepo,
		notifier:     notifier,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.FeedbackDTO, error) {
	uc.logger.Infow("executing update status use case",
		"feedback_id", cmd.FeedbackID, "actor_id", cmd.ActorID, "status", cmd.Status)

	role, err := authorization.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	newStatus, err := vo.NewFeedbackStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var item *feedback.Feedback
	out := &services.Outbox{}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err = uc.feedbackRepo.GetByID(txCtx, cmd.FeedbackID)
		if err != nil {
			return err
		}

		actor := feedback.Actor{ID: cmd.ActorID, Role: role, Department: cmd.Department}
		if !feedback.CanSetStatus(actor, item, newStatus) {
			return errors.NewForbiddenError("insufficient permissions for this status change")
		}

		previous := item.Status()
		if err := item.ChangeStatus(newStatus, cmd.ActorID, cmd.Note); err != nil {
			return errors.NewInvalidTransitionError(err.Error())
		}
		if cmd.ResolutionSummary != "" {
			item.AttachResolutionSummary(cmd.ResolutionSummary)
		}

		if err := uc.feedbackRepo.Update(txCtx, item); err != nil {
			return err
		}
		item.ClearUncommittedHistory()

		// A no-op status request still succeeds but notifies nobody.
		if previous == newStatus {
			return nil
		}

		id := item.ID()
		return uc.notifier.Deliver(txCtx, out, item.SubmitterID(), &id,
			"Feedback status updated",
			fmt.Sprintf("Your feedback '%s' moved to %s.", item.Subject(), newStatus),
			notificationvo.SeverityInfo, false)
	})
	if err != nil {
		uc.logger.Errorw("failed to update feedback status", "feedback_id", cmd.FeedbackID, "error", err)
		return nil, err
	}

	if err := uc.notifier.Flush(ctx, out); err != nil {
		uc.logger.Warnw("post-commit email flush failed", "feedback_id", cmd.FeedbackID, "error", err)
	}

	return dto.ToFeedbackDTO(item, cmd.ActorID, role), nil
}
