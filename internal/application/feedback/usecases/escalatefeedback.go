package usecases

import (
	"context"
	"fmt"

	"vox/internal/application/notification/services"
	"vox/internal/domain/feedback"
	notificationvo "vox/internal/domain/notification/valueobjects"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

type EscalateFeedbackCommand struct {
	FeedbackID uint
	ActorID    uint
	Role       string
	Department string
}

// EscalateFeedbackUseCase pushes an item one tier up its chain:
// academic items alert the department heads of the item's department,
// non-academic items alert the head of student affairs.
type EscalateFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	notifier     NotificationDispatcher
	txManager    TransactionManager
	logger       logger.Interface
}

func NewEscalateFeedbackUseCase(
	feedbackRepo feedback.Repository,
	notifier NotificationDispatcher,
	txManager TransactionManager,
	logger logger.Interface,
) *EscalateFeedbackUseCase {
	return &EscalateFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		notifier:     notifier,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *EscalateFeedbackUseCase) Execute(ctx context.Context, cmd EscalateFeedbackCommand) error {
	uc.logger.Infow("executing escalate feedback use case", "feedback_id", cmd.FeedbackID, "actor_id", cmd.ActorID)

	role, err := authorization.ParseRole(cmd.Role)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	out := &services.Outbox{}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err := uc.feedbackRepo.GetByID(txCtx, cmd.FeedbackID)
		if err != nil {
			return err
		}

		actor := feedback.Actor{ID: cmd.ActorID, Role: role, Department: cmd.Department}
		if !feedback.CanEscalate(actor, item) {
			return errors.NewForbiddenError("only operational staff can escalate")
		}
		if item.Status().IsTerminal() {
			return errors.NewInvalidTransitionError(
				fmt.Sprintf("feedback is %s and cannot be escalated", item.Status()))
		}

		targetRole := authorization.RoleHeadStudentAffairs
		department := ""
		if item.Type().IsAcademic() {
			targetRole = authorization.RoleDepartmentHead
			department = item.Department()
		}

		id := item.ID()
		return uc.notifier.DeliverToRole(txCtx, out, targetRole, department, &id,
			"Escalated feedback",
			fmt.Sprintf("Feedback '%s' has been escalated for urgent review.", item.Subject()),
			notificationvo.SeverityWarning,
		)
	})
	if err != nil {
		uc.logger.Errorw("failed to escalate feedback", "feedback_id", cmd.FeedbackID, "error", err)
		return err
	}

	if err := uc.notifier.Flush(ctx, out); err != nil {
		uc.logger.Warnw("post-commit email flush failed", "feedback_id", cmd.FeedbackID, "error", err)
	}
	return nil
}
