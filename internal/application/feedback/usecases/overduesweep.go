package usecases

import (
	"context"
	"fmt"
	"time"

	"vox/internal/application/notification/services"
	"vox/internal/domain/feedback"
	notificationvo "vox/internal/domain/notification/valueobjects"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

// OverdueSweepUseCase scans for assigned items past their due time and
// alerts the assignee once per assignment. The alert flag and the
// notification commit together, and the optimistic version check makes
// concurrent sweeps converge on a single alert.
type OverdueSweepUseCase struct {
	feedbackRepo feedback.Repository
	notifier     NotificationDispatcher
	txManager    TransactionManager
	logger       logger.Interface
}

func NewOverdueSweepUseCase(
	feedbackRepo feedback.Repository,
	notifier NotificationDispatcher,
	txManager TransactionManager,
	logger logger.Interface,
) *OverdueSweepUseCase {
	return &OverdueSweepUseCase{
		feedbackRepo: feedbackRepo,
		notifier:     notifier,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute returns the number of items alerted in this pass.
func (uc *OverdueSweepUseCase) Execute(ctx context.Context) (int, error) {
	now := time.Now()
	overdue, err := uc.feedbackRepo.ListOverdue(ctx, now)
	if err != nil {
		uc.logger.Errorw("overdue scan failed", "error", err)
		return 0, err
	}

	swept := 0
	for _, item := range overdue {
		if err := uc.sweepOne(ctx, item, now); err != nil {
			if errors.IsConflictError(err) {
				// Another sweep or a reassignment got there first.
				uc.logger.Debugw("skipping overdue item, concurrent update", "feedback_id", item.ID())
				continue
			}
			uc.logger.Errorw("failed to alert overdue item", "feedback_id", item.ID(), "error", err)
			continue
		}
		swept++
	}

	if swept > 0 {
		uc.logger.Infow("overdue sweep completed", "alerted", swept, "scanned", len(overdue))
	}
	return swept, nil
}

func (uc *OverdueSweepUseCase) sweepOne(ctx context.Context, item *feedback.Feedback, now time.Time) error {
	out := &services.Outbox{}
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if !item.IsOverdue(now) {
			return nil
		}

		item.MarkOverdueAlertSent()
		if err := uc.feedbackRepo.Update(txCtx, item); err != nil {
			return err
		}

		assigneeID := item.AssigneeID()
		if assigneeID == nil {
			return nil
		}
		id := item.ID()
		message := fmt.Sprintf("Feedback '%s' passed its due time on %s.", item.Subject(), item.DueAt().Format(time.RFC3339))

		// The alert flag commits before the email goes out, so the
		// email stays optional: a mandatory failure here could not roll
		// anything back and would strand the flag with no alert.
		if err := uc.notifier.Deliver(txCtx, out, *assigneeID, &id,
			"Assignment overdue", message,
			notificationvo.SeverityError, false); err != nil {
			return err
		}

		if assignerID := item.AssignerID(); assignerID != nil && *assignerID != *assigneeID {
			return uc.notifier.Deliver(txCtx, out, *assignerID, &id,
				"Assigned item overdue", message,
				notificationvo.SeverityWarning, false)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return uc.notifier.Flush(ctx, out)
}
