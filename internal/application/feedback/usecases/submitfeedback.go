package usecases

import (
	"context"
	"fmt"
	"time"

	"vox/internal/application/notification/services"
	"vox/internal/domain/feedback"
	"vox/internal/domain/feedback/triage"
	vo "vox/internal/domain/feedback/valueobjects"
	notificationvo "vox/internal/domain/notification/valueobjects"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

type SubmitFeedbackCommand struct {
	Type        string
	Category    string
	Subject     string
	Description string
	IsAnonymous bool
	Department  string
	SubmitterID uint
	Role        string
}

type SubmitFeedbackResult struct {
	FeedbackID      uint
	Status          string
	Priority        string
	SimilarityGroup string
	CreatedAt       time.Time
}

// SubmitFeedbackUseCase runs the full intake pipeline: content screen,
// keyword classification, similarity grouping, group escalation, then
// persists the item with its initial history entry and fans out
// high-priority alerts, all in one transaction.
type SubmitFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	dedup        *triage.Deduplicator
	notifier     NotificationDispatcher
	txManager    TransactionManager
	logger       logger.Interface
}

func NewSubmitFeedbackUseCase(
	feedbackRepo feedback.Repository,
	dedup *triage.Deduplicator,
	notifier NotificationDispatcher,
	txManager TransactionManager,
	logger logger.Interface,
) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		dedup:        dedup,
		notifier:     notifier,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error) {
	uc.logger.Infow("executing submit feedback use case", "submitter_id", cmd.SubmitterID, "type", cmd.Type)

	role, err := authorization.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !role.IsStudent() {
		return nil, errors.NewForbiddenError("only students can submit feedback")
	}

	feedbackType, err := vo.NewFeedbackType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	category := triage.SanitizeText(cmd.Category)
	subject := triage.SanitizeText(cmd.Subject)
	description := triage.SanitizeText(cmd.Description)

	if triage.ContainsBlockedWords(subject) || triage.ContainsBlockedWords(description) {
		return nil, errors.NewValidationError("feedback contains blocked language, please rewrite before submitting")
	}

	basePriority := triage.DetectPriority(description)
	group := uc.dedup.DetectGroup(ctx, feedbackType.String(), category, subject, description)

	// Group size counts the incoming item too.
	size := uc.dedup.GroupSize(ctx, group) + 1
	priority, err := vo.NewPriority(triage.EscalateForSize(size, basePriority))
	if err != nil {
		return nil, errors.NewInternalError("classifier produced invalid priority", err.Error())
	}

	item, err := feedback.NewFeedback(
		feedbackType,
		category,
		subject,
		description,
		cmd.IsAnonymous,
		cmd.Department,
		cmd.SubmitterID,
		priority,
		group,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	out := &services.Outbox{}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.feedbackRepo.Save(txCtx, item); err != nil {
			return err
		}
		item.ClearUncommittedHistory()
		return uc.notifyHighPriority(txCtx, out, item)
	})
	if err != nil {
		uc.logger.Errorw("failed to save feedback", "error", err)
		return nil, err
	}

	if err := uc.notifier.Flush(ctx, out); err != nil {
		uc.logger.Warnw("post-commit email flush failed", "feedback_id", item.ID(), "error", err)
	}

	uc.logger.Infow("feedback submitted",
		"feedback_id", item.ID(), "priority", item.Priority(), "similarity_group", item.SimilarityGroup())

	return &SubmitFeedbackResult{
		FeedbackID:      item.ID(),
		Status:          item.Status().String(),
		Priority:        item.Priority().String(),
		SimilarityGroup: item.SimilarityGroup(),
		CreatedAt:       item.CreatedAt(),
	}, nil
}

// notifyHighPriority alerts the responsible intake tier when a new item
// arrives at high or urgent priority: department heads of the item's
// department for academic items, the student affairs office otherwise.
func (uc *SubmitFeedbackUseCase) notifyHighPriority(ctx context.Context, out *services.Outbox, item *feedback.Feedback) error {
	if !item.Priority().AtLeast(vo.PriorityHigh) {
		return nil
	}

	targetRole := authorization.RoleStudentAffairs
	department := ""
	if item.Type().IsAcademic() {
		targetRole = authorization.RoleDepartmentHead
		department = item.Department()
	}

	id := item.ID()
	return uc.notifier.DeliverToRole(ctx, out, targetRole, department, &id,
		"High-priority feedback",
		fmt.Sprintf("%s: %s", item.Category(), item.Subject()),
		notificationvo.SeverityWarning,
	)
}
