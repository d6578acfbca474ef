package usecases

import (
	"context"
	"time"

	"vox/internal/application/feedback/dto"
	"vox/internal/domain/feedback"
	"vox/internal/domain/feedback/triage"
	vo "vox/internal/domain/feedback/valueobjects"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

type EditFeedbackCommand struct {
	FeedbackID  uint
	ActorID     uint
	Role        string
	Type        string
	Category    string
	Subject     string
	Description string
	IsAnonymous bool
	Department  string
}

// EditFeedbackUseCase lets the submitter rewrite a pending item inside
// the edit window. The triage pipeline re-runs on the new text so
// priority and similarity group stay consistent with the content.
type EditFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	dedup        *triage.Deduplicator
	txManager    TransactionManager
	editWindow   time.Duration
	logger       logger.Interface
}

func NewEditFeedbackUseCase(
	feedbackRepo feedback.Repository,
	dedup *triage.Deduplicator,
	txManager TransactionManager,
	editWindow time.Duration,
	logger logger.Interface,
) *EditFeedbackUseCase {
	return &EditFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		dedup:        dedup,
		txManager:    txManager,
		editWindow:   editWindow,
		logger:       logger,
	}
}

func (uc *EditFeedbackUseCase) Execute(ctx context.Context, cmd EditFeedbackCommand) (*dto.FeedbackDTO, error) {
	uc.logger.Infow("executing edit feedback use case", "feedback_id", cmd.FeedbackID, "actor_id", cmd.ActorID)

	role, err := authorization.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	feedbackType, err := vo.NewFeedbackType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	category := triage.SanitizeText(cmd.Category)
	subject := triage.SanitizeText(cmd.Subject)
	description := triage.SanitizeText(cmd.Description)

	if triage.ContainsBlockedWords(subject) || triage.ContainsBlockedWords(description) {
		return nil, errors.NewValidationError("updated text contains blocked language")
	}

	var item *feedback.Feedback
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err = uc.feedbackRepo.GetByID(txCtx, cmd.FeedbackID)
		if err != nil {
			return err
		}

		actor := feedback.Actor{ID: cmd.ActorID, Role: role}
		if !feedback.CanEdit(actor, item) {
			return errors.NewForbiddenError("only the submitting student can edit this feedback")
		}
		if !item.Status().IsPending() {
			return errors.NewInvalidTransitionError("feedback cannot be edited after review begins")
		}
		if !item.WithinEditWindow(time.Now(), uc.editWindow) {
			return errors.NewValidationError("the edit window for this feedback has closed")
		}

		if err := item.ApplyEdit(feedbackType, category, subject, description, cmd.IsAnonymous, cmd.Department); err != nil {
			return errors.NewValidationError(err.Error())
		}

		basePriority := triage.DetectPriority(description)
		group := uc.dedup.DetectGroup(txCtx, feedbackType.String(), category, subject, description)

		// The item is already persisted, so the group count includes it.
		size := uc.dedup.GroupSize(txCtx, group)
		if size == 0 {
			size = 1
		}
		priority, err := vo.NewPriority(triage.EscalateForSize(size, basePriority))
		if err != nil {
			return errors.NewInternalError("classifier produced invalid priority", err.Error())
		}
		if err := item.Reclassify(priority, group); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.feedbackRepo.Update(txCtx, item); err != nil {
			return err
		}
		item.ClearUncommittedHistory()
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to edit feedback", "feedback_id", cmd.FeedbackID, "error", err)
		return nil, err
	}

	return dto.ToFeedbackDTO(item, cmd.ActorID, role), nil
}
