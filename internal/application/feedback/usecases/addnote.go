package usecases

import (
	"context"

	"vox/internal/application/feedback/dto"
	"vox/internal/domain/feedback"
	"vox/internal/shared/authorization"
	"vox/internal/shared/errors"
	"vox/internal/shared/logger"
)

type AddNoteCommand struct {
	FeedbackID uint
	AuthorID   uint
	Role       string
	Department string
	Text       string
}

// AddNoteUseCase attaches a staff-only annotation to an item.
type AddNoteUseCase struct {
	feedbackRepo feedback.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewAddNoteUseCase(
	feedbackRepo feedback.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		feedbackRepo: feedbackRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*dto.FeedbackDTO, error) {
	uc.logger.Infow("executing add note use case", "feedback_id", cmd.FeedbackID, "author_id", cmd.AuthorID)

	role, err := authorization.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var item *feedback.Feedback
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err = uc.feedbackRepo.GetByID(txCtx, cmd.FeedbackID)
		if err != nil {
			return err
		}

		actor := feedback.Actor{ID: cmd.AuthorID, Role: role, Department: cmd.Department}
		if !feedback.CanAddNote(actor, item) {
			return errors.NewForbiddenError("insufficient permissions to add a note")
		}

		note, err := feedback.NewInternalNote(item.ID(), cmd.AuthorID, cmd.Text)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.feedbackRepo.AddNote(txCtx, note); err != nil {
			return err
		}

		// Reload so the response carries the fresh note.
		item, err = uc.feedbackRepo.GetByID(txCtx, cmd.FeedbackID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to add note", "feedback_id", cmd.FeedbackID, "error", err)
		return nil, err
	}

	return dto.ToFeedbackDTO(item, cmd.AuthorID, role), nil
}
