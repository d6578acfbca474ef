package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"vox/internal/domain/feedback"
	vo "vox/internal/domain/feedback/valueobjects"
	"vox/internal/infrastructure/persistence/mappers"
	"vox/internal/infrastructure/persistence/models"
	"vox/internal/shared/db"
	apperrors "vox/internal/shared/errors"
)

// FeedbackRepository persists the feedback aggregate with its history
// and notes. All writes honor a transaction carried in the context.
type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.FeedbackMapper
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db:     database,
		mapper: mappers.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	if err := f.SetID(model.ID); err != nil {
		return err
	}
	f.MarkVersionPersisted()

	return r.appendHistory(ctx, f)
}

// Update writes the aggregate guarded by the optimistic version check:
// the WHERE clause matches the exact version the aggregate was loaded
// with, so a concurrent writer that committed first makes RowsAffected
// zero regardless of how many times either mutation bumped the counter.
func (r *FeedbackRepository) Update(ctx context.Context, f *feedback.Feedback) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FeedbackModel{}).
		Where("id = ? AND version = ?", model.ID, f.PersistedVersion()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("feedback was modified concurrently")
	}
	f.MarkVersionPersisted()

	return r.appendHistory(ctx, f)
}

func (r *FeedbackRepository) appendHistory(ctx context.Context, f *feedback.Feedback) error {
	tx := db.GetTxFromContext(ctx, r.db)
	for _, entry := range f.UncommittedHistory() {
		model := r.mapper.HistoryToModel(entry)
		model.FeedbackID = f.ID()
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save status history: %w", err)
		}
	}
	return nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.FeedbackModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("feedback not found")
	}

	if err := tx.Where("feedback_id = ?", id).Delete(&models.StatusHistoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete status history: %w", err)
	}
	if err := tx.Where("feedback_id = ?", id).Delete(&models.InternalNoteModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete internal notes: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	var model models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("feedback not found")
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}

	f, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FeedbackRepository) loadRelations(ctx context.Context, f *feedback.Feedback) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var historyModels []models.StatusHistoryModel
	if err := tx.
		Where("feedback_id = ?", f.ID()).
		Order("created_at ASC").
		Find(&historyModels).Error; err != nil {
		return fmt.Errorf("failed to load status history: %w", err)
	}

	var noteModels []models.InternalNoteModel
	if err := tx.
		Where("feedback_id = ?", f.ID()).
		Order("created_at ASC").
		Find(&noteModels).Error; err != nil {
		return fmt.Errorf("failed to load internal notes: %w", err)
	}

	history := make([]*feedback.StatusHistory, 0, len(historyModels))
	for i := range historyModels {
		history = append(history, r.mapper.HistoryToDomain(&historyModels[i]))
	}
	notes := make([]*feedback.InternalNote, 0, len(noteModels))
	for i := range noteModels {
		notes = append(notes, r.mapper.NoteToDomain(&noteModels[i]))
	}

	f.SetLoadedRelations(history, notes)
	return nil
}

func (r *FeedbackRepository) List(ctx context.Context, filter feedback.Filter) ([]*feedback.Feedback, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.FeedbackModel{})

	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}
	if filter.SubmitterID != nil {
		query = query.Where("submitter_id = ?", *filter.SubmitterID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	var modelList []models.FeedbackModel
	if err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}

	items := make([]*feedback.Feedback, 0, len(modelList))
	for i := range modelList {
		f, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, f)
	}
	return items, total, nil
}

func (r *FeedbackRepository) ListRecent(ctx context.Context, feedbackType vo.FeedbackType, category string, limit int) ([]*feedback.Feedback, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.FeedbackModel
	if err := tx.
		Where("type = ? AND category = ?", feedbackType.String(), category).
		Order("created_at DESC").
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent feedback: %w", err)
	}

	items := make([]*feedback.Feedback, 0, len(modelList))
	for i := range modelList {
		f, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, nil
}

func (r *FeedbackRepository) CountSimilarityGroup(ctx context.Context, group string) (int64, error) {
	if group == "" {
		return 0, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.FeedbackModel{}).
		Where("similarity_group = ?", group).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count similarity group: %w", err)
	}
	return count, nil
}

func (r *FeedbackRepository) ListOverdue(ctx context.Context, now time.Time) ([]*feedback.Feedback, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.FeedbackModel
	if err := tx.
		Where("due_at IS NOT NULL AND due_at < ?", now.UnixMilli()).
		Where("overdue_alert_sent = ?", false).
		Where("status NOT IN ?", []string{
			vo.StatusResolved.String(),
			vo.StatusRejected.String(),
		}).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list overdue feedback: %w", err)
	}

	items := make([]*feedback.Feedback, 0, len(modelList))
	for i := range modelList {
		f, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, nil
}

func (r *FeedbackRepository) AddNote(ctx context.Context, note *feedback.InternalNote) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.NoteToModel(note)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save internal note: %w", err)
	}
	return nil
}
