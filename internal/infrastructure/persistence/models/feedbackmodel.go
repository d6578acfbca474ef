package models

type FeedbackModel struct {
	ID                uint   `gorm:"primaryKey"`
	Type              string `gorm:"size:20;not null;index"`
	Category          string `gorm:"size:120;not null;index"`
	Subject           string `gorm:"size:200;not null"`
	Description       string `gorm:"type:text;not null"`
	Status            string `gorm:"size:20;not null;index"`
	Priority          string `gorm:"size:20;not null;index"`
	IsAnonymous       bool   `gorm:"not null;default:false"`
	Department        string `gorm:"size:120;index"`
	SimilarityGroup   string `gorm:"size:64;index"`
	ResolutionSummary string `gorm:"type:text"`
	SubmitterID       uint   `gorm:"not null;index"`
	AssigneeID        *uint  `gorm:"index"`
	AssignerID        *uint
	AssignedAt        *int64
	DueAt             *int64 `gorm:"index"`
	OverdueAlertSent  bool   `gorm:"not null;default:false"`
	Version           int    `gorm:"not null;default:1"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (FeedbackModel) TableName() string {
	return "feedback"
}

type StatusHistoryModel struct {
	ID         uint   `gorm:"primaryKey"`
	FeedbackID uint   `gorm:"not null;index"`
	Status     string `gorm:"size:20;not null"`
	ActorID    uint   `gorm:"not null"`
	Note       string `gorm:"type:text"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (StatusHistoryModel) TableName() string {
	return "feedback_status_history"
}

type InternalNoteModel struct {
	ID         uint   `gorm:"primaryKey"`
	FeedbackID uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	Text       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (InternalNoteModel) TableName() string {
	return "feedback_internal_notes"
}
