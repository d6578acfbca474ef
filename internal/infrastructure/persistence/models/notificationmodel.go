package models

type NotificationModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	FeedbackID *uint  `gorm:"index"`
	Title      string `gorm:"size:160;not null"`
	Message    string `gorm:"type:text;not null"`
	Severity   string `gorm:"size:20;not null"`
	Read       bool   `gorm:"not null;default:false;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
