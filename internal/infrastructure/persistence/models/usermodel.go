package models

type UserModel struct {
	ID                        uint   `gorm:"primaryKey"`
	Email                     string `gorm:"uniqueIndex;size:255;not null"`
	FullName                  string `gorm:"size:120;not null"`
	Role                      string `gorm:"size:40;not null;index"`
	Department                string `gorm:"size:120;index"`
	IsActive                  bool   `gorm:"not null;default:true"`
	IsVerified                bool   `gorm:"not null;default:false"`
	EmailNotificationsEnabled bool   `gorm:"not null;default:true"`
	PushNotificationsEnabled  bool   `gorm:"not null;default:true"`
	HighPriorityAlertsEnabled bool   `gorm:"not null;default:true"`
	WeeklyDigestEnabled       bool   `gorm:"not null;default:false"`
	CreatedAt                 int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt                 int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
