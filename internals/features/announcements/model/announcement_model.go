package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AnnouncementTypeInfo    = "info"
	AnnouncementTypeSuccess = "success"
	AnnouncementTypeWarning = "warning"
)

type Announcement struct {
	AnnouncementID       uuid.UUID `gorm:"column:announcement_id;type:uuid;primaryKey" json:"announcement_id"`
	AnnouncementTitle    string    `gorm:"column:announcement_title;type:varchar(200);not null" json:"announcement_title"`
	AnnouncementContent  string    `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`
	AnnouncementType     string    `gorm:"column:announcement_type;type:varchar(20);default:'info'" json:"announcement_type"`
	AnnouncementIsActive bool      `gorm:"column:announcement_is_active;default:true" json:"announcement_is_active"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.AnnouncementID == uuid.Nil {
		a.AnnouncementID = uuid.New()
	}
	return nil
}
