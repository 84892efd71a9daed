package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Conference struct {
	ConferenceID          uuid.UUID `gorm:"column:conference_id;type:uuid;primaryKey" json:"conference_id"`
	ConferenceTitle       string    `gorm:"column:conference_title;type:varchar(200);not null" json:"conference_title"`
	ConferenceDate        string    `gorm:"column:conference_date;type:varchar(100)" json:"conference_date"`
	ConferenceFee         string    `gorm:"column:conference_fee;type:varchar(100)" json:"conference_fee"`
	ConferenceDescription string    `gorm:"column:conference_description;type:text" json:"conference_description"`
	ConferenceForWhom     string    `gorm:"column:conference_for_whom;type:text" json:"conference_for_whom"`
	ConferenceIsActive    bool      `gorm:"column:conference_is_active;default:true" json:"conference_is_active"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Conference) TableName() string {
	return "conferences"
}

func (cf *Conference) BeforeCreate(tx *gorm.DB) error {
	if cf.ConferenceID == uuid.Nil {
		cf.ConferenceID = uuid.New()
	}
	return nil
}
