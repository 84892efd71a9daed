package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ProjectID          uuid.UUID `gorm:"column:project_id;type:uuid;primaryKey" json:"project_id"`
	ProjectTitle       string    `gorm:"column:project_title;type:varchar(200);not null" json:"project_title"`
	ProjectDescription string    `gorm:"column:project_description;type:text;not null" json:"project_description"`
	ProjectYear        string    `gorm:"column:project_year;type:varchar(20)" json:"project_year"`
	ProjectStatus      string    `gorm:"column:project_status;type:varchar(50)" json:"project_status"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ProjectID == uuid.Nil {
		p.ProjectID = uuid.New()
	}
	return nil
}
