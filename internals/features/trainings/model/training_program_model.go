package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TrainingProgram struct {
	TrainingID             uuid.UUID      `gorm:"column:training_id;type:uuid;primaryKey" json:"training_id"`
	TrainingTitle          string         `gorm:"column:training_title;type:varchar(200);not null" json:"training_title"`
	TrainingCategory       string         `gorm:"column:training_category;type:varchar(100);not null" json:"training_category"`
	TrainingDescription    string         `gorm:"column:training_description;type:text;not null" json:"training_description"`
	TrainingDuration       string         `gorm:"column:training_duration;type:varchar(100);not null" json:"training_duration"`
	TrainingFee            float64        `gorm:"column:training_fee;check:training_fee >= 0" json:"training_fee"`
	TrainingObjectives     datatypes.JSON `gorm:"column:training_objectives" json:"training_objectives"`
	TrainingTargetAudience string         `gorm:"column:training_target_audience;type:text" json:"training_target_audience"`
	TrainingIsActive       bool           `gorm:"column:training_is_active;default:true" json:"training_is_active"`
	CreatedAt              time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TrainingProgram) TableName() string {
	return "training_programs"
}

func (t *TrainingProgram) BeforeCreate(tx *gorm.DB) error {
	if t.TrainingID == uuid.Nil {
		t.TrainingID = uuid.New()
	}
	return nil
}
