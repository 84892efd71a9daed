package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EnrollmentStatusPending   = "pending"
	EnrollmentStatusConfirmed = "confirmed"
	EnrollmentStatusCancelled = "cancelled"
)

// TrainingEnrollment points at its program by id only; the enrollment stays
// valid as a historical record if the program is later removed.
type TrainingEnrollment struct {
	EnrollmentID        uuid.UUID `gorm:"column:enrollment_id;type:uuid;primaryKey" json:"enrollment_id"`
	EnrollmentRef       string    `gorm:"column:enrollment_ref;type:varchar(20);not null;unique" json:"enrollment_ref"`
	EnrollmentProgramID uuid.UUID `gorm:"column:enrollment_program_id;type:uuid;not null" json:"enrollment_program_id"`
	EnrollmentFullName  string    `gorm:"column:enrollment_full_name;type:varchar(100);not null" json:"enrollment_full_name"`
	EnrollmentEmail     string    `gorm:"column:enrollment_email;type:varchar(100);not null" json:"enrollment_email"`
	EnrollmentPhone     string    `gorm:"column:enrollment_phone;type:varchar(30);not null" json:"enrollment_phone"`
	EnrollmentOrg       string    `gorm:"column:enrollment_org;type:varchar(150)" json:"enrollment_org"`
	EnrollmentPosition  string    `gorm:"column:enrollment_position;type:varchar(100)" json:"enrollment_position"`
	EnrollmentAmount    float64   `gorm:"column:enrollment_amount" json:"enrollment_amount"`
	EnrollmentStatus    string    `gorm:"column:enrollment_status;type:varchar(20);default:'pending'" json:"enrollment_status"`
	EnrollmentPayState  string    `gorm:"column:enrollment_pay_state;type:varchar(20);default:'pending'" json:"enrollment_pay_state"`
	EnrollmentPayRef    string    `gorm:"column:enrollment_pay_ref;type:varchar(100)" json:"enrollment_pay_ref,omitempty"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TrainingEnrollment) TableName() string {
	return "training_enrollments"
}

func (e *TrainingEnrollment) BeforeCreate(tx *gorm.DB) error {
	if e.EnrollmentID == uuid.Nil {
		e.EnrollmentID = uuid.New()
	}
	return nil
}

// ValidEnrollmentStatus reports whether s is an allowed status value.
func ValidEnrollmentStatus(s string) bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusConfirmed, EnrollmentStatusCancelled:
		return true
	}
	return false
}
