package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration statuses move only through the explicit status endpoint;
// payment verification is the one flow allowed to set confirmed/completed.
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusPaid      = "paid"
	RegistrationStatusCancelled = "cancelled"
)

type ConferenceRegistration struct {
	RegistrationID       uuid.UUID `gorm:"column:registration_id;type:uuid;primaryKey" json:"registration_id"`
	RegistrationRef      string    `gorm:"column:registration_ref;type:varchar(20);not null;unique" json:"registration_ref"`
	RegistrationFullName string    `gorm:"column:registration_full_name;type:varchar(100);not null" json:"registration_full_name"`
	RegistrationEmail    string    `gorm:"column:registration_email;type:varchar(100);not null" json:"registration_email"`
	RegistrationPhone    string    `gorm:"column:registration_phone;type:varchar(30);not null" json:"registration_phone"`
	RegistrationOrg      string    `gorm:"column:registration_org;type:varchar(150)" json:"registration_org"`
	RegistrationRole     string    `gorm:"column:registration_role;type:varchar(100)" json:"registration_role"`
	RegistrationConf     string    `gorm:"column:registration_conf;type:varchar(200);not null" json:"registration_conf"`
	RegistrationConfDate string    `gorm:"column:registration_conf_date;type:varchar(100)" json:"registration_conf_date"`
	RegistrationNotes    string    `gorm:"column:registration_notes;type:text" json:"registration_notes"`
	RegistrationAmount   float64   `gorm:"column:registration_amount" json:"registration_amount"`
	RegistrationStatus   string    `gorm:"column:registration_status;type:varchar(20);default:'pending'" json:"registration_status"`
	RegistrationPayState string    `gorm:"column:registration_pay_state;type:varchar(20);default:'pending'" json:"registration_pay_state"`
	RegistrationPayRef   string    `gorm:"column:registration_pay_ref;type:varchar(100)" json:"registration_pay_ref,omitempty"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ConferenceRegistration) TableName() string {
	return "conference_registrations"
}

func (r *ConferenceRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.RegistrationID == uuid.Nil {
		r.RegistrationID = uuid.New()
	}
	return nil
}

// ValidRegistrationStatus reports whether s is an allowed status value.
func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusConfirmed, RegistrationStatusPaid, RegistrationStatusCancelled:
		return true
	}
	return false
}
