package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Admin struct {
	AdminID       uuid.UUID  `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	AdminUsername string     `gorm:"column:admin_username;type:varchar(50);not null;unique" json:"admin_username"`
	AdminEmail    string     `gorm:"column:admin_email;type:varchar(100)" json:"admin_email"`
	AdminPassword string     `gorm:"column:admin_password;type:text;not null" json:"-"`
	AdminRole     string     `gorm:"column:admin_role;type:varchar(20);default:'admin'" json:"admin_role"`
	LastLoginAt   *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.AdminID == uuid.Nil {
		a.AdminID = uuid.New()
	}
	return nil
}
