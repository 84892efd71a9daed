package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageStatusUnread   = "unread"
	MessageStatusRead     = "read"
	MessageStatusArchived = "archived"
)

type ContactMessage struct {
	MessageID      uuid.UUID `gorm:"column:message_id;type:uuid;primaryKey" json:"message_id"`
	MessageName    string    `gorm:"column:message_name;type:varchar(100);not null" json:"message_name"`
	MessageEmail   string    `gorm:"column:message_email;type:varchar(100);not null" json:"message_email"`
	MessagePhone   string    `gorm:"column:message_phone;type:varchar(30)" json:"message_phone,omitempty"`
	MessageSubject string    `gorm:"column:message_subject;type:varchar(200)" json:"message_subject,omitempty"`
	MessageBody    string    `gorm:"column:message_body;type:text;not null" json:"message_body"`
	MessageStatus  string    `gorm:"column:message_status;type:varchar(20);default:'unread'" json:"message_status"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	return nil
}

func ValidMessageStatus(s string) bool {
	switch s {
	case MessageStatusUnread, MessageStatusRead, MessageStatusArchived:
		return true
	}
	return false
}
