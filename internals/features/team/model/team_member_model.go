package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMember struct {
	TeamMemberID          uuid.UUID `gorm:"column:team_member_id;type:uuid;primaryKey" json:"team_member_id"`
	TeamMemberName        string    `gorm:"column:team_member_name;type:varchar(100);not null" json:"team_member_name"`
	TeamMemberTitle       string    `gorm:"column:team_member_title;type:varchar(100);not null" json:"team_member_title"`
	TeamMemberCredentials string    `gorm:"column:team_member_credentials;type:varchar(200);not null" json:"team_member_credentials"`
	TeamMemberBio         string    `gorm:"column:team_member_bio;type:text" json:"team_member_bio"`
	TeamMemberImage       string    `gorm:"column:team_member_image;type:text" json:"team_member_image"`
	TeamMemberOrder       int       `gorm:"column:team_member_order;default:0" json:"team_member_order"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.TeamMemberID == uuid.Nil {
		m.TeamMemberID = uuid.New()
	}
	return nil
}
