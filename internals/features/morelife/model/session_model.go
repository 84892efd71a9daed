package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review statuses are set by the admin while the assessment is triaged;
// lifecycle statuses track the coaching session after approval. Both move
// only through the explicit status endpoint.
const (
	SessionStatusPending    = "pending"
	SessionStatusReviewed   = "reviewed"
	SessionStatusApproved   = "approved"
	SessionStatusRejected   = "rejected"
	SessionStatusScheduled  = "scheduled"
	SessionStatusInProgress = "in-progress"
	SessionStatusCompleted  = "completed"
	SessionStatusCancelled  = "cancelled"
)

type MoreLifeSession struct {
	SessionID            uuid.UUID `gorm:"column:session_id;type:uuid;primaryKey" json:"session_id"`
	SessionRef           string    `gorm:"column:session_ref;type:varchar(20);not null;unique" json:"session_ref"`
	SessionClientName    string    `gorm:"column:session_client_name;type:varchar(100);not null" json:"session_client_name"`
	SessionEmail         string    `gorm:"column:session_email;type:varchar(100);not null" json:"session_email"`
	SessionPhone         string    `gorm:"column:session_phone;type:varchar(30);not null" json:"session_phone"`
	SessionLocation      string    `gorm:"column:session_location;type:varchar(150)" json:"session_location"`
	SessionAge           int       `gorm:"column:session_age" json:"session_age"`
	SessionEducation     string    `gorm:"column:session_education;type:varchar(150)" json:"session_education"`
	SessionChallenge     string    `gorm:"column:session_challenge;type:text" json:"session_challenge"`
	SessionLikelyCause   string    `gorm:"column:session_likely_cause;type:text" json:"session_likely_cause"`
	SessionChallengeSpan string    `gorm:"column:session_challenge_span;type:varchar(100)" json:"session_challenge_span"`
	SessionTrigger       string    `gorm:"column:session_trigger;type:text" json:"session_trigger"`
	SessionOnDrugs       string    `gorm:"column:session_on_drugs;type:varchar(50)" json:"session_on_drugs"`
	SessionType          string    `gorm:"column:session_type;type:varchar(30);not null" json:"session_type"`
	SessionScheduledDate string    `gorm:"column:session_scheduled_date;type:varchar(100);not null" json:"session_scheduled_date"`
	SessionNotes         string    `gorm:"column:session_notes;type:text" json:"session_notes"`
	SessionAmount        float64   `gorm:"column:session_amount" json:"session_amount"`
	SessionStatus        string    `gorm:"column:session_status;type:varchar(20);default:'pending'" json:"session_status"`
	SessionPayState      string    `gorm:"column:session_pay_state;type:varchar(20);default:'pending'" json:"session_pay_state"`
	SessionPayRef        string    `gorm:"column:session_pay_ref;type:varchar(100)" json:"session_pay_ref,omitempty"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MoreLifeSession) TableName() string {
	return "morelife_sessions"
}

func (s *MoreLifeSession) BeforeCreate(tx *gorm.DB) error {
	if s.SessionID == uuid.Nil {
		s.SessionID = uuid.New()
	}
	return nil
}

// ValidSessionStatus reports whether s is an allowed status value.
func ValidSessionStatus(s string) bool {
	switch s {
	case SessionStatusPending, SessionStatusReviewed, SessionStatusApproved, SessionStatusRejected,
		SessionStatusScheduled, SessionStatusInProgress, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}
