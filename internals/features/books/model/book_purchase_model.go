package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookPurchase keeps book_purchase_book_id as a plain lookup value, not a
// foreign key: purchases are historical records and must survive deletion
// of the book they reference.
type BookPurchase struct {
	BookPurchaseID        uuid.UUID `gorm:"column:book_purchase_id;type:uuid;primaryKey" json:"book_purchase_id"`
	BookPurchaseRef       string    `gorm:"column:book_purchase_ref;type:varchar(20);not null;unique" json:"book_purchase_ref"`
	BookPurchaseBookID    uuid.UUID `gorm:"column:book_purchase_book_id;type:uuid;not null" json:"book_purchase_book_id"`
	BookPurchaseFullName  string    `gorm:"column:book_purchase_full_name;type:varchar(100);not null" json:"book_purchase_full_name"`
	BookPurchaseEmail     string    `gorm:"column:book_purchase_email;type:varchar(100);not null" json:"book_purchase_email"`
	BookPurchasePhone     string    `gorm:"column:book_purchase_phone;type:varchar(30)" json:"book_purchase_phone"`
	BookPurchaseAmount    float64   `gorm:"column:book_purchase_amount;not null" json:"book_purchase_amount"`
	BookPurchaseStatus    string    `gorm:"column:book_purchase_status;type:varchar(20);default:'pending'" json:"book_purchase_status"`
	BookPurchasePayRef    string    `gorm:"column:book_purchase_pay_ref;type:varchar(100)" json:"book_purchase_pay_ref,omitempty"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BookPurchase) TableName() string {
	return "book_purchases"
}

func (p *BookPurchase) BeforeCreate(tx *gorm.DB) error {
	if p.BookPurchaseID == uuid.Nil {
		p.BookPurchaseID = uuid.New()
	}
	return nil
}
