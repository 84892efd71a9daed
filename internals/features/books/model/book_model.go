package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	BookID          uuid.UUID `gorm:"column:book_id;type:uuid;primaryKey" json:"book_id"`
	BookTitle       string    `gorm:"column:book_title;type:varchar(200);not null" json:"book_title"`
	BookAuthor      string    `gorm:"column:book_author;type:varchar(100);not null" json:"book_author"`
	BookDescription string    `gorm:"column:book_description;type:text" json:"book_description"`
	BookPrice       float64   `gorm:"column:book_price;not null;check:book_price >= 0" json:"book_price"`
	BookCategory    string    `gorm:"column:book_category;type:varchar(50);not null" json:"book_category"`
	BookImage       string    `gorm:"column:book_image;type:text" json:"book_image"`
	BookPdfURL      string    `gorm:"column:book_pdf_url;type:text" json:"book_pdf_url"`
	BookIsPaid      bool      `gorm:"column:book_is_paid;default:true" json:"book_is_paid"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.BookID == uuid.Nil {
		b.BookID = uuid.New()
	}
	return nil
}
