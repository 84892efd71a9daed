package model

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&Book{}, &BookPurchase{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPurchaseSurvivesBookDeletion(t *testing.T) {
	db := openTestDB(t)

	book := Book{BookTitle: "The Good Nigerian", BookAuthor: "Nigerland Consult", BookPrice: 4500, BookCategory: "Ethics & Values"}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("create book: %v", err)
	}

	purchase := BookPurchase{
		BookPurchaseRef:      "BP-TEST01",
		BookPurchaseBookID:   book.BookID,
		BookPurchaseFullName: "Dayo",
		BookPurchaseEmail:    "dayo@example.com",
		BookPurchaseAmount:   book.BookPrice,
		BookPurchaseStatus:   "completed",
	}
	if err := db.Create(&purchase).Error; err != nil {
		t.Fatalf("create purchase: %v", err)
	}

	if err := db.Delete(&book).Error; err != nil {
		t.Fatalf("delete book: %v", err)
	}

	var saved BookPurchase
	if err := db.First(&saved, "book_purchase_ref = ?", "BP-TEST01").Error; err != nil {
		t.Fatalf("reload purchase: %v", err)
	}
	if saved.BookPurchaseAmount != 4500 {
		t.Errorf("amount = %.2f, want the price captured at purchase time", saved.BookPurchaseAmount)
	}
	if saved.BookPurchaseBookID != book.BookID {
		t.Errorf("book id changed after book deletion")
	}
}

func TestBookIDAssignedOnCreate(t *testing.T) {
	db := openTestDB(t)

	book := Book{BookTitle: "Building Courage", BookAuthor: "Nigerland Consult", BookPrice: 4000, BookCategory: "Leadership"}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("create book: %v", err)
	}
	if book.BookID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("book id not assigned on create")
	}
}
