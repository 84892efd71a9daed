package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bookModel "nigerland_backend/internals/features/books/model"
	regModel "nigerland_backend/internals/features/conferences/model"
	contactModel "nigerland_backend/internals/features/contact/model"
	mlModel "nigerland_backend/internals/features/morelife/model"
	trainingModel "nigerland_backend/internals/features/trainings/model"
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
	if err := db.AutoMigrate(
		&regModel.ConferenceRegistration{},
		&bookModel.BookPurchase{},
		&trainingModel.TrainingEnrollment{},
		&mlModel.MoreLifeSession{},
		&contactModel.ContactMessage{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

func TestCollectStatsCountsAndRevenue(t *testing.T) {
	db := openTestDB(t)

	regs := []regModel.ConferenceRegistration{
		{RegistrationRef: "REG-A1", RegistrationFullName: "Ada", RegistrationEmail: "ada@example.com", RegistrationAmount: 50000, RegistrationStatus: regModel.RegistrationStatusPending, RegistrationPayState: "pending"},
		{RegistrationRef: "REG-B2", RegistrationFullName: "Bola", RegistrationEmail: "bola@example.com", RegistrationAmount: 50000, RegistrationStatus: regModel.RegistrationStatusConfirmed, RegistrationPayState: "completed"},
		{RegistrationRef: "REG-C3", RegistrationFullName: "Chidi", RegistrationEmail: "chidi@example.com", RegistrationAmount: 75000, RegistrationStatus: regModel.RegistrationStatusPaid, RegistrationPayState: "completed"},
	}
	if err := db.Create(&regs).Error; err != nil {
		t.Fatalf("seed registrations: %v", err)
	}
	purchases := []bookModel.BookPurchase{
		{BookPurchaseRef: "BP-D4", BookPurchaseFullName: "Dayo", BookPurchaseEmail: "dayo@example.com", BookPurchaseAmount: 5000, BookPurchaseStatus: "completed"},
		{BookPurchaseRef: "BP-E5", BookPurchaseFullName: "Efe", BookPurchaseEmail: "efe@example.com", BookPurchaseAmount: 5000, BookPurchaseStatus: "pending"},
	}
	if err := db.Create(&purchases).Error; err != nil {
		t.Fatalf("seed purchases: %v", err)
	}
	enrollment := trainingModel.TrainingEnrollment{
		EnrollmentRef: "TE-F6", EnrollmentFullName: "Hassan", EnrollmentEmail: "hassan@example.com",
		EnrollmentAmount: 120000, EnrollmentStatus: "confirmed", EnrollmentPayState: "completed",
	}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	session := mlModel.MoreLifeSession{
		SessionRef: "ML-G7", SessionClientName: "Joke", SessionEmail: "joke@example.com",
		SessionPhone: "0800", SessionType: "joint", SessionScheduledDate: "September",
		SessionAmount: 30000, SessionStatus: mlModel.SessionStatusScheduled, SessionPayState: "completed",
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}
	messages := []contactModel.ContactMessage{
		{MessageName: "Funke", MessageEmail: "funke@example.com", MessageBody: "Hello", MessageStatus: contactModel.MessageStatusUnread},
		{MessageName: "Gbenga", MessageEmail: "gbenga@example.com", MessageBody: "Hi", MessageStatus: contactModel.MessageStatusRead},
	}
	if err := db.Create(&messages).Error; err != nil {
		t.Fatalf("seed messages: %v", err)
	}

	stats, err := CollectStats(context.Background(), db)
	if err != nil {
		t.Fatalf("CollectStats: %v", err)
	}

	if stats.TotalRegistrations != 3 {
		t.Errorf("TotalRegistrations = %d, want 3", stats.TotalRegistrations)
	}
	if stats.PendingRegistrations != 1 {
		t.Errorf("PendingRegistrations = %d, want 1", stats.PendingRegistrations)
	}
	if stats.ConfirmedRegistrations != 2 {
		t.Errorf("ConfirmedRegistrations = %d, want 2", stats.ConfirmedRegistrations)
	}
	if stats.TotalMessages != 2 || stats.UnreadMessages != 1 {
		t.Errorf("messages = %d/%d unread, want 2/1", stats.TotalMessages, stats.UnreadMessages)
	}
	// 50000 + 75000 completed registrations plus one completed 5000 purchase.
	// The completed enrollment and MoreLife session must not leak into the
	// headline figure; they belong to the revenue breakdown only.
	if stats.TotalRevenue != 130000 {
		t.Errorf("TotalRevenue = %.2f, want 130000", stats.TotalRevenue)
	}

	revenue, err := CollectRevenue(context.Background(), db)
	if err != nil {
		t.Fatalf("CollectRevenue: %v", err)
	}
	if revenue.Trainings != 120000 {
		t.Errorf("Trainings = %.2f, want 120000", revenue.Trainings)
	}
	if revenue.MoreLife != 30000 {
		t.Errorf("MoreLife = %.2f, want 30000", revenue.MoreLife)
	}
	if revenue.Total != 280000 {
		t.Errorf("Total = %.2f, want 280000", revenue.Total)
	}
}

func TestCollectRevenueIgnoresPendingPayments(t *testing.T) {
	db := openTestDB(t)

	enrollments := []trainingModel.TrainingEnrollment{
		{EnrollmentRef: "TE-A1", EnrollmentFullName: "Hassan", EnrollmentEmail: "hassan@example.com", EnrollmentAmount: 120000, EnrollmentStatus: "pending", EnrollmentPayState: "completed"},
		{EnrollmentRef: "TE-B2", EnrollmentFullName: "Ify", EnrollmentEmail: "ify@example.com", EnrollmentAmount: 120000, EnrollmentStatus: "pending", EnrollmentPayState: "pending"},
	}
	if err := db.Create(&enrollments).Error; err != nil {
		t.Fatalf("seed enrollments: %v", err)
	}
	session := mlModel.MoreLifeSession{
		SessionRef: "ML-C3", SessionClientName: "Joke", SessionEmail: "joke@example.com",
		SessionPhone: "0800", SessionType: "joint", SessionScheduledDate: "September",
		SessionAmount: 30000, SessionStatus: mlModel.SessionStatusScheduled, SessionPayState: "completed",
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}

	revenue, err := CollectRevenue(context.Background(), db)
	if err != nil {
		t.Fatalf("CollectRevenue: %v", err)
	}
	if revenue.Trainings != 120000 {
		t.Errorf("Trainings = %.2f, want 120000", revenue.Trainings)
	}
	if revenue.MoreLife != 30000 {
		t.Errorf("MoreLife = %.2f, want 30000", revenue.MoreLife)
	}
	if revenue.Total != 150000 {
		t.Errorf("Total = %.2f, want 150000", revenue.Total)
	}
}
