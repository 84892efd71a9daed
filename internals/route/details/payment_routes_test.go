package details

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bookModel "nigerland_backend/internals/features/books/model"
	regModel "nigerland_backend/internals/features/conferences/model"
	paymentService "nigerland_backend/internals/features/payments/service"
	trainingModel "nigerland_backend/internals/features/trainings/model"
)

// Mounts the real route registrations so the declared paths and the params
// the handlers read are exercised together.
func newPaymentApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
		&bookModel.Book{}, &bookModel.BookPurchase{},
		&trainingModel.TrainingProgram{}, &trainingModel.TrainingEnrollment{},
		&regModel.ConferenceRegistration{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	public := app.Group("/api")
	payments := app.Group("/api/payments")
	BookPublicRoutes(public, db)
	BookPaymentRoutes(payments, db)
	TrainingPaymentRoutes(payments, db)
	ConferencePaymentRoutes(payments, db)
	return app, db
}

func stubPaystack(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"ok","data":{"authorization_url":"https://checkout.paystack.com/xyz","access_code":"xyz","reference":"stub"}}`))
	}))
	t.Cleanup(srv.Close)
	prev := paymentService.Paystack
	t.Cleanup(func() { paymentService.Paystack = prev })
	paymentService.Paystack = paymentService.PaystackClient{
		SecretKey: "sk_test_x",
		BaseURL:   srv.URL,
		HTTP:      &http.Client{Timeout: 2 * time.Second},
	}
}

func TestPurchaseInitializeRouteFindsPurchaseByRef(t *testing.T) {
	app, db := newPaymentApp(t)
	stubPaystack(t)

	purchase := bookModel.BookPurchase{
		BookPurchaseRef:      "BP12345678",
		BookPurchaseFullName: "Dayo",
		BookPurchaseEmail:    "dayo@example.com",
		BookPurchaseAmount:   5000,
		BookPurchaseStatus:   "pending",
	}
	if err := db.Create(&purchase).Error; err != nil {
		t.Fatalf("seed purchase: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/payments/purchases/BP12345678/initialize", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var saved bookModel.BookPurchase
	if err := db.First(&saved, "book_purchase_ref = ?", "BP12345678").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.BookPurchasePayRef != "BOOK-BP12345678" {
		t.Errorf("pay ref = %q, want BOOK-BP12345678", saved.BookPurchasePayRef)
	}
}

func TestEnrollmentInitializeRouteFindsEnrollmentByRef(t *testing.T) {
	app, db := newPaymentApp(t)
	stubPaystack(t)

	enrollment := trainingModel.TrainingEnrollment{
		EnrollmentRef:      "TE12345678",
		EnrollmentFullName: "Hassan",
		EnrollmentEmail:    "hassan@example.com",
		EnrollmentAmount:   120000,
		EnrollmentStatus:   "pending",
		EnrollmentPayState: "pending",
	}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/payments/enrollments/TE12345678/initialize", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var saved trainingModel.TrainingEnrollment
	if err := db.First(&saved, "enrollment_ref = ?", "TE12345678").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.EnrollmentPayRef != "TRN-TE12345678" {
		t.Errorf("pay ref = %q, want TRN-TE12345678", saved.EnrollmentPayRef)
	}
}

func TestRegistrationInitializeRouteTakesReferenceFromBody(t *testing.T) {
	app, db := newPaymentApp(t)
	stubPaystack(t)

	reg := regModel.ConferenceRegistration{
		RegistrationRef:      "REG12345678",
		RegistrationFullName: "Ada",
		RegistrationEmail:    "ada@example.com",
		RegistrationStatus:   regModel.RegistrationStatusPending,
		RegistrationPayState: "pending",
	}
	if err := db.Create(&reg).Error; err != nil {
		t.Fatalf("seed registration: %v", err)
	}

	body := strings.NewReader(`{"registration_id":"REG12345678","email":"ada@example.com","amount":50000}`)
	req := httptest.NewRequest("POST", "/api/payments/registrations/initialize", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var saved regModel.ConferenceRegistration
	if err := db.First(&saved, "registration_ref = ?", "REG12345678").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.RegistrationPayRef != "CONF-REG12345678" {
		t.Errorf("pay ref = %q, want CONF-REG12345678", saved.RegistrationPayRef)
	}
	if saved.RegistrationAmount != 50000 {
		t.Errorf("amount = %.2f, want 50000", saved.RegistrationAmount)
	}
}

func TestUserPurchasesRouteFiltersByEmail(t *testing.T) {
	app, db := newPaymentApp(t)

	purchases := []bookModel.BookPurchase{
		{BookPurchaseRef: "BP-A1", BookPurchaseFullName: "Efe", BookPurchaseEmail: "efe@example.com", BookPurchaseAmount: 5000, BookPurchaseStatus: "completed"},
		{BookPurchaseRef: "BP-B2", BookPurchaseFullName: "Efe", BookPurchaseEmail: "efe@example.com", BookPurchaseAmount: 4500, BookPurchaseStatus: "pending"},
		{BookPurchaseRef: "BP-C3", BookPurchaseFullName: "Gbenga", BookPurchaseEmail: "gbenga@example.com", BookPurchaseAmount: 3000, BookPurchaseStatus: "completed"},
	}
	if err := db.Create(&purchases).Error; err != nil {
		t.Fatalf("seed purchases: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/purchases/user/efe@example.com", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var envelope struct {
		Data []bookModel.BookPurchase `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("got %d purchases, want 1 (completed only, one buyer)", len(envelope.Data))
	}
	if envelope.Data[0].BookPurchaseRef != "BP-A1" {
		t.Errorf("ref = %q, want BP-A1", envelope.Data[0].BookPurchaseRef)
	}
}
