package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nigerland_backend/internals/features/conferences/model"
)

func newRegistrationApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
	if err := db.AutoMigrate(&model.Conference{}, &model.ConferenceRegistration{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	ctrl := NewRegistrationController(db)
	app.Post("/api/registrations", ctrl.CreateRegistration)
	app.Get("/api/registrations/:ref", ctrl.GetRegistration)
	app.Put("/api/admin/registrations/:id/status", ctrl.UpdateStatus)
	return app, db
}

func TestCreateRegistrationAssignsReference(t *testing.T) {
	app, _ := newRegistrationApp(t)

	body := `{"full_name":"Ada Obi","email":"ada@example.com","phone":"0803","conference":"Tax Conference 2025"}`
	req := httptest.NewRequest("POST", "/api/registrations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var envelope struct {
		Data model.ConferenceRegistration `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(envelope.Data.RegistrationRef, "REG") {
		t.Errorf("ref = %q, want REG prefix", envelope.Data.RegistrationRef)
	}
	if envelope.Data.RegistrationStatus != model.RegistrationStatusPending {
		t.Errorf("status = %q, want pending", envelope.Data.RegistrationStatus)
	}
}

func TestCreateRegistrationRejectsMissingFields(t *testing.T) {
	app, _ := newRegistrationApp(t)

	req := httptest.NewRequest("POST", "/api/registrations", strings.NewReader(`{"full_name":"Ada Obi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestUpdateRegistrationStatus(t *testing.T) {
	app, db := newRegistrationApp(t)

	reg := model.ConferenceRegistration{
		RegistrationRef: "REG-TEST01", RegistrationFullName: "Bola", RegistrationEmail: "bola@example.com",
		RegistrationStatus: model.RegistrationStatusPending, RegistrationPayState: "pending",
	}
	if err := db.Create(&reg).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest("PUT", "/api/admin/registrations/"+reg.RegistrationRef+"/status?status=confirmed", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var saved model.ConferenceRegistration
	if err := db.First(&saved, "registration_id = ?", reg.RegistrationID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.RegistrationStatus != model.RegistrationStatusConfirmed {
		t.Errorf("status = %q, want confirmed", saved.RegistrationStatus)
	}
}

func TestUpdateRegistrationStatusRejectsUnknownValue(t *testing.T) {
	app, db := newRegistrationApp(t)

	reg := model.ConferenceRegistration{
		RegistrationRef: "REG-TEST02", RegistrationFullName: "Chidi", RegistrationEmail: "chidi@example.com",
		RegistrationStatus: model.RegistrationStatusPending, RegistrationPayState: "pending",
	}
	if err := db.Create(&reg).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest("PUT", "/api/admin/registrations/"+reg.RegistrationRef+"/status?status=banana", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestUpdateRegistrationStatusUnknownID(t *testing.T) {
	app, _ := newRegistrationApp(t)

	req := httptest.NewRequest("PUT", "/api/admin/registrations/REG-MISSING/status?status=confirmed", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
