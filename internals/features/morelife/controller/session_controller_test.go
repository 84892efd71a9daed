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

	"nigerland_backend/internals/features/morelife/model"
)

func newSessionApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
	if err := db.AutoMigrate(&model.MoreLifeSession{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	ctrl := NewMoreLifeController(db)
	app.Post("/api/morelife/assessments", ctrl.CreateAssessment)
	return app, db
}

func TestCreateAssessmentPricesBySessionType(t *testing.T) {
	app, _ := newSessionApp(t)

	cases := []struct {
		sessionType string
		wantAmount  float64
	}{
		{"private_2weeks", 85000},
		{"private_1week", 45000},
		{"joint", 30000},
	}
	for _, tc := range cases {
		body := `{"client_name":"Joke","email":"joke@example.com","phone":"0802","session_type":"` + tc.sessionType + `","scheduled_date":"September 2026"}`
		req := httptest.NewRequest("POST", "/api/morelife/assessments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("%s: status = %d, want 201", tc.sessionType, resp.StatusCode)
		}
		var envelope struct {
			Data model.MoreLifeSession `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if envelope.Data.SessionAmount != tc.wantAmount {
			t.Errorf("%s: amount = %.2f, want %.2f", tc.sessionType, envelope.Data.SessionAmount, tc.wantAmount)
		}
		if !strings.HasPrefix(envelope.Data.SessionRef, "ML") {
			t.Errorf("%s: ref = %q, want ML prefix", tc.sessionType, envelope.Data.SessionRef)
		}
	}
}

func TestCreateAssessmentRejectsUnknownSessionType(t *testing.T) {
	app, _ := newSessionApp(t)

	body := `{"client_name":"Joke","email":"joke@example.com","phone":"0802","session_type":"weekend","scheduled_date":"September 2026"}`
	req := httptest.NewRequest("POST", "/api/morelife/assessments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}
