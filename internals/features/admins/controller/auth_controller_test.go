package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nigerland_backend/internals/configs"
	"nigerland_backend/internals/features/admins/model"
	"nigerland_backend/internals/features/admins/service"
)

func newLoginApp(t *testing.T) *fiber.App {
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
	if err := db.AutoMigrate(&model.Admin{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hash, err := service.HashPassword("sekret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := db.Create(&model.Admin{AdminUsername: "admin", AdminPassword: hash, AdminRole: "admin"}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	configs.JWTSecret = "test-secret"

	app := fiber.New()
	ctrl := NewAuthController(db)
	app.Post("/api/auth/login", ctrl.Login)
	return app
}

func TestLoginIssuesToken(t *testing.T) {
	app := newLoginApp(t)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"username":"admin","password":"sekret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newLoginApp(t)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	app := newLoginApp(t)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"username":"ghost","password":"sekret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
