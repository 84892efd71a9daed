package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nigerland_backend/internals/configs"
	"nigerland_backend/internals/features/admins/dto"
	"nigerland_backend/internals/features/admins/model"
	"nigerland_backend/internals/features/admins/service"
	helper "nigerland_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var admin model.Admin
	if err := ctrl.DB.Where("admin_username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if err := service.CheckPasswordHash(admin.AdminPassword, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.CreateAccessToken(configs.JWTSecret, admin.AdminUsername)
	if err != nil {
		log.Printf("[ERROR] token issue failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	now := time.Now().UTC()
	ctrl.DB.Model(&admin).Update("last_login_at", &now)

	log.Printf("[INFO] admin logged in: %s", admin.AdminUsername)
	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// GET /api/auth/verify
func (ctrl *AuthController) Verify(c *fiber.Ctx) error {
	username, _ := c.Locals("admin_username").(string)
	return c.JSON(fiber.Map{"valid": true, "user": username})
}
