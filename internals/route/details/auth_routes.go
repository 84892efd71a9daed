package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "nigerland_backend/internals/features/admins/controller"
	"nigerland_backend/internals/middlewares"
	authMiddleware "nigerland_backend/internals/middlewares/auth"
)

// AuthRoutes mounts login and token verification. Login sits behind its own
// tight rate limit to slow credential guessing.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/verify", authMiddleware.AuthMiddleware(), ctrl.Verify)
}
