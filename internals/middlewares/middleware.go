package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"nigerland_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the middlewares every request passes through.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
