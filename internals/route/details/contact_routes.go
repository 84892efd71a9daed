package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "nigerland_backend/internals/features/contact/controller"
	"nigerland_backend/internals/middlewares"
)

func ContactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := contactController.NewContactController(db)

	r.Post("/contact", middlewares.FormRateLimiter(), ctrl.CreateMessage)
}

func ContactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := contactController.NewContactController(db)

	r.Get("/messages", ctrl.ListMessages)
	r.Put("/messages/:id/status", ctrl.UpdateStatus)
	r.Delete("/messages/:id", ctrl.DeleteMessage)
}
