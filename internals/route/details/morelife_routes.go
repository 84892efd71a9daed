package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	morelifeController "nigerland_backend/internals/features/morelife/controller"
	"nigerland_backend/internals/middlewares"
)

func MoreLifePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := morelifeController.NewMoreLifeController(db)

	r.Post("/morelife/assessments", middlewares.FormRateLimiter(), ctrl.CreateAssessment)
	r.Get("/morelife/sessions/:ref", ctrl.GetSession)
}

func MoreLifeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := morelifeController.NewMoreLifeController(db)

	r.Get("/morelife/sessions", ctrl.ListSessions)
	r.Put("/morelife/sessions/:id/status", ctrl.UpdateStatus)
	r.Delete("/morelife/sessions/:id", ctrl.DeleteSession)
}

func MoreLifePaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := morelifeController.NewMoreLifeController(db)

	r.Post("/morelife/sessions/:ref/initialize", ctrl.InitializePayment)
	r.Post("/morelife/sessions/verify", ctrl.VerifyPayment)
}
