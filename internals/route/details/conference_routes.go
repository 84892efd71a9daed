package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	conferenceController "nigerland_backend/internals/features/conferences/controller"
	"nigerland_backend/internals/middlewares"
)

func ConferencePublicRoutes(r fiber.Router, db *gorm.DB) {
	confCtrl := conferenceController.NewConferenceController(db)
	regCtrl := conferenceController.NewRegistrationController(db)

	r.Get("/conferences", confCtrl.ListActiveConferences)
	r.Post("/registrations", middlewares.FormRateLimiter(), regCtrl.CreateRegistration)
	r.Get("/registrations/:ref", regCtrl.GetRegistration)
}

func ConferenceAdminRoutes(r fiber.Router, db *gorm.DB) {
	confCtrl := conferenceController.NewConferenceController(db)
	regCtrl := conferenceController.NewRegistrationController(db)

	r.Get("/conferences", confCtrl.ListConferences)
	r.Post("/conferences", confCtrl.CreateConference)
	r.Put("/conferences/:id", confCtrl.UpdateConference)
	r.Delete("/conferences/:id", confCtrl.DeleteConference)

	r.Get("/registrations", regCtrl.ListRegistrations)
	r.Put("/registrations/:id/status", regCtrl.UpdateStatus)
	r.Delete("/registrations/:id", regCtrl.DeleteRegistration)
}

func ConferencePaymentRoutes(r fiber.Router, db *gorm.DB) {
	regCtrl := conferenceController.NewRegistrationController(db)

	r.Post("/registrations/initialize", regCtrl.InitializePayment)
	r.Post("/registrations/verify", regCtrl.VerifyPayment)
	r.Post("/registrations/register-and-pay", middlewares.FormRateLimiter(), regCtrl.RegisterAndPay)
}
