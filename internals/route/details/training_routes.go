package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trainingController "nigerland_backend/internals/features/trainings/controller"
	"nigerland_backend/internals/middlewares"
)

func TrainingPublicRoutes(r fiber.Router, db *gorm.DB) {
	programCtrl := trainingController.NewTrainingProgramController(db)
	enrollCtrl := trainingController.NewEnrollmentController(db)

	r.Get("/trainings", programCtrl.ListActiveTrainings)
	r.Post("/trainings/:id/enroll", middlewares.FormRateLimiter(), enrollCtrl.Enroll)
}

func TrainingAdminRoutes(r fiber.Router, db *gorm.DB) {
	programCtrl := trainingController.NewTrainingProgramController(db)
	enrollCtrl := trainingController.NewEnrollmentController(db)

	r.Get("/trainings", programCtrl.ListTrainings)
	r.Post("/trainings", programCtrl.CreateTraining)
	r.Put("/trainings/:id", programCtrl.UpdateTraining)
	r.Delete("/trainings/:id", programCtrl.DeleteTraining)

	r.Get("/enrollments", enrollCtrl.ListEnrollments)
	r.Put("/enrollments/:id/status", enrollCtrl.UpdateStatus)
	r.Delete("/enrollments/:id", enrollCtrl.DeleteEnrollment)
}

func TrainingPaymentRoutes(r fiber.Router, db *gorm.DB) {
	enrollCtrl := trainingController.NewEnrollmentController(db)

	r.Post("/enrollments/:ref/initialize", enrollCtrl.InitializePayment)
	r.Post("/enrollments/verify", enrollCtrl.VerifyPayment)
}
