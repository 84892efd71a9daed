package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "nigerland_backend/internals/features/dashboard/controller"
)

func DashboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	r.Get("/stats", ctrl.GetStats)
	r.Get("/analytics/revenue", ctrl.GetRevenue)

	r.Get("/export/registrations", ctrl.ExportRegistrations)
	r.Get("/export/purchases", ctrl.ExportPurchases)
	r.Get("/export/messages", ctrl.ExportMessages)
	r.Get("/export/enrollments", ctrl.ExportEnrollments)
	r.Get("/export/assessments", ctrl.ExportAssessments)
}
