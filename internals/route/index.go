package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "nigerland_backend/internals/middlewares/auth"
	routeDetails "nigerland_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts every route group. Public pages and forms live under
// /api, the authenticated dashboard under /api/admin, payment flows under
// /api/payments.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up AUTH routes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/admin", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Setting up PAYMENTS group...")
	payments := app.Group("/api/payments")

	log.Println("[INFO] Mounting Conference routes...")
	routeDetails.ConferencePublicRoutes(public, db)
	routeDetails.ConferenceAdminRoutes(admin, db)
	routeDetails.ConferencePaymentRoutes(payments, db)

	log.Println("[INFO] Mounting Book routes...")
	routeDetails.BookPublicRoutes(public, db)
	routeDetails.BookAdminRoutes(admin, db)
	routeDetails.BookPaymentRoutes(payments, db)

	log.Println("[INFO] Mounting Training routes...")
	routeDetails.TrainingPublicRoutes(public, db)
	routeDetails.TrainingAdminRoutes(admin, db)
	routeDetails.TrainingPaymentRoutes(payments, db)

	log.Println("[INFO] Mounting MoreLife routes...")
	routeDetails.MoreLifePublicRoutes(public, db)
	routeDetails.MoreLifeAdminRoutes(admin, db)
	routeDetails.MoreLifePaymentRoutes(payments, db)

	log.Println("[INFO] Mounting Content routes...")
	routeDetails.ContentPublicRoutes(public, db)
	routeDetails.ContentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Contact routes...")
	routeDetails.ContactPublicRoutes(public, db)
	routeDetails.ContactAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Dashboard routes...")
	routeDetails.DashboardAdminRoutes(admin, db)

	log.Println("[INFO] All routes mounted")
}

// Uptime reports how long the route layer has been serving.
func Uptime() time.Duration {
	return time.Since(startTime)
}
