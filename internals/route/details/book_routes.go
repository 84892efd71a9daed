package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookController "nigerland_backend/internals/features/books/controller"
	"nigerland_backend/internals/middlewares"
)

func BookPublicRoutes(r fiber.Router, db *gorm.DB) {
	bookCtrl := bookController.NewBookController(db)
	purchaseCtrl := bookController.NewPurchaseController(db)

	r.Get("/books", bookCtrl.ListBooks)
	r.Get("/books/:id", bookCtrl.GetBook)
	r.Post("/books/:id/purchase", middlewares.FormRateLimiter(), purchaseCtrl.PurchaseBook)
	r.Get("/purchases/user/:email", purchaseCtrl.ListUserPurchases)
}

func BookAdminRoutes(r fiber.Router, db *gorm.DB) {
	bookCtrl := bookController.NewBookController(db)
	purchaseCtrl := bookController.NewPurchaseController(db)

	r.Post("/books", bookCtrl.CreateBook)
	r.Put("/books/:id", bookCtrl.UpdateBook)
	r.Delete("/books/:id", bookCtrl.DeleteBook)
	r.Get("/purchases", purchaseCtrl.ListPurchases)
	r.Delete("/purchases/:id", purchaseCtrl.DeletePurchase)
}

func BookPaymentRoutes(r fiber.Router, db *gorm.DB) {
	purchaseCtrl := bookController.NewPurchaseController(db)

	r.Post("/purchases/:ref/initialize", purchaseCtrl.InitializePayment)
	r.Post("/purchases/verify", purchaseCtrl.VerifyPayment)
}
