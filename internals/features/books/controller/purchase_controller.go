package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nigerland_backend/internals/configs"
	"nigerland_backend/internals/features/books/dto"
	"nigerland_backend/internals/features/books/model"
	paymentService "nigerland_backend/internals/features/payments/service"
	helper "nigerland_backend/internals/helpers"
	"nigerland_backend/internals/helpers/mailer"
)

type PurchaseController struct {
	DB *gorm.DB
}

func NewPurchaseController(db *gorm.DB) *PurchaseController {
	return &PurchaseController{DB: db}
}

// POST /api/books/purchase
// Snapshots the book price onto the purchase so later price edits (or
// deleting the book) never change what the buyer owes.
func (ctrl *PurchaseController) PurchaseBook(c *fiber.Ctx) error {
	var req dto.PurchaseBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	bookID, _ := uuid.Parse(req.BookID)
	var book model.Book
	if err := ctrl.DB.First(&book, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}

	purchase := model.BookPurchase{
		BookPurchaseRef:      helper.NewReference("BP"),
		BookPurchaseBookID:   book.BookID,
		BookPurchaseFullName: req.FullName,
		BookPurchaseEmail:    req.Email,
		BookPurchasePhone:    req.Phone,
		BookPurchaseAmount:   book.BookPrice,
		BookPurchaseStatus:   "pending",
	}
	if err := ctrl.DB.Create(&purchase).Error; err != nil {
		log.Printf("[ERROR] create purchase: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create purchase")
	}

	log.Printf("[INFO] new book purchase: %s", purchase.BookPurchaseRef)
	return helper.JsonCreated(c, "Purchase created", purchase)
}

// POST /api/payments/purchases/:ref/initialize
func (ctrl *PurchaseController) InitializePayment(c *fiber.Ctx) error {
	ref := c.Params("ref")

	var purchase model.BookPurchase
	if err := ctrl.DB.First(&purchase, "book_purchase_ref = ?", ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Purchase not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch purchase")
	}

	payRef := fmt.Sprintf("BOOK-%s", purchase.BookPurchaseRef)
	callback := fmt.Sprintf("%s/payment/success?reference=%s", configs.FrontendURL, payRef)

	result, err := paymentService.Paystack.InitializePayment(
		purchase.BookPurchaseEmail,
		int64(purchase.BookPurchaseAmount*100),
		payRef,
		callback,
	)
	if err != nil {
		log.Printf("[ERROR] book payment init: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment initialization failed")
	}

	purchase.BookPurchasePayRef = payRef
	if err := ctrl.DB.Save(&purchase).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update purchase")
	}

	return c.JSON(fiber.Map{
		"status":            true,
		"authorization_url": result.AuthorizationURL,
		"reference":         payRef,
	})
}

// POST /api/books/purchase/verify
func (ctrl *PurchaseController) VerifyPayment(c *fiber.Ctx) error {
	var req dto.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, err := paymentService.Paystack.VerifyPayment(req.Reference)
	if err != nil {
		log.Printf("[ERROR] book payment verify: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment verification failed")
	}
	if !result.Success() {
		return c.JSON(fiber.Map{"status": false, "message": "Payment verification failed"})
	}

	var purchase model.BookPurchase
	if err := ctrl.DB.First(&purchase, "book_purchase_pay_ref = ?", req.Reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"status": true, "message": "Payment verified but purchase not found"})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch purchase")
	}

	purchase.BookPurchaseStatus = "completed"
	if err := ctrl.DB.Save(&purchase).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update purchase")
	}

	// Best effort: the book may have been deleted since purchase.
	var book model.Book
	if err := ctrl.DB.First(&book, "book_id = ?", purchase.BookPurchaseBookID).Error; err == nil {
		download := book.BookPdfURL
		if download == "" {
			download = "Contact support for download"
		}
		mailer.SendBookPurchaseConfirmation(purchase.BookPurchaseEmail, purchase.BookPurchaseFullName, book.BookTitle, download)
	}

	return c.JSON(fiber.Map{
		"status":      true,
		"message":     "Payment verified successfully",
		"purchase_id": purchase.BookPurchaseRef,
	})
}

// GET /api/purchases/user/:email
func (ctrl *PurchaseController) ListUserPurchases(c *fiber.Ctx) error {
	email := c.Params("email")
	var purchases []model.BookPurchase
	if err := ctrl.DB.
		Where("book_purchase_email = ? AND book_purchase_status = ?", email, "completed").
		Find(&purchases).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch purchases")
	}
	return helper.JsonList(c, "Purchases fetched", purchases)
}

// GET /api/admin/books/purchases
func (ctrl *PurchaseController) ListPurchases(c *fiber.Ctx) error {
	var purchases []model.BookPurchase
	if err := ctrl.DB.Order("created_at DESC").Find(&purchases).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch purchases")
	}
	return helper.JsonList(c, "Purchases fetched", purchases)
}

// DELETE /api/admin/purchases/:id
func (ctrl *PurchaseController) DeletePurchase(c *fiber.Ctx) error {
	id := c.Params("id")
	var purchase model.BookPurchase
	if err := ctrl.DB.First(&purchase, "book_purchase_ref = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Purchase not found")
	}
	if err := ctrl.DB.Delete(&purchase).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete purchase")
	}
	return helper.JsonDeleted(c, "Purchase deleted", fiber.Map{"purchase_id": id})
}
