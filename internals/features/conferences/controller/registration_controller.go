package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nigerland_backend/internals/configs"
	bookDTO "nigerland_backend/internals/features/books/dto"
	"nigerland_backend/internals/features/conferences/dto"
	"nigerland_backend/internals/features/conferences/model"
	paymentService "nigerland_backend/internals/features/payments/service"
	helper "nigerland_backend/internals/helpers"
	"nigerland_backend/internals/helpers/mailer"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// POST /api/registrations/conference
func (ctrl *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	reg := model.ConferenceRegistration{
		RegistrationRef:      helper.NewReference("REG"),
		RegistrationFullName: req.FullName,
		RegistrationEmail:    req.Email,
		RegistrationPhone:    req.Phone,
		RegistrationOrg:      req.Organization,
		RegistrationRole:     req.Profession,
		RegistrationConf:     req.Conference,
		RegistrationConfDate: req.ConferenceDate,
		RegistrationNotes:    req.AdditionalInfo,
		RegistrationStatus:   model.RegistrationStatusPending,
		RegistrationPayState: "pending",
	}
	if err := ctrl.DB.Create(&reg).Error; err != nil {
		log.Printf("[ERROR] create registration: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create registration")
	}

	mailer.SendRegistrationConfirmation(reg.RegistrationEmail, reg.RegistrationFullName, reg.RegistrationConf, reg.RegistrationRef)
	log.Printf("[INFO] new conference registration: %s", reg.RegistrationRef)
	return helper.JsonCreated(c, "Registration created", reg)
}

// GET /api/registrations (admin)
func (ctrl *RegistrationController) ListRegistrations(c *fiber.Ctx) error {
	var regs []model.ConferenceRegistration
	if err := ctrl.DB.Order("created_at DESC").Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	return helper.JsonList(c, "Registrations fetched", regs)
}

// GET /api/registrations/:id (admin)
func (ctrl *RegistrationController) GetRegistration(c *fiber.Ctx) error {
	var reg model.ConferenceRegistration
	if err := ctrl.DB.First(&reg, "registration_ref = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}
	return helper.JsonOK(c, "Registration fetched", reg)
}

// PUT /api/registrations/:id/status?status= (admin)
func (ctrl *RegistrationController) UpdateStatus(c *fiber.Ctx) error {
	status := c.Query("status")
	if !model.ValidRegistrationStatus(status) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Invalid status value")
	}

	var reg model.ConferenceRegistration
	if err := ctrl.DB.First(&reg, "registration_ref = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}

	reg.RegistrationStatus = status
	if err := ctrl.DB.Save(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	return helper.JsonUpdated(c, "Status updated", reg)
}

// DELETE /api/registrations/:id (admin)
func (ctrl *RegistrationController) DeleteRegistration(c *fiber.Ctx) error {
	var reg model.ConferenceRegistration
	if err := ctrl.DB.First(&reg, "registration_ref = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}
	if err := ctrl.DB.Delete(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete registration")
	}
	return helper.JsonDeleted(c, "Registration deleted", fiber.Map{"registration_ref": reg.RegistrationRef})
}

// POST /api/payments/registrations/initialize
func (ctrl *RegistrationController) InitializePayment(c *fiber.Ctx) error {
	var req dto.InitializePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var reg model.ConferenceRegistration
	if err := ctrl.DB.First(&reg, "registration_ref = ?", req.RegistrationRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}

	payRef := fmt.Sprintf("CONF-%s", reg.RegistrationRef)
	callback := fmt.Sprintf("%s/payment/success?reference=%s", configs.FrontendURL, payRef)

	result, err := paymentService.Paystack.InitializePayment(req.Email, int64(req.Amount*100), payRef, callback)
	if err != nil {
		log.Printf("[ERROR] conference payment init: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment initialization failed")
	}

	reg.RegistrationPayRef = payRef
	reg.RegistrationAmount = req.Amount
	if err := ctrl.DB.Save(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration")
	}

	return c.JSON(fiber.Map{
		"status":            true,
		"authorization_url": result.AuthorizationURL,
		"reference":         payRef,
	})
}

// POST /api/payments/verify
func (ctrl *RegistrationController) VerifyPayment(c *fiber.Ctx) error {
	var req bookDTO.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, err := paymentService.Paystack.VerifyPayment(req.Reference)
	if err != nil {
		log.Printf("[ERROR] conference payment verify: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment verification failed")
	}
	if !result.Success() {
		return c.JSON(fiber.Map{"status": false, "message": "Payment verification failed"})
	}

	var reg model.ConferenceRegistration
	if err := ctrl.DB.First(&reg, "registration_pay_ref = ?", req.Reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"status": true, "message": "Payment verified but registration not found"})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}

	reg.RegistrationStatus = model.RegistrationStatusConfirmed
	reg.RegistrationPayState = "completed"
	if err := ctrl.DB.Save(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration")
	}

	mailer.SendPaymentConfirmation(reg.RegistrationEmail, reg.RegistrationFullName, reg.RegistrationConf, reg.RegistrationAmount)

	return c.JSON(fiber.Map{
		"status":          true,
		"message":         "Payment verified successfully",
		"registration_id": reg.RegistrationRef,
	})
}

// POST /api/conference/register-and-pay
// One-step flow used by the conference landing pages: create the pending
// registration, then hand back the Paystack redirect in the same response.
func (ctrl *RegistrationController) RegisterAndPay(c *fiber.Ctx) error {
	var req dto.RegisterAndPayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	reg := model.ConferenceRegistration{
		RegistrationRef:      helper.NewReference("REG"),
		RegistrationFullName: req.FullName,
		RegistrationEmail:    req.Email,
		RegistrationPhone:    req.Phone,
		RegistrationOrg:      req.Organization,
		RegistrationRole:     req.Profession,
		RegistrationConf:     req.Conference,
		RegistrationConfDate: req.ConferenceDate,
		RegistrationNotes:    req.AdditionalInfo,
		RegistrationAmount:   req.Amount,
		RegistrationStatus:   model.RegistrationStatusPending,
		RegistrationPayState: "pending",
	}
	if err := ctrl.DB.Create(&reg).Error; err != nil {
		log.Printf("[ERROR] register-and-pay create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create registration")
	}

	payRef := fmt.Sprintf("CONF-%s", reg.RegistrationRef)
	callback := fmt.Sprintf("%s/payment/success?type=conference&reference=%s", configs.FrontendURL, payRef)

	result, err := paymentService.Paystack.InitializePayment(req.Email, int64(req.Amount*100), payRef, callback)
	if err != nil {
		log.Printf("[ERROR] register-and-pay init: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment initialization failed")
	}

	reg.RegistrationPayRef = payRef
	if err := ctrl.DB.Save(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration")
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"registration_id":   reg.RegistrationRef,
		"authorization_url": result.AuthorizationURL,
		"reference":         payRef,
	})
}
