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
	bookDTO "nigerland_backend/internals/features/books/dto"
	paymentService "nigerland_backend/internals/features/payments/service"
	"nigerland_backend/internals/features/trainings/dto"
	"nigerland_backend/internals/features/trainings/model"
	helper "nigerland_backend/internals/helpers"
	"nigerland_backend/internals/helpers/mailer"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// POST /api/training/enroll
// Fee is snapshotted from the program at enrollment time.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	programID, _ := uuid.Parse(req.ProgramID)
	var program model.TrainingProgram
	if err := ctrl.DB.First(&program, "training_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Training program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch training program")
	}

	enrollment := model.TrainingEnrollment{
		EnrollmentRef:       helper.NewReference("TE"),
		EnrollmentProgramID: program.TrainingID,
		EnrollmentFullName:  req.FullName,
		EnrollmentEmail:     req.Email,
		EnrollmentPhone:     req.Phone,
		EnrollmentOrg:       req.Organization,
		EnrollmentPosition:  req.Position,
		EnrollmentAmount:    program.TrainingFee,
		EnrollmentStatus:    model.EnrollmentStatusPending,
		EnrollmentPayState:  "pending",
	}
	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		log.Printf("[ERROR] create enrollment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create enrollment")
	}

	mailer.SendTrainingEnrollmentConfirmation(enrollment.EnrollmentEmail, enrollment.EnrollmentFullName, program.TrainingTitle, enrollment.EnrollmentRef)
	log.Printf("[INFO] new training enrollment: %s", enrollment.EnrollmentRef)
	return helper.JsonCreated(c, "Enrollment created", enrollment)
}

// GET /api/admin/training/enrollments
func (ctrl *EnrollmentController) ListEnrollments(c *fiber.Ctx) error {
	var enrollments []model.TrainingEnrollment
	if err := ctrl.DB.Order("created_at DESC").Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}
	return helper.JsonList(c, "Enrollments fetched", enrollments)
}

// PUT /api/admin/training/enrollments/:id/status?status=
func (ctrl *EnrollmentController) UpdateStatus(c *fiber.Ctx) error {
	status := c.Query("status")
	if !model.ValidEnrollmentStatus(status) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Invalid status value")
	}

	var enrollment model.TrainingEnrollment
	if err := ctrl.DB.First(&enrollment, "enrollment_ref = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	enrollment.EnrollmentStatus = status
	if err := ctrl.DB.Save(&enrollment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	return helper.JsonUpdated(c, "Status updated", enrollment)
}

// DELETE /api/admin/enrollments/:id
func (ctrl *EnrollmentController) DeleteEnrollment(c *fiber.Ctx) error {
	id := c.Params("id")
	var enrollment model.TrainingEnrollment
	if err := ctrl.DB.First(&enrollment, "enrollment_ref = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}
	if err := ctrl.DB.Delete(&enrollment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete enrollment")
	}
	return helper.JsonDeleted(c, "Enrollment deleted", fiber.Map{"enrollment_id": id})
}

// POST /api/payments/enrollments/:ref/initialize
func (ctrl *EnrollmentController) InitializePayment(c *fiber.Ctx) error {
	ref := c.Params("ref")

	var enrollment model.TrainingEnrollment
	if err := ctrl.DB.First(&enrollment, "enrollment_ref = ?", ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	payRef := fmt.Sprintf("TRN-%s", enrollment.EnrollmentRef)
	callback := fmt.Sprintf("%s/payment/success?reference=%s", configs.FrontendURL, payRef)

	result, err := paymentService.Paystack.InitializePayment(
		enrollment.EnrollmentEmail,
		int64(enrollment.EnrollmentAmount*100),
		payRef,
		callback,
	)
	if err != nil {
		log.Printf("[ERROR] training payment init: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment initialization failed")
	}

	enrollment.EnrollmentPayRef = payRef
	if err := ctrl.DB.Save(&enrollment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}

	return c.JSON(fiber.Map{
		"status":            true,
		"authorization_url": result.AuthorizationURL,
		"reference":         payRef,
	})
}

// POST /api/training/enrollment/verify
func (ctrl *EnrollmentController) VerifyPayment(c *fiber.Ctx) error {
	var req bookDTO.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, err := paymentService.Paystack.VerifyPayment(req.Reference)
	if err != nil {
		log.Printf("[ERROR] training payment verify: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment verification failed")
	}
	if !result.Success() {
		return c.JSON(fiber.Map{"status": false, "message": "Payment verification failed"})
	}

	var enrollment model.TrainingEnrollment
	if err := ctrl.DB.First(&enrollment, "enrollment_pay_ref = ?", req.Reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"status": true, "message": "Payment verified but enrollment not found"})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	enrollment.EnrollmentStatus = model.EnrollmentStatusConfirmed
	enrollment.EnrollmentPayState = "completed"
	if err := ctrl.DB.Save(&enrollment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}

	return c.JSON(fiber.Map{
		"status":        true,
		"message":       "Payment verified successfully",
		"enrollment_id": enrollment.EnrollmentRef,
	})
}
