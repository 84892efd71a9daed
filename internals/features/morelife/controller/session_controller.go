package controller

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nigerland_backend/internals/configs"
	"nigerland_backend/internals/constants"
	bookDTO "nigerland_backend/internals/features/books/dto"
	"nigerland_backend/internals/features/morelife/dto"
	"nigerland_backend/internals/features/morelife/model"
	paymentService "nigerland_backend/internals/features/payments/service"
	helper "nigerland_backend/internals/helpers"
	"nigerland_backend/internals/helpers/mailer"
)

type MoreLifeController struct {
	DB *gorm.DB
}

func NewMoreLifeController(db *gorm.DB) *MoreLifeController {
	return &MoreLifeController{DB: db}
}

// CreateAssessment receives the public MoreLife intake form. The session fee
// is fixed by the chosen session type, never taken from the client.
func (ctrl *MoreLifeController) CreateAssessment(c *fiber.Ctx) error {
	var req dto.AssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	amount, ok := constants.MoreLifePricing[req.SessionType]
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Unknown session type")
	}

	session := model.MoreLifeSession{
		SessionRef:           helper.NewReference("ML"),
		SessionClientName:    req.ClientName,
		SessionEmail:         req.Email,
		SessionPhone:         req.Phone,
		SessionLocation:      strings.TrimSpace(req.Location),
		SessionAge:           req.Age,
		SessionEducation:     strings.TrimSpace(req.Education),
		SessionChallenge:     strings.TrimSpace(req.Challenge),
		SessionLikelyCause:   strings.TrimSpace(req.LikelyCause),
		SessionChallengeSpan: strings.TrimSpace(req.ChallengeSpan),
		SessionTrigger:       strings.TrimSpace(req.Trigger),
		SessionOnDrugs:       strings.TrimSpace(req.OnDrugs),
		SessionType:          req.SessionType,
		SessionScheduledDate: strings.TrimSpace(req.ScheduledDate),
		SessionNotes:         strings.TrimSpace(req.Notes),
		SessionAmount:        amount,
		SessionStatus:        model.SessionStatusPending,
		SessionPayState:      "pending",
	}
	if err := ctrl.DB.Create(&session).Error; err != nil {
		log.Printf("[ERROR] create morelife assessment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save assessment")
	}

	mailer.SendAssessmentConfirmation(session.SessionEmail, session.SessionClientName, session.SessionRef)

	log.Printf("[INFO] morelife assessment created ref=%s type=%s", session.SessionRef, session.SessionType)
	return helper.JsonCreated(c, "Assessment submitted successfully", session)
}

func (ctrl *MoreLifeController) ListSessions(c *fiber.Ctx) error {
	var sessions []model.MoreLifeSession
	if err := ctrl.DB.Order("created_at DESC").Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}
	return helper.JsonList(c, "Sessions fetched", sessions)
}

func (ctrl *MoreLifeController) GetSession(c *fiber.Ctx) error {
	ref := c.Params("ref")
	var session model.MoreLifeSession
	if err := ctrl.DB.First(&session, "session_ref = ?", ref).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	return helper.JsonOK(c, "Session fetched successfully", session)
}

// UpdateStatus moves a session through review and lifecycle states via
// the ?status= query parameter.
func (ctrl *MoreLifeController) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status := c.Query("status")
	if !model.ValidSessionStatus(status) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Invalid status value")
	}

	var session model.MoreLifeSession
	if err := ctrl.DB.First(&session, "session_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	session.SessionStatus = status
	if err := ctrl.DB.Save(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update session")
	}
	return helper.JsonUpdated(c, "Session status updated", session)
}

func (ctrl *MoreLifeController) DeleteSession(c *fiber.Ctx) error {
	id := c.Params("id")
	var session model.MoreLifeSession
	if err := ctrl.DB.First(&session, "session_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	if err := ctrl.DB.Delete(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete session")
	}
	return helper.JsonDeleted(c, "Session deleted", fiber.Map{"session_id": id})
}

// InitializePayment starts a Paystack transaction for a session's fixed fee.
func (ctrl *MoreLifeController) InitializePayment(c *fiber.Ctx) error {
	ref := c.Params("ref")
	var session model.MoreLifeSession
	if err := ctrl.DB.First(&session, "session_ref = ?", ref).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	if session.SessionPayState == "completed" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment already completed for this session")
	}

	payRef := fmt.Sprintf("ML-%s", session.SessionRef)
	callback := fmt.Sprintf("%s/payment/success?reference=%s", configs.FrontendURL, payRef)
	result, err := paymentService.Paystack.InitializePayment(
		session.SessionEmail,
		int64(session.SessionAmount*100),
		payRef,
		callback,
	)
	if err != nil {
		log.Printf("[ERROR] morelife payment init ref=%s: %v", session.SessionRef, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to initialize payment")
	}

	session.SessionPayRef = payRef
	if err := ctrl.DB.Save(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update session")
	}
	return helper.JsonOK(c, "Payment initialized", fiber.Map{
		"authorization_url": result.AuthorizationURL,
		"access_code":       result.AccessCode,
		"reference":         result.Reference,
	})
}

// VerifyPayment confirms a Paystack transaction and marks the session paid.
func (ctrl *MoreLifeController) VerifyPayment(c *fiber.Ctx) error {
	var req bookDTO.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var session model.MoreLifeSession
	if err := ctrl.DB.First(&session, "session_pay_ref = ?", req.Reference).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found for reference")
	}

	result, err := paymentService.Paystack.VerifyPayment(req.Reference)
	if err != nil {
		log.Printf("[ERROR] morelife payment verify ref=%s: %v", req.Reference, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to verify payment")
	}
	if !result.Success() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment not successful")
	}

	session.SessionPayState = "completed"
	session.SessionStatus = model.SessionStatusScheduled
	if err := ctrl.DB.Save(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update session")
	}

	mailer.SendMoreLifePaymentConfirmation(session.SessionEmail, session.SessionClientName, session.SessionAmount)

	log.Printf("[INFO] morelife payment completed ref=%s", session.SessionRef)
	return helper.JsonOK(c, "Payment verified successfully", session)
}
