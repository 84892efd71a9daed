package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nigerland_backend/internals/features/contact/dto"
	"nigerland_backend/internals/features/contact/model"
	helper "nigerland_backend/internals/helpers"
	"nigerland_backend/internals/helpers/mailer"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// CreateMessage handles the public contact form. The sender gets an
// acknowledgement mail and the site admin gets a notification; neither
// mail failure blocks the submission.
func (ctrl *ContactController) CreateMessage(c *fiber.Ctx) error {
	var req dto.ContactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	message := model.ContactMessage{
		MessageName:    req.Name,
		MessageEmail:   req.Email,
		MessagePhone:   strings.TrimSpace(req.Phone),
		MessageSubject: strings.TrimSpace(req.Subject),
		MessageBody:    req.Message,
		MessageStatus:  model.MessageStatusUnread,
	}
	if err := ctrl.DB.Create(&message).Error; err != nil {
		log.Printf("[ERROR] create contact message: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save message")
	}

	mailer.SendContactConfirmation(message.MessageEmail, message.MessageName)
	mailer.SendAdminContactNotification(message.MessageName, message.MessageEmail, message.MessageSubject, message.MessageBody)

	return helper.JsonCreated(c, "Message sent successfully", message)
}

func (ctrl *ContactController) ListMessages(c *fiber.Ctx) error {
	var messages []model.ContactMessage
	if err := ctrl.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}
	return helper.JsonList(c, "Messages fetched", messages)
}

// UpdateStatus marks a message read, unread, or archived.
func (ctrl *ContactController) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status := c.Query("status")
	if !model.ValidMessageStatus(status) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Invalid status value")
	}

	var message model.ContactMessage
	if err := ctrl.DB.First(&message, "message_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}
	message.MessageStatus = status
	if err := ctrl.DB.Save(&message).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	return helper.JsonUpdated(c, "Message status updated", message)
}

func (ctrl *ContactController) DeleteMessage(c *fiber.Ctx) error {
	id := c.Params("id")
	var message model.ContactMessage
	if err := ctrl.DB.First(&message, "message_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}
	if err := ctrl.DB.Delete(&message).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	return helper.JsonDeleted(c, "Message deleted", fiber.Map{"message_id": id})
}
