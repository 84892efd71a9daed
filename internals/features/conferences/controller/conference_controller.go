package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nigerland_backend/internals/features/conferences/dto"
	"nigerland_backend/internals/features/conferences/model"
	helper "nigerland_backend/internals/helpers"
)

type ConferenceController struct {
	DB *gorm.DB
}

func NewConferenceController(db *gorm.DB) *ConferenceController {
	return &ConferenceController{DB: db}
}

func applyConferenceRequest(cf *model.Conference, req *dto.ConferenceRequest) {
	cf.ConferenceTitle = strings.TrimSpace(req.Title)
	cf.ConferenceDate = strings.TrimSpace(req.Date)
	cf.ConferenceFee = strings.TrimSpace(req.Fee)
	cf.ConferenceDescription = strings.TrimSpace(req.Description)
	cf.ConferenceForWhom = strings.TrimSpace(req.ForWhom)
	if req.IsActive != nil {
		cf.ConferenceIsActive = *req.IsActive
	} else {
		cf.ConferenceIsActive = true
	}
}

// GET /api/conferences (public, active only)
func (ctrl *ConferenceController) ListActiveConferences(c *fiber.Ctx) error {
	var conferences []model.Conference
	if err := ctrl.DB.Where("conference_is_active = ?", true).Order("created_at DESC").Find(&conferences).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch conferences")
	}
	return helper.JsonList(c, "Conferences fetched", conferences)
}

// GET /api/admin/conferences
func (ctrl *ConferenceController) ListConferences(c *fiber.Ctx) error {
	var conferences []model.Conference
	if err := ctrl.DB.Order("created_at DESC").Find(&conferences).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch conferences")
	}
	return helper.JsonList(c, "Conferences fetched", conferences)
}

// POST /api/admin/conferences
func (ctrl *ConferenceController) CreateConference(c *fiber.Ctx) error {
	var req dto.ConferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var conference model.Conference
	applyConferenceRequest(&conference, &req)
	if err := ctrl.DB.Create(&conference).Error; err != nil {
		log.Printf("[ERROR] create conference: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create conference")
	}
	return helper.JsonCreated(c, "Conference created", conference)
}

// PUT /api/admin/conferences/:id
func (ctrl *ConferenceController) UpdateConference(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid conference id")
	}

	var req dto.ConferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var conference model.Conference
	if err := ctrl.DB.First(&conference, "conference_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Conference not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch conference")
	}

	applyConferenceRequest(&conference, &req)
	if err := ctrl.DB.Save(&conference).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update conference")
	}
	return helper.JsonUpdated(c, "Conference updated", conference)
}

// DELETE /api/admin/conferences/:id
func (ctrl *ConferenceController) DeleteConference(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid conference id")
	}

	var conference model.Conference
	if err := ctrl.DB.First(&conference, "conference_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Conference not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch conference")
	}
	if err := ctrl.DB.Delete(&conference).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete conference")
	}
	return helper.JsonDeleted(c, "Conference deleted", fiber.Map{"conference_id": id})
}
