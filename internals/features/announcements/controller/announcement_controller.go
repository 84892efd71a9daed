package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nigerland_backend/internals/features/announcements/dto"
	"nigerland_backend/internals/features/announcements/model"
	helper "nigerland_backend/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

func applyAnnouncementRequest(a *model.Announcement, req *dto.AnnouncementRequest) {
	a.AnnouncementTitle = strings.TrimSpace(req.Title)
	a.AnnouncementContent = strings.TrimSpace(req.Content)
	if req.Type != "" {
		a.AnnouncementType = req.Type
	} else {
		a.AnnouncementType = model.AnnouncementTypeInfo
	}
	if req.IsActive != nil {
		a.AnnouncementIsActive = *req.IsActive
	} else {
		a.AnnouncementIsActive = true
	}
}

// GET /api/announcements (public, active only)
func (ctrl *AnnouncementController) ListActiveAnnouncements(c *fiber.Ctx) error {
	var anns []model.Announcement
	if err := ctrl.DB.
		Where("announcement_is_active = ?", true).
		Order("created_at DESC").
		Find(&anns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}
	return helper.JsonList(c, "Announcements fetched", anns)
}

// GET /api/admin/announcements — returns all, inactive ones stay editable
func (ctrl *AnnouncementController) ListAnnouncements(c *fiber.Ctx) error {
	var anns []model.Announcement
	if err := ctrl.DB.Order("created_at DESC").Find(&anns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}
	return helper.JsonList(c, "Announcements fetched", anns)
}

// POST /api/admin/announcements
func (ctrl *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ann model.Announcement
	applyAnnouncementRequest(&ann, &req)
	if err := ctrl.DB.Create(&ann).Error; err != nil {
		log.Printf("[ERROR] create announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement created", ann)
}

// PUT /api/admin/announcements/:id
func (ctrl *AnnouncementController) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement id")
	}

	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ann model.Announcement
	if err := ctrl.DB.First(&ann, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcement")
	}

	applyAnnouncementRequest(&ann, &req)
	if err := ctrl.DB.Save(&ann).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated", ann)
}

// DELETE /api/admin/announcements/:id
func (ctrl *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement id")
	}

	var ann model.Announcement
	if err := ctrl.DB.First(&ann, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcement")
	}
	if err := ctrl.DB.Delete(&ann).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return helper.JsonDeleted(c, "Announcement deleted", fiber.Map{"announcement_id": id})
}
