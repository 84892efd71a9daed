package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nigerland_backend/internals/features/team/dto"
	"nigerland_backend/internals/features/team/model"
	helper "nigerland_backend/internals/helpers"
)

type TeamMemberController struct {
	DB *gorm.DB
}

func NewTeamMemberController(db *gorm.DB) *TeamMemberController {
	return &TeamMemberController{DB: db}
}

func applyTeamMemberRequest(m *model.TeamMember, req *dto.TeamMemberRequest) {
	m.TeamMemberName = strings.TrimSpace(req.Name)
	m.TeamMemberTitle = strings.TrimSpace(req.Title)
	m.TeamMemberCredentials = strings.TrimSpace(req.Credentials)
	m.TeamMemberBio = strings.TrimSpace(req.Bio)
	m.TeamMemberImage = strings.TrimSpace(req.Image)
	m.TeamMemberOrder = req.Order
}

// GET /api/team — display order, not insertion order
func (ctrl *TeamMemberController) ListTeamMembers(c *fiber.Ctx) error {
	var members []model.TeamMember
	if err := ctrl.DB.Order("team_member_order ASC").Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch team members")
	}
	return helper.JsonList(c, "Team members fetched", members)
}

// POST /api/admin/team
func (ctrl *TeamMemberController) CreateTeamMember(c *fiber.Ctx) error {
	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var member model.TeamMember
	applyTeamMemberRequest(&member, &req)
	if err := ctrl.DB.Create(&member).Error; err != nil {
		log.Printf("[ERROR] create team member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create team member")
	}
	return helper.JsonCreated(c, "Team member created", member)
}

// PUT /api/admin/team/:id
func (ctrl *TeamMemberController) UpdateTeamMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid team member id")
	}

	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var member model.TeamMember
	if err := ctrl.DB.First(&member, "team_member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Team member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch team member")
	}

	applyTeamMemberRequest(&member, &req)
	if err := ctrl.DB.Save(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update team member")
	}
	return helper.JsonUpdated(c, "Team member updated", member)
}

// DELETE /api/admin/team/:id
func (ctrl *TeamMemberController) DeleteTeamMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid team member id")
	}

	var member model.TeamMember
	if err := ctrl.DB.First(&member, "team_member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Team member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch team member")
	}
	if err := ctrl.DB.Delete(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete team member")
	}
	return helper.JsonDeleted(c, "Team member deleted", fiber.Map{"team_member_id": id})
}
