package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nigerland_backend/internals/features/projects/dto"
	"nigerland_backend/internals/features/projects/model"
	helper "nigerland_backend/internals/helpers"
)

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

func applyProjectRequest(p *model.Project, req *dto.ProjectRequest) {
	p.ProjectTitle = strings.TrimSpace(req.Title)
	p.ProjectDescription = strings.TrimSpace(req.Description)
	p.ProjectYear = strings.TrimSpace(req.Year)
	p.ProjectStatus = strings.TrimSpace(req.Status)
}

// GET /api/projects
func (ctrl *ProjectController) ListProjects(c *fiber.Ctx) error {
	var projects []model.Project
	if err := ctrl.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch projects")
	}
	return helper.JsonList(c, "Projects fetched", projects)
}

// POST /api/admin/projects
func (ctrl *ProjectController) CreateProject(c *fiber.Ctx) error {
	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var project model.Project
	applyProjectRequest(&project, &req)
	if err := ctrl.DB.Create(&project).Error; err != nil {
		log.Printf("[ERROR] create project: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create project")
	}
	return helper.JsonCreated(c, "Project created", project)
}

// PUT /api/admin/projects/:id
func (ctrl *ProjectController) UpdateProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid project id")
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var project model.Project
	if err := ctrl.DB.First(&project, "project_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch project")
	}

	applyProjectRequest(&project, &req)
	if err := ctrl.DB.Save(&project).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update project")
	}
	return helper.JsonUpdated(c, "Project updated", project)
}

// DELETE /api/admin/projects/:id
func (ctrl *ProjectController) DeleteProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid project id")
	}

	var project model.Project
	if err := ctrl.DB.First(&project, "project_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch project")
	}
	if err := ctrl.DB.Delete(&project).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete project")
	}
	return helper.JsonDeleted(c, "Project deleted", fiber.Map{"project_id": id})
}
