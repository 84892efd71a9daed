package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nigerland_backend/internals/features/trainings/dto"
	"nigerland_backend/internals/features/trainings/model"
	helper "nigerland_backend/internals/helpers"
)

type TrainingProgramController struct {
	DB *gorm.DB
}

func NewTrainingProgramController(db *gorm.DB) *TrainingProgramController {
	return &TrainingProgramController{DB: db}
}

func applyTrainingProgramRequest(t *model.TrainingProgram, req *dto.TrainingProgramRequest) error {
	objectives, err := sonic.Marshal(req.Objectives)
	if err != nil {
		return err
	}
	t.TrainingTitle = strings.TrimSpace(req.Title)
	t.TrainingCategory = strings.TrimSpace(req.Category)
	t.TrainingDescription = strings.TrimSpace(req.Description)
	t.TrainingDuration = strings.TrimSpace(req.Duration)
	t.TrainingFee = req.Fee
	t.TrainingObjectives = datatypes.JSON(objectives)
	t.TrainingTargetAudience = strings.TrimSpace(req.TargetAudience)
	if req.IsActive != nil {
		t.TrainingIsActive = *req.IsActive
	} else {
		t.TrainingIsActive = true
	}
	return nil
}

// GET /api/trainings (public, active only)
func (ctrl *TrainingProgramController) ListActiveTrainings(c *fiber.Ctx) error {
	var trainings []model.TrainingProgram
	if err := ctrl.DB.Where("training_is_active = ?", true).Order("created_at DESC").Find(&trainings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch training programs")
	}
	return helper.JsonList(c, "Training programs fetched", trainings)
}

// GET /api/admin/trainings
func (ctrl *TrainingProgramController) ListTrainings(c *fiber.Ctx) error {
	var trainings []model.TrainingProgram
	if err := ctrl.DB.Order("created_at DESC").Find(&trainings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch training programs")
	}
	return helper.JsonList(c, "Training programs fetched", trainings)
}

// POST /api/admin/trainings
func (ctrl *TrainingProgramController) CreateTraining(c *fiber.Ctx) error {
	var req dto.TrainingProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var training model.TrainingProgram
	if err := applyTrainingProgramRequest(&training, &req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid objectives")
	}
	if err := ctrl.DB.Create(&training).Error; err != nil {
		log.Printf("[ERROR] create training: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create training program")
	}
	return helper.JsonCreated(c, "Training program created", training)
}

// PUT /api/admin/trainings/:id
// The update payload must carry the full record, objectives and target
// audience included; a partial payload is rejected rather than wiping them.
func (ctrl *TrainingProgramController) UpdateTraining(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid training id")
	}

	var req dto.TrainingProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var training model.TrainingProgram
	if err := ctrl.DB.First(&training, "training_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Training program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch training program")
	}

	if err := applyTrainingProgramRequest(&training, &req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid objectives")
	}
	if err := ctrl.DB.Save(&training).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update training program")
	}
	return helper.JsonUpdated(c, "Training program updated", training)
}

// DELETE /api/admin/trainings/:id
func (ctrl *TrainingProgramController) DeleteTraining(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid training id")
	}

	var training model.TrainingProgram
	if err := ctrl.DB.First(&training, "training_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Training program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch training program")
	}
	if err := ctrl.DB.Delete(&training).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete training program")
	}
	return helper.JsonDeleted(c, "Training program deleted", fiber.Map{"training_id": id})
}
