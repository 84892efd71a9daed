package dto

type TrainingProgramRequest struct {
	Title          string   `json:"title" validate:"required"`
	Category       string   `json:"category" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Duration       string   `json:"duration" validate:"required"`
	Fee            float64  `json:"fee" validate:"gte=0"`
	Objectives     []string `json:"objectives" validate:"required"`
	TargetAudience string   `json:"target_audience" validate:"required"`
	IsActive       *bool    `json:"is_active"`
}

type EnrollTrainingRequest struct {
	ProgramID    string `json:"program_id" validate:"required,uuid"`
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Organization string `json:"organization"`
	Position     string `json:"position"`
}
