package dto

type ProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Year        string `json:"year"`
	Status      string `json:"status"`
}
