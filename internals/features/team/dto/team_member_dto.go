package dto

type TeamMemberRequest struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Credentials string `json:"credentials" validate:"required"`
	Bio         string `json:"bio"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
}
