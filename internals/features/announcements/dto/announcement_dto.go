package dto

type AnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=info success warning"`
	IsActive *bool  `json:"is_active"`
}
