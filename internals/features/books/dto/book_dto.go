package dto

type BookRequest struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image"`
	PdfURL      string  `json:"pdf_url"`
	IsPaid      *bool   `json:"is_paid"`
}

type PurchaseBookRequest struct {
	BookID   string `json:"book_id" validate:"required,uuid"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
}
