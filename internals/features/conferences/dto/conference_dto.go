package dto

type ConferenceRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Fee         string `json:"fee"`
	Description string `json:"description"`
	ForWhom     string `json:"for_whom"`
	IsActive    *bool  `json:"is_active"`
}

type RegistrationRequest struct {
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Organization   string `json:"organization"`
	Profession     string `json:"profession"`
	Conference     string `json:"conference" validate:"required"`
	ConferenceDate string `json:"conference_date"`
	AdditionalInfo string `json:"additional_info"`
}

type RegisterAndPayRequest struct {
	FullName       string  `json:"full_name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required"`
	Organization   string  `json:"organization"`
	Profession     string  `json:"profession"`
	AdditionalInfo string  `json:"additional_info"`
	Conference     string  `json:"conference" validate:"required"`
	ConferenceDate string  `json:"conference_date"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
}

type InitializePaymentRequest struct {
	RegistrationRef string  `json:"registration_id" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
}
