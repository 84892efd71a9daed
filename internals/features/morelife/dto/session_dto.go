package dto

type AssessmentRequest struct {
	ClientName    string `json:"client_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Location      string `json:"location"`
	Age           int    `json:"age" validate:"omitempty,gt=0"`
	Education     string `json:"education"`
	Challenge     string `json:"specific_challenge"`
	LikelyCause   string `json:"likely_cause"`
	ChallengeSpan string `json:"duration_of_challenge"`
	Trigger       string `json:"triggering_incident"`
	OnDrugs       string `json:"on_drugs"`
	SessionType   string `json:"session_type" validate:"required,oneof=private_1week private_2weeks joint"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	Notes         string `json:"notes"`
}
