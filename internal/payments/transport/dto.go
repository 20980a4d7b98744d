package transport

import "time"

type CreateIntentRequest struct {
	RegistrationID string `json:"registrationId" validate:"required"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type RecordPaymentRequest struct {
	TransactionID string `json:"transactionId" validate:"omitempty,min=1,max=100"`
}

type PaymentResponse struct {
	ID               string    `json:"id"`
	RegistrationID   string    `json:"registrationId"`
	CampID           string    `json:"campId"`
	CampName         string    `json:"campName"`
	ParticipantEmail string    `json:"participantEmail"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	TransactionID    string    `json:"transactionId"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}
