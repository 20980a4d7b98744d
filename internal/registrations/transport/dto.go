package transport

import "time"

type CreateRegistrationRequest struct {
	CampID           string `json:"campId" validate:"required"`
	ParticipantEmail string `json:"participantEmail" validate:"required,email"`
	ParticipantName  string `json:"participantName" validate:"required,min=1,max=100"`
	Age              int    `json:"age" validate:"required,min=1,max=120"`
	Phone            string `json:"phone" validate:"required,min=5,max=20"`
	Gender           string `json:"gender" validate:"required,oneof=male female other"`
	EmergencyContact string `json:"emergencyContact" validate:"required,min=5,max=20"`
}

type ListRegistrationsRequest struct {
	Search        string `form:"search" validate:"max=100"`
	PaymentStatus string `form:"paymentStatus" validate:"omitempty,oneof=Unpaid Paid"`
}

type RegistrationResponse struct {
	ID                 string    `json:"id"`
	CampID             string    `json:"campId"`
	CampName           string    `json:"campName"`
	Fees               int64     `json:"fees"`
	ParticipantEmail   string    `json:"participantEmail"`
	ParticipantName    string    `json:"participantName"`
	Age                int       `json:"age"`
	Phone              string    `json:"phone"`
	Gender             string    `json:"gender"`
	EmergencyContact   string    `json:"emergencyContact"`
	PaymentStatus      string    `json:"paymentStatus"`
	ConfirmationStatus string    `json:"confirmationStatus"`
	CreatedAt          time.Time `json:"createdAt"`
}
