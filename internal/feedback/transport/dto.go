package transport

import "time"

type SubmitFeedbackRequest struct {
	CampID           string `json:"campId" validate:"required"`
	ParticipantEmail string `json:"participantEmail" validate:"required,email"`
	ParticipantName  string `json:"participantName" validate:"required,min=1,max=100"`
	Rating           int    `json:"rating" validate:"required,min=1,max=5"`
	Comment          string `json:"comment" validate:"omitempty,max=2000"`
}

type FeedbackResponse struct {
	ID               string    `json:"id"`
	CampID           string    `json:"campId"`
	CampName         string    `json:"campName"`
	ParticipantEmail string    `json:"participantEmail"`
	ParticipantName  string    `json:"participantName"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
