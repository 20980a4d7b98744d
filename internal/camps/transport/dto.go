package transport

import "time"

type CreateCampRequest struct {
	Name                   string    `json:"name" validate:"required,min=1,max=200"`
	Image                  string    `json:"image" validate:"omitempty,url"`
	Location               string    `json:"location" validate:"required,min=1,max=200"`
	DateTime               time.Time `json:"dateTime" validate:"required"`
	Fees                   *int64    `json:"fees" validate:"required,min=0"`
	HealthcareProfessional string    `json:"healthcareProfessional" validate:"required,min=1,max=100"`
	Description            string    `json:"description" validate:"omitempty,max=5000"`
}

type UpdateCampRequest struct {
	Name                   *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Image                  *string    `json:"image,omitempty" validate:"omitempty,url"`
	Location               *string    `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	DateTime               *time.Time `json:"dateTime,omitempty"`
	Fees                   *int64     `json:"fees,omitempty" validate:"omitempty,min=0"`
	HealthcareProfessional *string    `json:"healthcareProfessional,omitempty" validate:"omitempty,min=1,max=100"`
	Description            *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
}

type ListCampsRequest struct {
	Search    string `form:"search" validate:"max=100"`
	SortBy    string `form:"sortBy" validate:"omitempty,oneof=fees participants date"`
	SortOrder string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Limit     int64  `form:"limit" validate:"omitempty,min=1,max=100"`
}

type CampResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Image                  string    `json:"image"`
	Location               string    `json:"location"`
	DateTime               time.Time `json:"dateTime"`
	Fees                   int64     `json:"fees"`
	HealthcareProfessional string    `json:"healthcareProfessional"`
	Description            string    `json:"description"`
	ParticipantCount       int64     `json:"participantCount"`
	CreatedAt              time.Time `json:"createdAt"`
}
