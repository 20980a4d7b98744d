package transport

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SessionResponse struct {
	Success bool `json:"success"`
}
