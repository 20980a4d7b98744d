package transport

import "time"

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	PhotoURL *string `json:"photoURL,omitempty" validate:"omitempty,url"`
}

type ListUsersRequest struct {
	Search string `form:"search" validate:"max=100"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoURL"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}
