package handler

import (
	"net/http"

	"carecamp_backend/internal/shared/validator"
	"carecamp_backend/internal/users/service"
	"carecamp_backend/internal/users/transport"
	"carecamp_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Create stores a user on first sign-in. Public: it runs before the
// client has a token to present.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	user, created, err := h.svc.Register(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	if !created {
		httpkit.OK(c, user)
		return
	}
	httpkit.Created(c, user)
}

// List returns all users, optionally filtered. Admin only.
func (h *Handler) List(c *gin.Context) {
	var req transport.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	users, err := h.svc.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, users)
}

// UpdateProfile patches the caller's own profile. Self-gated by route
// middleware.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req transport.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), c.Param("email"), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, user)
}

// Delete removes a user by id. Admin only.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"message": "user deleted"})
}

// AdminCheck reports whether the caller is an admin. Self-gated by route
// middleware so users can only ask about themselves.
func (h *Handler) AdminCheck(c *gin.Context) {
	admin, err := h.svc.IsAdmin(c.Request.Context(), c.Param("email"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.AdminCheckResponse{Admin: admin})
}
