package handler

import (
	"net/http"

	"carecamp_backend/internal/camps/service"
	"carecamp_backend/internal/camps/transport"
	"carecamp_backend/internal/shared/validator"
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

// List returns camps with optional search, sort, and limit. Public.
func (h *Handler) List(c *gin.Context) {
	var req transport.ListCampsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	camps, err := h.svc.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, camps)
}

// Popular returns the most-joined camps. Public.
func (h *Handler) Popular(c *gin.Context) {
	camps, err := h.svc.Popular(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, camps)
}

// Get returns a single camp. Public.
func (h *Handler) Get(c *gin.Context) {
	camp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, camp)
}

// Create stores a new camp listing. Admin only.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	camp, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, camp)
}

// Update patches a camp listing. Admin only.
func (h *Handler) Update(c *gin.Context) {
	var req transport.UpdateCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	camp, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, camp)
}

// Delete removes a camp listing. Admin only.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"message": "camp deleted"})
}
