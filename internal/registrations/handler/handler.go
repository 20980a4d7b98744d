package handler

import (
	"net/http"

	"carecamp_backend/internal/registrations/service"
	"carecamp_backend/internal/registrations/transport"
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

// Create enrolls the caller in a camp. The body's participantEmail must
// equal the authenticated email; the service forbids anything else.
func (h *Handler) Create(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	reg, err := h.svc.Create(c.Request.Context(), id.Email(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, reg)
}

// ListAll returns every registration. Admin only.
func (h *Handler) ListAll(c *gin.Context) {
	var req transport.ListRegistrationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	regs, err := h.svc.ListAll(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, regs)
}

// ListByEmail returns the caller's registrations. Self-gated by route
// middleware.
func (h *Handler) ListByEmail(c *gin.Context) {
	var req transport.ListRegistrationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	regs, err := h.svc.ListByEmail(c.Request.Context(), c.Param("email"), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, regs)
}

// Get returns one of the caller's registrations.
func (h *Handler) Get(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	reg, err := h.svc.Get(c.Request.Context(), id.Email(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, reg)
}

// Cancel removes the caller's own registration.
func (h *Handler) Cancel(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	if err := h.svc.Cancel(c.Request.Context(), id.Email(), c.Param("id")); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"message": "registration cancelled"})
}

// Confirm marks a registration Confirmed. Admin only.
func (h *Handler) Confirm(c *gin.Context) {
	reg, err := h.svc.Confirm(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, reg)
}

// Delete removes any registration. Admin only.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"message": "registration deleted"})
}
