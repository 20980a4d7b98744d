package handler

import (
	"net/http"

	"carecamp_backend/internal/payments/service"
	"carecamp_backend/internal/payments/transport"
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

// CreateIntent opens a payment intent for one of the caller's
// registrations and returns the client secret.
func (h *Handler) CreateIntent(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	intent, err := h.svc.CreateIntent(c.Request.Context(), id.Email(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, intent)
}

// Record stores a completed payment for the caller's registration and
// marks it Paid.
func (h *Handler) Record(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	payment, err := h.svc.Record(c.Request.Context(), id.Email(), c.Param("id"), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, payment)
}

// History returns the caller's payments. Self-gated by route middleware.
func (h *Handler) History(c *gin.Context) {
	payments, err := h.svc.History(c.Request.Context(), c.Param("email"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, payments)
}
