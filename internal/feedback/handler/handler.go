package handler

import (
	"net/http"

	"carecamp_backend/internal/feedback/service"
	"carecamp_backend/internal/feedback/transport"
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

// Submit stores the caller's feedback for a camp. The body's
// participantEmail must equal the authenticated email.
func (h *Handler) Submit(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	fb, err := h.svc.Submit(c.Request.Context(), id.Email(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, fb)
}

// List returns all feedback. Public.
func (h *Handler) List(c *gin.Context) {
	feedbacks, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, feedbacks)
}
