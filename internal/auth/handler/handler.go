package handler

import (
	"net/http"
	"time"

	"carecamp_backend/internal/auth/token"
	"carecamp_backend/internal/auth/transport"
	"carecamp_backend/internal/config"
	"carecamp_backend/internal/shared/validator"
	"carecamp_backend/platform/httpkit"
	"carecamp_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	codec *token.Codec
	cfg   *config.Config
	log   *logger.Logger
}

func New(codec *token.Codec, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{codec: codec, cfg: cfg, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jwt", h.IssueToken)
	rg.GET("/logout", h.Logout)
}

// IssueToken signs a token for the given email and writes it into the
// http-only session cookie.
func (h *Handler) IssueToken(c *gin.Context) {
	var req transport.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := validator.Validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	signed, err := h.codec.Issue(req.Email)
	if err != nil {
		h.log.AuthEvent("token_issue", req.Email, false, err.Error())
		httpkit.Error(c, http.StatusInternalServerError, "could not issue token", nil)
		return
	}

	h.setTokenCookie(c, signed)
	h.log.AuthEvent("token_issue", req.Email, true, "")
	httpkit.OK(c, transport.SessionResponse{Success: true})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	h.clearTokenCookie(c)
	httpkit.OK(c, transport.SessionResponse{Success: true})
}

func (h *Handler) setTokenCookie(c *gin.Context, value string) {
	maxAge := int(h.cfg.TokenTTL / time.Second)
	c.SetSameSite(h.cfg.CookieSameSite)
	c.SetCookie(
		h.cfg.CookieName,
		value,
		maxAge,
		h.cfg.CookiePath,
		h.cfg.CookieDomain,
		h.cfg.CookieSecure,
		true,
	)
}

func (h *Handler) clearTokenCookie(c *gin.Context) {
	c.SetSameSite(h.cfg.CookieSameSite)
	c.SetCookie(
		h.cfg.CookieName,
		"",
		-1,
		h.cfg.CookiePath,
		h.cfg.CookieDomain,
		h.cfg.CookieSecure,
		true,
	)
}
