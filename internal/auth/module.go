package auth

import (
	"carecamp_backend/internal/auth/handler"
	"carecamp_backend/internal/auth/token"
	"carecamp_backend/internal/config"
	apphttp "carecamp_backend/internal/http"
	"carecamp_backend/platform/logger"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	codec   *token.Codec
}

// NewModule creates the auth module with its token codec.
func NewModule(cfg *config.Config, log *logger.Logger) *Module {
	codec := token.New(cfg.JWTSecret, cfg.TokenTTL)
	h := handler.New(codec, cfg, log)

	return &Module{handler: h, codec: codec}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Codec returns the token codec for the auth gate middleware.
func (m *Module) Codec() *token.Codec {
	return m.codec
}

// RegisterRoutes mounts session routes with the stricter rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)
}

var _ apphttp.Module = (*Module)(nil)
