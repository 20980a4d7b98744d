// Package http provides HTTP server infrastructure including the Module
// interface that all domain modules implement for route registration.
package http

import (
	"context"

	"carecamp_backend/internal/config"
	"carecamp_backend/platform/httpkit"
	"carecamp_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router
	// context.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route
// registration, so modules do not take many router parameters.
type RouterContext struct {
	// Engine is the root Gin engine for modules needing engine-level access.
	Engine *gin.Engine
	// V1 is the public /api/v1 route group.
	V1 *gin.RouterGroup
	// Protected is the authenticated route group under /api/v1.
	Protected *gin.RouterGroup
	// Admin is the admin-only route group under /api/v1/admin.
	Admin *gin.RouterGroup
	// AuthRateLimiter is the stricter rate limiter for token issuance.
	AuthRateLimiter *httpkit.AuthRateLimiter
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies. Populated by
// the composition root (cmd/api) and passed to the router.
type App struct {
	Config *config.Config
	Logger *logger.Logger
	// Health is used for readiness checks (store ping).
	Health HealthChecker
	// AuthMiddleware is the authentication gate applied to protected routes.
	AuthMiddleware gin.HandlerFunc
	// AdminMiddleware is the admin-role gate applied under /admin.
	AdminMiddleware gin.HandlerFunc
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
