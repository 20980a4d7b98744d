// Package users provides the user-account bounded context module.
package users

import (
	"carecamp_backend/internal/auth"
	apphttp "carecamp_backend/internal/http"
	"carecamp_backend/internal/store"
	"carecamp_backend/internal/users/handler"
	"carecamp_backend/internal/users/repository"
	"carecamp_backend/internal/users/service"
	"carecamp_backend/platform/logger"
)

// Module is the users bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the users module.
func NewModule(st *store.Store, log *logger.Logger) *Module {
	repo := repository.New(st)
	svc := service.New(repo, log)
	h := handler.New(svc)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "users"
}

// Service returns the users service; the auth gate uses it for role
// lookups.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts user routes on the router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Self-registration happens before a token exists.
	ctx.V1.POST("/users", m.handler.Create)

	ctx.Protected.GET("/users/admin/:email", auth.RequireSelf("email"), m.handler.AdminCheck)
	ctx.Protected.PATCH("/users/:email", auth.RequireSelf("email"), m.handler.UpdateProfile)

	ctx.Admin.GET("/users", m.handler.List)
	ctx.Admin.DELETE("/users/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
