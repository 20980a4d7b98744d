// Package registrations provides the camp-registration bounded context
// module.
package registrations

import (
	"carecamp_backend/internal/auth"
	campsrepo "carecamp_backend/internal/camps/repository"
	apphttp "carecamp_backend/internal/http"
	"carecamp_backend/internal/registrations/handler"
	"carecamp_backend/internal/registrations/repository"
	"carecamp_backend/internal/registrations/service"
	"carecamp_backend/internal/store"
	"carecamp_backend/platform/logger"
)

// Module is the registrations bounded context module implementing
// http.Module.
type Module struct {
	handler *handler.Handler
	repo    *repository.Repo
}

// NewModule creates and initializes the registrations module. The camps
// repository maintains participant counts on successful registration;
// roles lets admins read registrations they do not own.
func NewModule(st *store.Store, camps campsrepo.Repository, roles auth.RoleLookup, log *logger.Logger) *Module {
	repo := repository.New(st)
	svc := service.New(repo, camps, roles, log)
	h := handler.New(svc)

	return &Module{handler: h, repo: repo}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "registrations"
}

// Repository exposes the registrations repository so the payments module
// can verify ownership and flip payment status.
func (m *Module) Repository() *repository.Repo {
	return m.repo
}

// RegisterRoutes mounts registration routes on the router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/registered-camps", m.handler.Create)
	ctx.Protected.GET("/user-registered-camps/:email", auth.RequireSelf("email"), m.handler.ListByEmail)
	ctx.Protected.GET("/user-registered-camp/:id", m.handler.Get)
	ctx.Protected.DELETE("/cancel-registration/:id", m.handler.Cancel)

	ctx.Admin.GET("/registered-camps", m.handler.ListAll)
	ctx.Admin.PATCH("/confirm-registration/:id", m.handler.Confirm)
	ctx.Admin.DELETE("/delete-registration/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
