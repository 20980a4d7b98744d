// Package camps provides the camp-listing bounded context module.
package camps

import (
	"carecamp_backend/internal/camps/handler"
	"carecamp_backend/internal/camps/repository"
	"carecamp_backend/internal/camps/service"
	apphttp "carecamp_backend/internal/http"
	"carecamp_backend/internal/store"
	"carecamp_backend/platform/logger"
)

// Module is the camps bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	repo    *repository.Repo
}

// NewModule creates and initializes the camps module.
func NewModule(st *store.Store, log *logger.Logger) *Module {
	repo := repository.New(st)
	svc := service.New(repo, log)
	h := handler.New(svc)

	return &Module{handler: h, repo: repo}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "camps"
}

// Repository exposes the camps repository so the registrations module
// can verify camps and maintain participant counts.
func (m *Module) Repository() *repository.Repo {
	return m.repo
}

// RegisterRoutes mounts camp routes on the router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Reads are public: browsing camps requires no account.
	ctx.V1.GET("/camps", m.handler.List)
	ctx.V1.GET("/camps/popular", m.handler.Popular)
	ctx.V1.GET("/camps/:id", m.handler.Get)

	ctx.Admin.POST("/camps", m.handler.Create)
	ctx.Admin.PATCH("/update-camp/:id", m.handler.Update)
	ctx.Admin.DELETE("/delete-camp/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
