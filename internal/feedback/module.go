// Package feedback provides the camp-feedback bounded context module.
package feedback

import (
	campsrepo "carecamp_backend/internal/camps/repository"
	"carecamp_backend/internal/feedback/handler"
	"carecamp_backend/internal/feedback/repository"
	"carecamp_backend/internal/feedback/service"
	apphttp "carecamp_backend/internal/http"
	"carecamp_backend/internal/store"
	"carecamp_backend/platform/logger"
)

// Module is the feedback bounded context module implementing
// http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the feedback module. The camps
// repository verifies the reviewed camp exists and supplies its name.
func NewModule(st *store.Store, camps campsrepo.Repository, log *logger.Logger) *Module {
	repo := repository.New(st)
	svc := service.New(repo, camps, log)
	h := handler.New(svc)

	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "feedback"
}

// RegisterRoutes mounts feedback routes on the router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/feedbacks", m.handler.List)
	ctx.Protected.POST("/feedbacks", m.handler.Submit)
}

var _ apphttp.Module = (*Module)(nil)
