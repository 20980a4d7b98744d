// Package payments provides the camp-fee payment bounded context
// module.
package payments

import (
	"carecamp_backend/internal/auth"
	"carecamp_backend/internal/config"
	apphttp "carecamp_backend/internal/http"
	"carecamp_backend/internal/payments/client"
	"carecamp_backend/internal/payments/handler"
	"carecamp_backend/internal/payments/repository"
	"carecamp_backend/internal/payments/service"
	regsrepo "carecamp_backend/internal/registrations/repository"
	"carecamp_backend/internal/store"
	"carecamp_backend/platform/logger"
)

// Module is the payments bounded context module implementing
// http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the payments module. The
// registrations repository verifies ownership and flips payment status
// after a successful checkout.
func NewModule(st *store.Store, regs regsrepo.Repository, cfg *config.Config, log *logger.Logger) *Module {
	repo := repository.New(st)
	intents := client.New(cfg.StripeSecretKey)
	svc := service.New(repo, regs, intents, cfg.PaymentCurrency, log)
	h := handler.New(svc)

	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "payments"
}

// RegisterRoutes mounts payment routes on the router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/create-payment-intent", m.handler.CreateIntent)
	ctx.Protected.POST("/payment/:id", m.handler.Record)
	ctx.Protected.GET("/payment-history/:email", auth.RequireSelf("email"), m.handler.History)
}

var _ apphttp.Module = (*Module)(nil)
