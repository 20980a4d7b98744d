package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carecamp_backend/internal/auth"
	"carecamp_backend/internal/camps"
	"carecamp_backend/internal/config"
	"carecamp_backend/internal/feedback"
	apphttp "carecamp_backend/internal/http"
	"carecamp_backend/internal/http/router"
	"carecamp_backend/internal/payments"
	"carecamp_backend/internal/registrations"
	"carecamp_backend/internal/store"
	"carecamp_backend/internal/users"
	"carecamp_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var st *store.Store
	if err := withRetry(ctx, log, "document store connection", 5, 2*time.Second, func() error {
		s, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		st = s
		return nil
	}); err != nil {
		log.Error("failed to connect to document store", "error", err)
		panic("failed to connect to document store: " + err.Error())
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = st.Close(closeCtx)
	}()
	log.Info("document store connection established", "database", cfg.MongoDatabase)

	if err := withRetry(ctx, log, "index creation", 5, 2*time.Second, func() error {
		return st.EnsureIndexes(ctx)
	}); err != nil {
		log.Error("failed to ensure indexes", "error", err)
		panic("failed to ensure indexes: " + err.Error())
	}
	log.Info("indexes ensured")

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	authModule := auth.NewModule(cfg, log)
	usersModule := users.NewModule(st, log)
	campsModule := camps.NewModule(st, log)
	registrationsModule := registrations.NewModule(st, campsModule.Repository(), usersModule.Service(), log)
	paymentsModule := payments.NewModule(st, registrationsModule.Repository(), cfg, log)
	feedbackModule := feedback.NewModule(st, campsModule.Repository(), log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:          cfg,
		Logger:          log,
		Health:          st,
		AuthMiddleware:  auth.Required(authModule.Codec(), cfg.CookieName),
		AdminMiddleware: auth.RequireAdmin(usersModule.Service()),
		Modules: []apphttp.Module{
			authModule,
			usersModule,
			campsModule,
			registrationsModule,
			paymentsModule,
			feedbackModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
