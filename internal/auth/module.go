// Package auth provides the authentication bounded context module.
// This file defines the module that encapsulates all auth setup and route registration.
package auth

import (
	"travel_booking_backend/internal/auth/handler"
	"travel_booking_backend/internal/auth/repository"
	"travel_booking_backend/internal/auth/service"
	"travel_booking_backend/internal/auth/token"
	"travel_booking_backend/internal/events"
	apphttp "travel_booking_backend/internal/http"
	"travel_booking_backend/platform/config"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg config.JWTConfig, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	tokens := token.NewManager(cfg.GetJWTSecret(), cfg.GetJWTExpiresIn())
	svc := service.New(repo, tokens, eventBus, log.Component("auth"))

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the auth service. It doubles as the bearer-token
// authenticator for protected routes.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public auth routes with stricter rate limiting
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)

	ctx.Protected.GET("/auth/me", m.handler.Me)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
