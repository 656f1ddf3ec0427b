// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"travel_booking_backend/platform/config"
	"travel_booking_backend/platform/httpkit"
	"travel_booking_backend/platform/logger"
)

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the HTTP settings (CORS, listen address).
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is pinged by the readiness endpoint. Every checker must pass.
	Health []HealthChecker
	// Authenticator resolves bearer tokens for protected routes.
	Authenticator httpkit.Authenticator
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
