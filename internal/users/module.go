// Package users provides the user management bounded context module.
package users

import (
	"travel_booking_backend/internal/access"
	apphttp "travel_booking_backend/internal/http"
	"travel_booking_backend/internal/users/handler"
	"travel_booking_backend/internal/users/repository"
	"travel_booking_backend/internal/users/service"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/phone"
	"travel_booking_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the users bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the users module.
func NewModule(pool *pgxpool.Pool, phones *phone.Normalizer, val *validator.Validator, log *logger.Logger) (*Module, error) {
	if err := val.RegisterOneOf("userrole", access.Roles...); err != nil {
		return nil, err
	}

	repo := repository.New(pool)
	svc := service.New(repo, phones, log.Component("users"))

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "users"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts user routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/users", m.handler.List)
	ctx.Admin.POST("/users", m.handler.Create)

	ctx.Protected.GET("/users/:id", m.handler.Get)
	ctx.Protected.PATCH("/users/:id", m.handler.Update)
	ctx.Protected.DELETE("/users/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
