// Package bookings provides the booking orchestration module.
package bookings

import (
	"travel_booking_backend/internal/bookings/handler"
	"travel_booking_backend/internal/bookings/ports"
	"travel_booking_backend/internal/bookings/repository"
	"travel_booking_backend/internal/bookings/service"
	"travel_booking_backend/internal/events"
	apphttp "travel_booking_backend/internal/http"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/phone"
	"travel_booking_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the bookings bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the bookings module.
func NewModule(pool *pgxpool.Pool, packages ports.PackageReader, phones *phone.Normalizer, eventBus events.Bus, val *validator.Validator, log *logger.Logger) (*Module, error) {
	if err := val.RegisterOneOf("bookingstatus", repository.Statuses...); err != nil {
		return nil, err
	}

	repo := repository.New(pool)
	svc := service.New(repo, packages, phones, eventBus, log.Component("bookings"))

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "bookings"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts booking routes. Every route needs a token.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/bookings", m.handler.List)
	ctx.Protected.POST("/bookings", m.handler.Create)
	ctx.Protected.GET("/bookings/:id", m.handler.Get)
	ctx.Protected.PATCH("/bookings/:id", m.handler.Update)

	ctx.Admin.DELETE("/bookings/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
