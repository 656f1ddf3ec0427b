// Package packages provides the travel package catalog module.
package packages

import (
	"travel_booking_backend/internal/adapters/storage"
	apphttp "travel_booking_backend/internal/http"
	"travel_booking_backend/internal/packages/handler"
	"travel_booking_backend/internal/packages/ports"
	"travel_booking_backend/internal/packages/repository"
	"travel_booking_backend/internal/packages/service"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the packages bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the packages module.
func NewModule(pool *pgxpool.Pool, assets storage.AssetHost, destinations ports.DestinationChecker, maxImageSize int64, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, assets, destinations, maxImageSize, log.Component("packages"))

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "packages"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts package routes. Reads are public.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/packages", m.handler.List)
	ctx.V1.GET("/packages/:id", m.handler.Get)

	ctx.Admin.POST("/packages", m.handler.Create)
	ctx.Admin.PATCH("/packages/:id", m.handler.Update)
	ctx.Admin.DELETE("/packages/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
