// Package destinations provides the travel destination catalog module.
package destinations

import (
	"travel_booking_backend/internal/adapters/storage"
	"travel_booking_backend/internal/destinations/handler"
	"travel_booking_backend/internal/destinations/ports"
	"travel_booking_backend/internal/destinations/repository"
	"travel_booking_backend/internal/destinations/service"
	apphttp "travel_booking_backend/internal/http"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the destinations bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the destinations module.
func NewModule(pool *pgxpool.Pool, assets storage.AssetHost, maxImageSize int64, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, assets, maxImageSize, log.Component("destinations"))

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "destinations"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// SetPackageStatsReader wires the package stats source after the packages
// module exists.
func (m *Module) SetPackageStatsReader(stats ports.PackageStatsReader) {
	m.service.SetPackageStatsReader(stats)
}

// RegisterRoutes mounts destination routes. Reads are public.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/destinations", m.handler.List)
	ctx.V1.GET("/destinations/:id", m.handler.Get)

	ctx.Admin.POST("/destinations", m.handler.Create)
	ctx.Admin.PATCH("/destinations/:id", m.handler.Update)
	ctx.Admin.DELETE("/destinations/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
