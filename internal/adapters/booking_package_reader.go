package adapters

import (
	"context"

	"github.com/google/uuid"

	bookingports "travel_booking_backend/internal/bookings/ports"
	pkgservice "travel_booking_backend/internal/packages/service"
)

// BookingPackageReader adapts the packages service for the bookings domain.
type BookingPackageReader struct {
	svc *pkgservice.Service
}

// NewBookingPackageReader creates a new package reader adapter.
func NewBookingPackageReader(svc *pkgservice.Service) *BookingPackageReader {
	return &BookingPackageReader{svc: svc}
}

// GetPackage returns the package summary. Errors from the packages service
// are passed through so NotFound reaches the client unchanged.
func (a *BookingPackageReader) GetPackage(ctx context.Context, packageID uuid.UUID) (bookingports.PackageSummary, error) {
	p, err := a.svc.Find(ctx, packageID)
	if err != nil {
		return bookingports.PackageSummary{}, err
	}
	return bookingports.PackageSummary{ID: p.ID, Name: p.Name, Price: p.Price}, nil
}

var _ bookingports.PackageReader = (*BookingPackageReader)(nil)
