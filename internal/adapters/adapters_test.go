package adapters

import (
	"context"
	"errors"
	"testing"

	destrepo "travel_booking_backend/internal/destinations/repository"
	destservice "travel_booking_backend/internal/destinations/service"
	pkgrepo "travel_booking_backend/internal/packages/repository"
	pkgservice "travel_booking_backend/internal/packages/service"
	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/logger"

	"github.com/google/uuid"
)

type stubPackageRepo struct {
	pkgrepo.Repository
	packages map[uuid.UUID]pkgrepo.Package
	stats    map[uuid.UUID]pkgrepo.Stats
	statsErr error
}

func (r *stubPackageRepo) GetByID(_ context.Context, id uuid.UUID) (pkgrepo.Package, error) {
	p, ok := r.packages[id]
	if !ok {
		return pkgrepo.Package{}, apperr.NotFound("Package not found")
	}
	return p, nil
}

func (r *stubPackageRepo) StatsByDestinationIDs(context.Context, []uuid.UUID) (map[uuid.UUID]pkgrepo.Stats, error) {
	return r.stats, r.statsErr
}

type stubDestinationRepo struct {
	destrepo.Repository
	known map[uuid.UUID]bool
}

func (r *stubDestinationRepo) GetByID(_ context.Context, id uuid.UUID) (destrepo.Destination, error) {
	if !r.known[id] {
		return destrepo.Destination{}, apperr.NotFound("Destination not found")
	}
	return destrepo.Destination{ID: id}, nil
}

func newPackageService(repo *stubPackageRepo) *pkgservice.Service {
	return pkgservice.New(repo, nil, nil, 1024, logger.Nop())
}

func TestBookingPackageReaderMapsSummary(t *testing.T) {
	id := uuid.New()
	repo := &stubPackageRepo{packages: map[uuid.UUID]pkgrepo.Package{
		id: {ID: id, Name: "Kyoto Heritage Week", Price: 2450},
	}}
	reader := NewBookingPackageReader(newPackageService(repo))

	summary, err := reader.GetPackage(context.Background(), id)
	if err != nil {
		t.Fatalf("get package: %v", err)
	}
	if summary.ID != id || summary.Name != "Kyoto Heritage Week" || summary.Price != 2450 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestBookingPackageReaderPassesNotFoundThrough(t *testing.T) {
	reader := NewBookingPackageReader(newPackageService(&stubPackageRepo{}))

	_, err := reader.GetPackage(context.Background(), uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPackageStatsReaderConvertsStats(t *testing.T) {
	withPackages, empty := uuid.New(), uuid.New()
	repo := &stubPackageRepo{stats: map[uuid.UUID]pkgrepo.Stats{
		withPackages: {Count: 3, MinPrice: 890},
	}}
	reader := NewPackageStatsReader(newPackageService(repo))

	stats, err := reader.StatsByDestinationIDs(context.Background(), []uuid.UUID{withPackages, empty})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if got := stats[withPackages]; got.Count != 3 || got.MinPrice != 890 {
		t.Fatalf("unexpected stats %+v", got)
	}
	if _, ok := stats[empty]; ok {
		t.Fatal("expected destinations without packages to be absent")
	}
}

func TestPackageStatsReaderWrapsErrors(t *testing.T) {
	boom := errors.New("db down")
	reader := NewPackageStatsReader(newPackageService(&stubPackageRepo{statsErr: boom}))

	if _, err := reader.StatsByDestinationIDs(context.Background(), nil); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestDestinationChecker(t *testing.T) {
	known := uuid.New()
	svc := destservice.New(&stubDestinationRepo{known: map[uuid.UUID]bool{known: true}}, nil, 1024, logger.Nop())
	checker := NewDestinationChecker(svc)

	if err := checker.EnsureExists(context.Background(), known); err != nil {
		t.Fatalf("expected known destination, got %v", err)
	}
	if err := checker.EnsureExists(context.Background(), uuid.New()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
