package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travel_booking_backend/internal/adapters/storage"
	"travel_booking_backend/internal/packages/repository"
	"travel_booking_backend/internal/packages/transport"
	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	rows    map[uuid.UUID]repository.Package
	created []repository.CreateParams
	updates []repository.UpdateParams
	deleted []uuid.UUID
}

func newFakeRepo(rows ...repository.Package) *fakeRepo {
	r := &fakeRepo{rows: make(map[uuid.UUID]repository.Package)}
	for _, p := range rows {
		r.rows[p.ID] = p
	}
	return r
}

func (r *fakeRepo) ListByDestination(_ context.Context, params repository.ListParams) ([]repository.Package, error) {
	out := make([]repository.Package, 0)
	for _, p := range r.rows {
		if p.DestinationID == params.DestinationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountByDestination(_ context.Context, destinationID uuid.UUID) (int, error) {
	n := 0
	for _, p := range r.rows {
		if p.DestinationID == destinationID {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Package, error) {
	p, ok := r.rows[id]
	if !ok {
		return repository.Package{}, apperr.NotFound("Package not found")
	}
	return p, nil
}

func (r *fakeRepo) StatsByDestinationIDs(context.Context, []uuid.UUID) (map[uuid.UUID]repository.Stats, error) {
	return map[uuid.UUID]repository.Stats{}, nil
}

func (r *fakeRepo) Create(_ context.Context, params repository.CreateParams) (repository.Package, error) {
	r.created = append(r.created, params)
	p := repository.Package{
		ID:            uuid.New(),
		DestinationID: params.DestinationID,
		Name:          params.Name,
		Description:   params.Description,
		Duration:      params.Duration,
		Included:      params.Included,
		ImageURL:      params.ImageURL,
		ImagePublicID: params.ImagePublicID,
		GroupSize:     params.GroupSize,
		Price:         params.Price,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	r.rows[p.ID] = p
	return p, nil
}

func (r *fakeRepo) Update(_ context.Context, params repository.UpdateParams) (repository.Package, error) {
	r.updates = append(r.updates, params)
	p, ok := r.rows[params.ID]
	if !ok {
		return repository.Package{}, apperr.NotFound("Package not found")
	}
	if params.DestinationID != nil {
		p.DestinationID = *params.DestinationID
	}
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Price != nil {
		p.Price = *params.Price
	}
	if params.Included != nil {
		p.Included = params.Included
	}
	if params.ImagePublicID != nil {
		p.ImagePublicID = *params.ImagePublicID
	}
	r.rows[p.ID] = p
	return p, nil
}

func (r *fakeRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return apperr.NotFound("Package not found")
	}
	delete(r.rows, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeDestinations map[uuid.UUID]bool

func (f fakeDestinations) EnsureExists(_ context.Context, id uuid.UUID) error {
	if !f[id] {
		return apperr.NotFound("Destination not found")
	}
	return nil
}

type fakeAssets struct {
	uploads   []string
	deletes   []string
	deleteErr error
}

func (a *fakeAssets) Upload(_ context.Context, folder string, file storage.Upload) (storage.Asset, error) {
	id := folder + "/" + file.FileName
	a.uploads = append(a.uploads, id)
	return storage.Asset{URL: "https://cdn.test/" + id, PublicID: id}, nil
}

func (a *fakeAssets) Delete(_ context.Context, publicID string) error {
	a.deletes = append(a.deletes, publicID)
	return a.deleteErr
}

func png(name string) *storage.Upload {
	return &storage.Upload{FileName: name, ContentType: "image/png", Size: 2048, Reader: strings.NewReader("x")}
}

func price(v float64) *float64 { return &v }

func validCreate(destinationID uuid.UUID) transport.CreatePackageRequest {
	return transport.CreatePackageRequest{
		DestinationID: destinationID.String(),
		Name:          "City Break",
		Description:   "Three days downtown",
		Duration:      3,
		Included:      `["Hotel","Breakfast"]`,
		GroupSize:     8,
		Price:         price(799),
	}
}

func TestCreateMissingDestination(t *testing.T) {
	assets := &fakeAssets{}
	repo := newFakeRepo()
	svc := New(repo, assets, fakeDestinations{}, 0, logger.Nop())

	_, err := svc.Create(context.Background(), validCreate(uuid.New()), png("a.png"))
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.KindNotFound || appErr.Message != "Destination not found" {
		t.Fatalf("expected destination not found, got %v", err)
	}
	if len(assets.uploads) != 0 || len(repo.created) != 0 {
		t.Fatal("nothing may be written for a missing destination")
	}
}

func TestCreateRequiresImage(t *testing.T) {
	dest := uuid.New()
	svc := New(newFakeRepo(), &fakeAssets{}, fakeDestinations{dest: true}, 0, logger.Nop())

	_, err := svc.Create(context.Background(), validCreate(dest), nil)
	if appErr, ok := apperr.As(err); !ok || appErr.Message != storage.MsgImageRequired {
		t.Fatalf("expected image required, got %v", err)
	}
}

func TestCreateParsesIncluded(t *testing.T) {
	dest := uuid.New()
	repo := newFakeRepo()
	svc := New(repo, &fakeAssets{}, fakeDestinations{dest: true}, 0, logger.Nop())

	got, err := svc.Create(context.Background(), validCreate(dest), png("city.png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Included) != 2 || got.Included[1] != "Breakfast" {
		t.Fatalf("unexpected included %v", got.Included)
	}
	if got.Image.PublicID != "packages/city.png" {
		t.Fatalf("unexpected image %+v", got.Image)
	}
	if got.Price != 799 || got.DestinationID != dest {
		t.Fatalf("unexpected package %+v", got)
	}
}

func TestCreateInvalidDestinationID(t *testing.T) {
	svc := New(newFakeRepo(), &fakeAssets{}, fakeDestinations{}, 0, logger.Nop())

	req := validCreate(uuid.New())
	req.DestinationID = "nope"
	if _, err := svc.Create(context.Background(), req, png("a.png")); !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestListByDestinationUnknown(t *testing.T) {
	svc := New(newFakeRepo(), &fakeAssets{}, fakeDestinations{}, 0, logger.Nop())

	_, err := svc.ListByDestination(context.Background(), transport.ListPackagesRequest{DestinationID: uuid.NewString()})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListByDestination(t *testing.T) {
	dest := uuid.New()
	repo := newFakeRepo(
		repository.Package{ID: uuid.New(), DestinationID: dest, Name: "A", Price: 100},
		repository.Package{ID: uuid.New(), DestinationID: dest, Name: "B", Price: 200},
		repository.Package{ID: uuid.New(), DestinationID: uuid.New(), Name: "C", Price: 300},
	)
	svc := New(repo, &fakeAssets{}, fakeDestinations{dest: true}, 0, logger.Nop())

	got, err := svc.ListByDestination(context.Background(), transport.ListPackagesRequest{DestinationID: dest.String(), Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Meta.Total != 2 || got.Meta.TotalPages != 2 || got.Meta.Limit != 1 {
		t.Fatalf("unexpected meta %+v", got.Meta)
	}
}

func TestUpdateRevalidatesChangedDestination(t *testing.T) {
	dest := uuid.New()
	p := repository.Package{ID: uuid.New(), DestinationID: dest, Name: "A", ImagePublicID: "packages/a.png"}
	repo := newFakeRepo(p)
	svc := New(repo, &fakeAssets{}, fakeDestinations{dest: true}, 0, logger.Nop())

	other := uuid.NewString()
	_, err := svc.Update(context.Background(), p.ID, transport.UpdatePackageRequest{DestinationID: &other}, nil)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected destination not found, got %v", err)
	}
	if len(repo.updates) != 0 {
		t.Fatal("update must not run")
	}
}

func TestUpdateReplacesImageAndPrice(t *testing.T) {
	dest := uuid.New()
	p := repository.Package{ID: uuid.New(), DestinationID: dest, Name: "A", Price: 100, ImagePublicID: "packages/a.png"}
	assets := &fakeAssets{}
	svc := New(newFakeRepo(p), assets, fakeDestinations{dest: true}, 0, logger.Nop())

	got, err := svc.Update(context.Background(), p.ID, transport.UpdatePackageRequest{Price: price(150)}, png("b.png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets.deletes) != 1 || assets.deletes[0] != "packages/a.png" {
		t.Fatalf("old image should be removed, got %v", assets.deletes)
	}
	if got.Price != 150 || got.Image.PublicID != "packages/b.png" {
		t.Fatalf("unexpected package %+v", got)
	}
}

func TestDeleteSucceedsWhenAssetDeleteFails(t *testing.T) {
	p := repository.Package{ID: uuid.New(), DestinationID: uuid.New(), ImagePublicID: "packages/a.png"}
	repo := newFakeRepo(p)
	svc := New(repo, &fakeAssets{deleteErr: errors.New("host down")}, fakeDestinations{}, 0, logger.Nop())

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatal("package should be soft deleted")
	}
	if _, err := svc.GetByID(context.Background(), p.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatal("deleted package must not be found")
	}
}
