package service

import (
	"context"

	"travel_booking_backend/internal/adapters/storage"
	"travel_booking_backend/internal/destinations/ports"
	"travel_booking_backend/internal/destinations/repository"
	"travel_booking_backend/internal/destinations/transport"
	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/pagination"
	"travel_booking_backend/platform/sanitize"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	msgFetchFailed  = "Failed to fetch destinations"
	msgUploadFailed = "Failed to upload destination image"
	msgCreateFailed = "Failed to create destination"
	msgUpdateFailed = "Failed to update destination"
	msgDeleteFailed = "Failed to delete destination"
)

// Service provides business logic for destinations.
type Service struct {
	repo         repository.Repository
	assets       storage.AssetHost
	stats        ports.PackageStatsReader
	maxImageSize int64
	log          *logger.Logger
}

// New creates a new destinations service.
func New(repo repository.Repository, assets storage.AssetHost, maxImageSize int64, log *logger.Logger) *Service {
	return &Service{repo: repo, assets: assets, maxImageSize: maxImageSize, log: log}
}

// SetPackageStatsReader injects the package stats source. The packages
// module is built after this one, so it cannot be a constructor argument.
func (s *Service) SetPackageStatsReader(stats ports.PackageStatsReader) {
	s.stats = stats
}

// List returns a page of destinations with package stats.
func (s *Service) List(ctx context.Context, req transport.ListDestinationsRequest) (transport.DestinationListResponse, error) {
	page := pagination.New(req.Page, req.Limit)
	params := repository.ListParams{
		Name:   sanitize.Text(req.Name),
		Offset: page.Offset(),
		Limit:  page.Limit,
	}

	var (
		items []repository.Destination
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.List(gctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.DestinationListResponse{}, s.fail(ctx, "list", err, msgFetchFailed)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, d := range items {
		ids = append(ids, d.ID)
	}
	stats, err := s.loadStats(ctx, ids)
	if err != nil {
		return transport.DestinationListResponse{}, s.fail(ctx, "list", err, msgFetchFailed)
	}

	out := make([]transport.DestinationListItem, 0, len(items))
	for _, d := range items {
		st := stats[d.ID]
		out = append(out, transport.DestinationListItem{
			ID:            d.ID,
			Name:          d.Name,
			Image:         imageOf(d),
			PackagesCount: st.Count,
			MinPrice:      st.MinPrice,
		})
	}
	return transport.DestinationListResponse{Items: out, Meta: page.Meta(total)}, nil
}

// GetByID returns a destination with package stats.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.DestinationResponse, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.DestinationResponse{}, s.fail(ctx, "get", err, msgFetchFailed)
	}
	stats, err := s.loadStats(ctx, []uuid.UUID{d.ID})
	if err != nil {
		return transport.DestinationResponse{}, s.fail(ctx, "get", err, msgFetchFailed)
	}
	return toResponse(d, stats[d.ID]), nil
}

// EnsureExists returns NotFound unless a live destination has the given id.
func (s *Service) EnsureExists(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.GetByID(ctx, id)
	return err
}

// Create uploads the image and stores a destination.
func (s *Service) Create(ctx context.Context, req transport.CreateDestinationRequest, image *storage.Upload) (transport.DestinationResponse, error) {
	if image == nil {
		return transport.DestinationResponse{}, apperr.BadRequest(storage.MsgImageRequired)
	}
	if err := storage.ValidateImage(*image, s.maxImageSize); err != nil {
		return transport.DestinationResponse{}, err
	}

	asset, err := s.assets.Upload(ctx, storage.FolderDestinations, *image)
	if err != nil {
		return transport.DestinationResponse{}, s.fail(ctx, "upload", err, msgUploadFailed)
	}

	d, err := s.repo.Create(ctx, repository.CreateParams{
		Name:          sanitize.Text(req.Name),
		Description:   sanitize.Text(req.Description),
		ImageURL:      asset.URL,
		ImagePublicID: asset.PublicID,
	})
	if err != nil {
		s.discardAsset(ctx, asset.PublicID)
		return transport.DestinationResponse{}, s.fail(ctx, "create", err, msgCreateFailed)
	}

	s.log.Info("destination created", "id", d.ID, "name", d.Name)
	return toResponse(d, ports.PackageStats{}), nil
}

// Update edits a destination. A new image replaces the old one: the old
// asset is removed first (best effort), then the new one uploaded.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateDestinationRequest, image *storage.Upload) (transport.DestinationResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.DestinationResponse{}, s.fail(ctx, "update", err, msgUpdateFailed)
	}

	params := repository.UpdateParams{
		ID:          id,
		Name:        sanitize.TextPtr(req.Name),
		Description: sanitize.TextPtr(req.Description),
	}

	if image != nil {
		if err := storage.ValidateImage(*image, s.maxImageSize); err != nil {
			return transport.DestinationResponse{}, err
		}
		s.discardAsset(ctx, existing.ImagePublicID)

		asset, err := s.assets.Upload(ctx, storage.FolderDestinations, *image)
		if err != nil {
			return transport.DestinationResponse{}, s.fail(ctx, "upload", err, msgUploadFailed)
		}
		params.ImageURL = &asset.URL
		params.ImagePublicID = &asset.PublicID
	}

	d, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.DestinationResponse{}, s.fail(ctx, "update", err, msgUpdateFailed)
	}

	stats, err := s.loadStats(ctx, []uuid.UUID{d.ID})
	if err != nil {
		return transport.DestinationResponse{}, s.fail(ctx, "update", err, msgUpdateFailed)
	}

	s.log.Info("destination updated", "id", d.ID)
	return toResponse(d, stats[d.ID]), nil
}

// Delete removes the image (best effort) and soft-deletes the destination.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.fail(ctx, "delete", err, msgDeleteFailed)
	}

	s.discardAsset(ctx, existing.ImagePublicID)

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, msgDeleteFailed)
	}

	s.log.Info("destination deleted", "id", id)
	return nil
}

func (s *Service) loadStats(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ports.PackageStats, error) {
	if s.stats == nil || len(ids) == 0 {
		return map[uuid.UUID]ports.PackageStats{}, nil
	}
	return s.stats.StatsByDestinationIDs(ctx, ids)
}

// discardAsset deletes an image and only logs failures.
func (s *Service) discardAsset(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.assets.Delete(ctx, publicID); err != nil {
		s.log.WithContext(ctx).Warn("destination image delete failed", "publicId", publicID, "error", err)
	}
}

func (s *Service) fail(ctx context.Context, op string, err error, message string) error {
	if _, ok := apperr.As(err); !ok {
		s.log.WithContext(ctx).Error("destinations operation failed", "op", op, "error", err)
	}
	return apperr.Normalize(err, apperr.KindInternal, message)
}

func imageOf(d repository.Destination) storage.Asset {
	return storage.Asset{URL: d.ImageURL, PublicID: d.ImagePublicID}
}

func toResponse(d repository.Destination, st ports.PackageStats) transport.DestinationResponse {
	return transport.DestinationResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Image:         imageOf(d),
		PackagesCount: st.Count,
		MinPrice:      st.MinPrice,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
