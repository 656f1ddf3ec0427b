package service

import (
	"context"

	"travel_booking_backend/internal/adapters/storage"
	"travel_booking_backend/internal/packages/ports"
	"travel_booking_backend/internal/packages/repository"
	"travel_booking_backend/internal/packages/transport"
	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/pagination"
	"travel_booking_backend/platform/sanitize"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	MsgInvalidDestinationID = "Invalid destinationId"

	msgFetchFailed  = "Failed to fetch packages"
	msgUploadFailed = "Failed to upload package image"
	msgCreateFailed = "Failed to create package"
	msgUpdateFailed = "Failed to update package"
	msgDeleteFailed = "Failed to delete package"
)

// Service provides business logic for travel packages.
type Service struct {
	repo         repository.Repository
	assets       storage.AssetHost
	destinations ports.DestinationChecker
	maxImageSize int64
	log          *logger.Logger
}

// New creates a new packages service.
func New(repo repository.Repository, assets storage.AssetHost, destinations ports.DestinationChecker, maxImageSize int64, log *logger.Logger) *Service {
	return &Service{
		repo:         repo,
		assets:       assets,
		destinations: destinations,
		maxImageSize: maxImageSize,
		log:          log,
	}
}

// ListByDestination returns a page of the packages offered at a destination.
func (s *Service) ListByDestination(ctx context.Context, req transport.ListPackagesRequest) (transport.PackageListResponse, error) {
	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return transport.PackageListResponse{}, apperr.BadRequest(MsgInvalidDestinationID)
	}
	if err := s.destinations.EnsureExists(ctx, destinationID); err != nil {
		return transport.PackageListResponse{}, s.fail(ctx, "list", err, apperr.KindInternal, msgFetchFailed)
	}

	page := pagination.New(req.Page, req.Limit)
	var (
		items []repository.Package
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.ListByDestination(gctx, repository.ListParams{
			DestinationID: destinationID,
			Offset:        page.Offset(),
			Limit:         page.Limit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountByDestination(gctx, destinationID)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.PackageListResponse{}, s.fail(ctx, "list", err, apperr.KindInternal, msgFetchFailed)
	}

	out := make([]transport.PackageListItem, 0, len(items))
	for _, p := range items {
		out = append(out, transport.PackageListItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Duration:    p.Duration,
			GroupSize:   p.GroupSize,
			Price:       p.Price,
		})
	}
	return transport.PackageListResponse{Items: out, Meta: page.Meta(total)}, nil
}

// GetByID returns package details.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.PackageResponse, error) {
	p, err := s.Find(ctx, id)
	if err != nil {
		return transport.PackageResponse{}, err
	}
	return toResponse(p), nil
}

// Find returns the stored package. Used by other modules through adapters.
func (s *Service) Find(ctx context.Context, id uuid.UUID) (repository.Package, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return repository.Package{}, s.fail(ctx, "get", err, apperr.KindInternal, msgFetchFailed)
	}
	return p, nil
}

// StatsByDestinationIDs returns package count and minimum price per destination.
func (s *Service) StatsByDestinationIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]repository.Stats, error) {
	return s.repo.StatsByDestinationIDs(ctx, ids)
}

// Create stores a package after checking its destination and uploading the image.
func (s *Service) Create(ctx context.Context, req transport.CreatePackageRequest, image *storage.Upload) (transport.PackageResponse, error) {
	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return transport.PackageResponse{}, apperr.BadRequest(MsgInvalidDestinationID)
	}
	if err := s.destinations.EnsureExists(ctx, destinationID); err != nil {
		return transport.PackageResponse{}, s.fail(ctx, "create", err, apperr.KindBadRequest, msgCreateFailed)
	}

	if image == nil {
		return transport.PackageResponse{}, apperr.BadRequest(storage.MsgImageRequired)
	}
	if err := storage.ValidateImage(*image, s.maxImageSize); err != nil {
		return transport.PackageResponse{}, err
	}

	asset, err := s.assets.Upload(ctx, storage.FolderPackages, *image)
	if err != nil {
		return transport.PackageResponse{}, s.fail(ctx, "upload", err, apperr.KindInternal, msgUploadFailed)
	}

	var price float64
	if req.Price != nil {
		price = *req.Price
	}

	p, err := s.repo.Create(ctx, repository.CreateParams{
		DestinationID: destinationID,
		Name:          sanitize.Text(req.Name),
		Description:   sanitize.Text(req.Description),
		Duration:      req.Duration,
		Included:      ParseIncluded(req.Included),
		ImageURL:      asset.URL,
		ImagePublicID: asset.PublicID,
		GroupSize:     req.GroupSize,
		Price:         price,
	})
	if err != nil {
		s.discardAsset(ctx, asset.PublicID)
		return transport.PackageResponse{}, s.fail(ctx, "create", err, apperr.KindBadRequest, msgCreateFailed)
	}

	s.log.Info("package created", "id", p.ID, "destinationId", p.DestinationID)
	return toResponse(p), nil
}

// Update edits a package. A changed destination is re-validated and a new
// image replaces the old one.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdatePackageRequest, image *storage.Upload) (transport.PackageResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.PackageResponse{}, s.fail(ctx, "update", err, apperr.KindInternal, msgUpdateFailed)
	}

	params := repository.UpdateParams{
		ID:          id,
		Name:        sanitize.TextPtr(req.Name),
		Description: sanitize.TextPtr(req.Description),
		Duration:    req.Duration,
		GroupSize:   req.GroupSize,
		Price:       req.Price,
	}
	if req.Included != nil {
		params.Included = ParseIncluded(*req.Included)
	}

	if req.DestinationID != nil {
		destinationID, err := uuid.Parse(*req.DestinationID)
		if err != nil {
			return transport.PackageResponse{}, apperr.BadRequest(MsgInvalidDestinationID)
		}
		if destinationID != existing.DestinationID {
			if err := s.destinations.EnsureExists(ctx, destinationID); err != nil {
				return transport.PackageResponse{}, s.fail(ctx, "update", err, apperr.KindInternal, msgUpdateFailed)
			}
		}
		params.DestinationID = &destinationID
	}

	if image != nil {
		if err := storage.ValidateImage(*image, s.maxImageSize); err != nil {
			return transport.PackageResponse{}, err
		}
		s.discardAsset(ctx, existing.ImagePublicID)

		asset, err := s.assets.Upload(ctx, storage.FolderPackages, *image)
		if err != nil {
			return transport.PackageResponse{}, s.fail(ctx, "upload", err, apperr.KindInternal, msgUploadFailed)
		}
		params.ImageURL = &asset.URL
		params.ImagePublicID = &asset.PublicID
	}

	p, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.PackageResponse{}, s.fail(ctx, "update", err, apperr.KindInternal, msgUpdateFailed)
	}

	s.log.Info("package updated", "id", p.ID)
	return toResponse(p), nil
}

// Delete removes the image (best effort) and soft-deletes the package.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.fail(ctx, "delete", err, apperr.KindInternal, msgDeleteFailed)
	}

	s.discardAsset(ctx, existing.ImagePublicID)

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, apperr.KindInternal, msgDeleteFailed)
	}

	s.log.Info("package deleted", "id", id)
	return nil
}

func (s *Service) discardAsset(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.assets.Delete(ctx, publicID); err != nil {
		s.log.WithContext(ctx).Warn("package image delete failed", "publicId", publicID, "error", err)
	}
}

func (s *Service) fail(ctx context.Context, op string, err error, kind apperr.Kind, message string) error {
	if _, ok := apperr.As(err); !ok {
		s.log.WithContext(ctx).Error("packages operation failed", "op", op, "error", err)
	}
	return apperr.Normalize(err, kind, message)
}

func toResponse(p repository.Package) transport.PackageResponse {
	return transport.PackageResponse{
		ID:            p.ID,
		DestinationID: p.DestinationID,
		Name:          p.Name,
		Description:   p.Description,
		Duration:      p.Duration,
		Included:      p.Included,
		Image:         storage.Asset{URL: p.ImageURL, PublicID: p.ImagePublicID},
		GroupSize:     p.GroupSize,
		Price:         p.Price,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
