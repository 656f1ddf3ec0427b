package service

import (
	"context"
	"strings"

	"travel_booking_backend/internal/access"
	"travel_booking_backend/internal/bookings/ports"
	"travel_booking_backend/internal/bookings/repository"
	"travel_booking_backend/internal/bookings/transport"
	"travel_booking_backend/internal/events"
	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/pagination"
	"travel_booking_backend/platform/phone"
	"travel_booking_backend/platform/sanitize"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	MsgViewForbidden   = "You are not allowed to view this booking"
	MsgUpdateForbidden = "You are not allowed to update this booking"

	msgInvalidFilter = "Invalid filter id"
	msgCreateFailed  = "Failed to create booking"
	msgListFailed    = "Failed to fetch bookings"
	msgGetFailed     = "Failed to fetch booking"
	msgUpdateFailed  = "Failed to update booking"
	msgDeleteFailed  = "Failed to delete booking"
)

// Service orchestrates bookings, their contacts and package checks.
type Service struct {
	repo     repository.Repository
	packages ports.PackageReader
	phone    *phone.Normalizer
	eventBus events.Bus
	log      *logger.Logger
}

// New creates a new bookings service.
func New(repo repository.Repository, packages ports.PackageReader, phones *phone.Normalizer, eventBus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, packages: packages, phone: phones, eventBus: eventBus, log: log}
}

// Create books a package for the caller. The package is checked before any
// write; contact and booking are then stored together.
func (s *Service) Create(ctx context.Context, caller access.Caller, req transport.CreateBookingRequest) (transport.BookingResponse, error) {
	pkg, err := s.packages.GetPackage(ctx, req.PackageID)
	if err != nil {
		return transport.BookingResponse{}, s.fail(ctx, "create", err, apperr.KindBadRequest, msgCreateFailed)
	}

	status := req.Status
	if status == "" {
		status = repository.StatusPending
	}
	var totalPrice float64
	if req.TotalPrice != nil {
		totalPrice = *req.TotalPrice
	}

	b, err := s.repo.Create(ctx, repository.CreateParams{
		UserID:         caller.ID,
		PackageID:      pkg.ID,
		NumberOfPeople: req.NumberOfPeople,
		TotalPrice:     totalPrice,
		Status:         status,
		Contact: repository.ContactParams{
			Name:  sanitize.Text(req.Contact.Name),
			Email: normalizeEmail(req.Contact.Email),
			Phone: s.phone.E164(req.Contact.Phone),
		},
	})
	if err != nil {
		return transport.BookingResponse{}, s.fail(ctx, "create", err, apperr.KindBadRequest, msgCreateFailed)
	}

	s.log.Info("booking created", "id", b.ID, "userId", b.UserID, "packageId", b.PackageID)

	s.eventBus.Publish(ctx, events.BookingCreated{
		BaseEvent:      events.NewBaseEvent(),
		BookingID:      b.ID,
		UserID:         b.UserID,
		PackageID:      b.PackageID,
		PackageName:    pkg.Name,
		ContactName:    b.Contact.Name,
		ContactEmail:   b.Contact.Email,
		NumberOfPeople: b.NumberOfPeople,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
	})

	return toResponse(b), nil
}

// List returns a page of bookings. Non-admin callers only ever see their own.
func (s *Service) List(ctx context.Context, caller access.Caller, req transport.ListBookingsRequest) (transport.BookingListResponse, error) {
	page := pagination.New(req.Page, req.Limit)
	params := repository.ListParams{
		Status: req.Status,
		Offset: page.Offset(),
		Limit:  page.Limit,
	}

	var err error
	if params.ContactID, err = parseOptionalID(req.ContactID); err != nil {
		return transport.BookingListResponse{}, err
	}
	if params.PackageID, err = parseOptionalID(req.PackageID); err != nil {
		return transport.BookingListResponse{}, err
	}
	if caller.IsAdmin() {
		if params.UserID, err = parseOptionalID(req.UserID); err != nil {
			return transport.BookingListResponse{}, err
		}
	} else {
		own := caller.ID
		params.UserID = &own
	}

	var (
		items []repository.Booking
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
		return transport.BookingListResponse{}, s.fail(ctx, "list", err, apperr.KindInternal, msgListFailed)
	}

	out := make([]transport.BookingListItem, 0, len(items))
	for _, b := range items {
		out = append(out, transport.BookingListItem{
			ID:             b.ID,
			ContactID:      b.ContactID,
			PackageID:      b.PackageID,
			NumberOfPeople: b.NumberOfPeople,
			TotalPrice:     b.TotalPrice,
			Status:         b.Status,
		})
	}
	return transport.BookingListResponse{Items: out, Meta: page.Meta(total)}, nil
}

// GetByID returns a booking the caller owns, or any booking for admins.
func (s *Service) GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (transport.BookingResponse, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.BookingResponse{}, s.fail(ctx, "get", err, apperr.KindInternal, msgGetFailed)
	}
	if err := access.CheckOwnership(caller, b.UserID, MsgViewForbidden); err != nil {
		return transport.BookingResponse{}, err
	}
	return toResponse(b), nil
}

// Update applies a partial update. Status has no transition guard.
func (s *Service) Update(ctx context.Context, caller access.Caller, id uuid.UUID, req transport.UpdateBookingRequest) (transport.BookingResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.BookingResponse{}, s.fail(ctx, "update", err, apperr.KindBadRequest, msgUpdateFailed)
	}
	if err := access.CheckOwnership(caller, existing.UserID, MsgUpdateForbidden); err != nil {
		return transport.BookingResponse{}, err
	}

	if req.PackageID != nil {
		if _, err := s.packages.GetPackage(ctx, *req.PackageID); err != nil {
			return transport.BookingResponse{}, s.fail(ctx, "update", err, apperr.KindBadRequest, msgUpdateFailed)
		}
	}

	params := repository.UpdateParams{
		ID:             id,
		PackageID:      req.PackageID,
		NumberOfPeople: req.NumberOfPeople,
		TotalPrice:     req.TotalPrice,
		Status:         req.Status,
	}
	if c := req.Contact; c != nil {
		patch := &repository.ContactPatch{
			Name:  sanitize.TextPtr(c.Name),
			Phone: s.phone.E164Ptr(c.Phone),
		}
		if c.Email != nil {
			email := normalizeEmail(*c.Email)
			patch.Email = &email
		}
		params.Contact = patch
	}

	b, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.BookingResponse{}, s.fail(ctx, "update", err, apperr.KindBadRequest, msgUpdateFailed)
	}

	s.log.Info("booking updated", "id", b.ID)

	if b.Status != existing.Status {
		s.eventBus.Publish(ctx, events.BookingStatusChanged{
			BaseEvent:      events.NewBaseEvent(),
			BookingID:      b.ID,
			UserID:         b.UserID,
			ContactName:    b.Contact.Name,
			ContactEmail:   b.Contact.Email,
			PreviousStatus: existing.Status,
			Status:         b.Status,
		})
	}

	return toResponse(b), nil
}

// Delete hard-deletes a booking. Admin access is enforced by routing.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, apperr.KindInternal, msgDeleteFailed)
	}
	s.log.Info("booking deleted", "id", id)
	return nil
}

func (s *Service) fail(ctx context.Context, op string, err error, kind apperr.Kind, message string) error {
	if _, ok := apperr.As(err); !ok {
		s.log.WithContext(ctx).Error("bookings operation failed", "op", op, "error", err)
	}
	return apperr.Normalize(err, kind, message)
}

func parseOptionalID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.BadRequest(msgInvalidFilter)
	}
	return &id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toResponse(b repository.Booking) transport.BookingResponse {
	return transport.BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		ContactID: b.ContactID,
		Contact: transport.ContactResponse{
			ID:    b.Contact.ID,
			Name:  b.Contact.Name,
			Email: b.Contact.Email,
			Phone: b.Contact.Phone,
		},
		PackageID:      b.PackageID,
		NumberOfPeople: b.NumberOfPeople,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
