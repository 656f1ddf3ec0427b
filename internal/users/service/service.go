package service

import (
	"context"
	"strings"

	"travel_booking_backend/internal/access"
	"travel_booking_backend/internal/auth/password"
	"travel_booking_backend/internal/users/repository"
	"travel_booking_backend/internal/users/transport"
	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/pagination"
	"travel_booking_backend/platform/phone"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	MsgViewForbidden   = "You are not allowed to view this profile"
	MsgUpdateForbidden = "You are not allowed to update this profile"
	MsgDeleteForbidden = "You are not allowed to delete this profile"
	MsgEmailExists     = "Email already exists"

	msgFetchFailed  = "Failed to fetch users"
	msgCreateFailed = "Failed to create user"
	msgUpdateFailed = "Failed to update user"
	msgDeleteFailed = "Failed to delete user"
)

// Service provides business logic for user management.
type Service struct {
	repo  repository.Repository
	phone *phone.Normalizer
	log   *logger.Logger
}

// New creates a new users service.
func New(repo repository.Repository, phones *phone.Normalizer, log *logger.Logger) *Service {
	return &Service{repo: repo, phone: phones, log: log}
}

// List returns a filtered page of users. Admin only.
func (s *Service) List(ctx context.Context, caller access.Caller, req transport.ListUsersRequest) (transport.UserListResponse, error) {
	if err := access.AuthorizeRole(caller, access.RoleAdmin); err != nil {
		return transport.UserListResponse{}, err
	}

	page := pagination.New(req.Page, req.Limit)
	params := repository.ListParams{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.TrimSpace(req.Email),
		Offset:   page.Offset(),
		Limit:    page.Limit,
	}

	var (
		items []repository.User
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
		return transport.UserListResponse{}, s.fail(ctx, "list", err, apperr.KindInternal, msgFetchFailed)
	}

	out := make([]transport.UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, toUserResponse(u))
	}
	return transport.UserListResponse{Items: out, Meta: page.Meta(total)}, nil
}

// GetByID returns a single user. Callers may only read themselves unless admin.
func (s *Service) GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (transport.UserResponse, error) {
	if err := access.CheckOwnership(caller, id, MsgViewForbidden); err != nil {
		return transport.UserResponse{}, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.UserResponse{}, s.fail(ctx, "get", err, apperr.KindInternal, msgFetchFailed)
	}
	return toUserResponse(user), nil
}

// Create adds a user with an explicit role. Admin only.
func (s *Service) Create(ctx context.Context, caller access.Caller, req transport.CreateUserRequest) (transport.UserResponse, error) {
	if err := access.AuthorizeRole(caller, access.RoleAdmin); err != nil {
		return transport.UserResponse{}, err
	}

	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return transport.UserResponse{}, s.fail(ctx, "create", err, apperr.KindInternal, msgCreateFailed)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return transport.UserResponse{}, s.fail(ctx, "create", err, apperr.KindInternal, msgCreateFailed)
	}

	role := req.Role
	if role == "" {
		role = access.RoleNormal
	}

	user, err := s.repo.Create(ctx, repository.CreateParams{
		UserName:     strings.TrimSpace(req.UserName),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        s.phone.E164Ptr(req.Phone),
	})
	if err != nil {
		return transport.UserResponse{}, s.fail(ctx, "create", err, apperr.KindInternal, msgCreateFailed)
	}

	s.log.Info("user created", "id", user.ID, "role", user.Role, "by", caller.ID)
	return toUserResponse(user), nil
}

// Update edits a user. Only admins may change roles; for everyone else the
// role field is ignored.
func (s *Service) Update(ctx context.Context, caller access.Caller, id uuid.UUID, req transport.UpdateUserRequest) (transport.UserResponse, error) {
	if err := access.CheckOwnership(caller, id, MsgUpdateForbidden); err != nil {
		return transport.UserResponse{}, err
	}

	params := repository.UpdateParams{ID: id, Phone: s.phone.E164Ptr(req.Phone)}

	if req.UserName != nil {
		name := strings.TrimSpace(*req.UserName)
		params.UserName = &name
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if err := s.ensureEmailFree(ctx, email, id); err != nil {
			return transport.UserResponse{}, s.fail(ctx, "update", err, apperr.KindInternal, msgUpdateFailed)
		}
		params.Email = &email
	}
	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return transport.UserResponse{}, s.fail(ctx, "update", err, apperr.KindInternal, msgUpdateFailed)
		}
		params.PasswordHash = &hash
	}
	if req.Role != nil && caller.IsAdmin() {
		params.Role = req.Role
	}

	user, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.UserResponse{}, s.fail(ctx, "update", err, apperr.KindInternal, msgUpdateFailed)
	}

	s.log.Info("user updated", "id", user.ID, "by", caller.ID)
	return toUserResponse(user), nil
}

// Delete soft-deletes a user.
func (s *Service) Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if err := access.CheckOwnership(caller, id, MsgDeleteForbidden); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return s.fail(ctx, "delete", err, apperr.KindInternal, msgDeleteFailed)
	}

	s.log.Info("user deleted", "id", id, "by", caller.ID)
	return nil
}

func (s *Service) ensureEmailFree(ctx context.Context, email string, excludeID uuid.UUID) error {
	taken, err := s.repo.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict(MsgEmailExists)
	}
	return nil
}

func (s *Service) fail(ctx context.Context, op string, err error, kind apperr.Kind, message string) error {
	if _, ok := apperr.As(err); !ok {
		s.log.WithContext(ctx).Error("users operation failed", "op", op, "error", err)
	}
	return apperr.Normalize(err, kind, message)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u repository.User) transport.UserResponse {
	return transport.UserResponse{
		ID:                u.ID,
		UserName:          u.UserName,
		Email:             u.Email,
		Role:              u.Role,
		IsAccountVerified: u.IsAccountVerified,
		Phone:             u.Phone,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
