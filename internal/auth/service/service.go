package service

import (
	"context"
	"strings"

	"travel_booking_backend/internal/access"
	"travel_booking_backend/internal/auth/password"
	"travel_booking_backend/internal/auth/repository"
	"travel_booking_backend/internal/auth/token"
	"travel_booking_backend/internal/auth/transport"
	"travel_booking_backend/internal/events"
	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/httpkit"
	"travel_booking_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgEmailExists        = "Email already exists"
	MsgPasswordsMismatch  = "Passwords do not match"
	MsgInvalidToken       = "Access denied, invalid token"
	MsgUserNotFound       = "Access denied, user not found"

	msgRegistrationFailed = "Registration failed"
	msgLoginFailed        = "Login failed"
)

// Service handles registration, login and token resolution.
type Service struct {
	repo     repository.Repository
	tokens   *token.Manager
	eventBus events.Bus
	log      *logger.Logger
}

// New creates a new auth service.
func New(repo repository.Repository, tokens *token.Manager, eventBus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, eventBus: eventBus, log: log}
}

// Compile-time check that Service can back the auth middleware.
var _ httpkit.Authenticator = (*Service)(nil)

// Register creates a normal account.
func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) (transport.RegisterResponse, error) {
	if req.Password != req.ConfirmPassword {
		return transport.RegisterResponse{}, apperr.BadRequest(MsgPasswordsMismatch)
	}

	email := normalizeEmail(req.Email)
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return transport.RegisterResponse{}, s.fail(ctx, "register", err, msgRegistrationFailed)
	}
	if exists {
		s.log.AuthEvent("register", email, false, "email exists")
		return transport.RegisterResponse{}, apperr.Conflict(MsgEmailExists)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return transport.RegisterResponse{}, s.fail(ctx, "register", err, msgRegistrationFailed)
	}

	user, err := s.repo.CreateUser(ctx, repository.CreateUserParams{
		UserName:     strings.TrimSpace(req.UserName),
		Email:        email,
		PasswordHash: hash,
		Role:         access.RoleNormal,
	})
	if err != nil {
		return transport.RegisterResponse{}, s.fail(ctx, "register", err, msgRegistrationFailed)
	}

	s.eventBus.Publish(ctx, events.UserRegistered{
		BaseEvent: events.NewBaseEvent(),
		UserID:    user.ID,
		Email:     user.Email,
		UserName:  user.UserName,
	})

	s.log.AuthEvent("register", user.Email, true, "")
	return transport.RegisterResponse{User: toSummary(user)}, nil
}

// Login verifies credentials and issues a token.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			s.log.AuthEvent("login", email, false, "unknown email")
			return transport.LoginResponse{}, apperr.Unauthorized(MsgInvalidCredentials)
		}
		return transport.LoginResponse{}, s.fail(ctx, "login", err, msgLoginFailed)
	}

	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		s.log.AuthEvent("login", email, false, "password mismatch")
		return transport.LoginResponse{}, apperr.Unauthorized(MsgInvalidCredentials)
	}

	signed, err := s.tokens.Sign(token.Subject{ID: user.ID, Email: user.Email, UserName: user.UserName, Role: user.Role})
	if err != nil {
		return transport.LoginResponse{}, s.fail(ctx, "login", err, msgLoginFailed)
	}

	s.log.AuthEvent("login", user.Email, true, "")
	return transport.LoginResponse{User: toSummary(user), Token: signed}, nil
}

// Authenticate verifies a bearer token and re-reads the user it names, so
// role changes and deletions take effect before the token expires.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (httpkit.Principal, error) {
	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		return httpkit.Principal{}, apperr.Unauthorized(MsgInvalidToken)
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return httpkit.Principal{}, apperr.Unauthorized(MsgUserNotFound)
		}
		return httpkit.Principal{}, err
	}

	return httpkit.Principal{
		UserID:   user.ID,
		Email:    user.Email,
		UserName: user.UserName,
		Role:     user.Role,
	}, nil
}

// Me returns the profile of the authenticated user.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (transport.ProfileResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return transport.ProfileResponse{}, err
	}
	return transport.ProfileResponse{
		ID:                user.ID,
		UserName:          user.UserName,
		Email:             user.Email,
		Role:              user.Role,
		IsAccountVerified: user.IsAccountVerified,
		Phone:             user.Phone,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}, nil
}

func (s *Service) fail(ctx context.Context, op string, err error, message string) error {
	if _, ok := apperr.As(err); !ok {
		s.log.WithContext(ctx).Error("auth operation failed", "op", op, "error", err)
	}
	return apperr.Normalize(err, apperr.KindInternal, message)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toSummary(u repository.User) transport.UserSummary {
	return transport.UserSummary{ID: u.ID, UserName: u.UserName, Email: u.Email}
}
