package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"travel_booking_backend/internal/auth/password"
	"travel_booking_backend/internal/auth/repository"
	"travel_booking_backend/internal/auth/token"
	"travel_booking_backend/internal/auth/transport"
	"travel_booking_backend/internal/events"
	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	users     map[uuid.UUID]repository.User
	createErr error
	created   []repository.CreateUserParams
}

func newFakeRepo(users ...repository.User) *fakeRepo {
	r := &fakeRepo{users: make(map[uuid.UUID]repository.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepo) GetUserByEmail(_ context.Context, email string) (repository.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return repository.User{}, apperr.NotFound("User not found")
}

func (r *fakeRepo) GetUserByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	u, ok := r.users[id]
	if !ok {
		return repository.User{}, apperr.NotFound("User not found")
	}
	return u, nil
}

func (r *fakeRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeRepo) CreateUser(_ context.Context, params repository.CreateUserParams) (repository.User, error) {
	if r.createErr != nil {
		return repository.User{}, r.createErr
	}
	r.created = append(r.created, params)
	u := repository.User{
		ID:           uuid.New(),
		UserName:     params.UserName,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	return u, nil
}

type recordingBus struct {
	mu        sync.Mutex
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.Publish(ctx, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func newTestService(repo repository.Repository) (*Service, *recordingBus) {
	bus := &recordingBus{}
	return New(repo, token.NewManager("test-secret", time.Hour), bus, logger.Nop()), bus
}

func registerRequest(email string) transport.RegisterRequest {
	return transport.RegisterRequest{
		UserName:        "Ada",
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestRegisterCreatesNormalUserWithLowercasedEmail(t *testing.T) {
	repo := newFakeRepo()
	svc, bus := newTestService(repo)

	resp, err := svc.Register(context.Background(), registerRequest("  Ada@Example.COM "))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.User.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", resp.User.Email)
	}
	if len(repo.created) != 1 || repo.created[0].Role != "normal" {
		t.Fatalf("expected one normal user, got %+v", repo.created)
	}
	if password.Compare(repo.created[0].PasswordHash, "password123") != nil {
		t.Fatal("expected stored hash to match the password")
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected UserRegistered event, got %d events", len(bus.published))
	}
	if _, ok := bus.published[0].(events.UserRegistered); !ok {
		t.Fatalf("unexpected event %T", bus.published[0])
	}
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	repo := newFakeRepo(repository.User{ID: uuid.New(), Email: "ada@example.com", Role: "normal"})
	svc, bus := newTestService(repo)

	_, err := svc.Register(context.Background(), registerRequest("ADA@example.com"))
	domainErr, ok := apperr.As(err)
	if !ok || domainErr.Kind != apperr.KindConflict || domainErr.Message != MsgEmailExists {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(repo.created) != 0 || len(bus.published) != 0 {
		t.Fatal("duplicate registration must not write or publish")
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	req := registerRequest("ada@example.com")
	req.ConfirmPassword = "different"

	if _, err := svc.Register(context.Background(), req); !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestRegisterUnexpectedFailureIsNormalized(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("connection reset")
	svc, _ := newTestService(repo)

	_, err := svc.Register(context.Background(), registerRequest("ada@example.com"))
	domainErr, ok := apperr.As(err)
	if !ok || domainErr.Kind != apperr.KindInternal || domainErr.Message != msgRegistrationFailed {
		t.Fatalf("expected normalized internal error, got %v", err)
	}
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	hash, _ := password.Hash("password123")
	user := repository.User{ID: uuid.New(), UserName: "Ada", Email: "ada@example.com", PasswordHash: hash, Role: "admin"}
	svc, _ := newTestService(newFakeRepo(user))

	resp, err := svc.Login(context.Background(), transport.LoginRequest{Email: "ADA@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.ID != user.ID {
		t.Fatalf("unexpected user %+v", resp.User)
	}

	claims, err := svc.tokens.Parse(resp.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != "admin" || claims.UserName != "Ada" || claims.Email != user.Email {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, _ := password.Hash("password123")
	user := repository.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: hash, Role: "normal"}
	svc, _ := newTestService(newFakeRepo(user))

	for _, req := range []transport.LoginRequest{
		{Email: "ada@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "password123"},
	} {
		_, err := svc.Login(context.Background(), req)
		domainErr, ok := apperr.As(err)
		if !ok || domainErr.Kind != apperr.KindUnauthorized || domainErr.Message != MsgInvalidCredentials {
			t.Fatalf("%s: expected invalid credentials, got %v", req.Email, err)
		}
	}
}

func TestAuthenticateUsesFreshUserRecord(t *testing.T) {
	user := repository.User{ID: uuid.New(), UserName: "Ada", Email: "ada@example.com", Role: "normal"}
	repo := newFakeRepo(user)
	svc, _ := newTestService(repo)

	raw, err := svc.tokens.Sign(token.Subject{ID: user.ID, Email: user.Email, UserName: user.UserName, Role: "admin"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	principal, err := svc.Authenticate(context.Background(), raw)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if principal.Role != "normal" {
		t.Fatalf("expected role from the stored user, got %q", principal.Role)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.Authenticate(context.Background(), "garbage")
	if domainErr, ok := apperr.As(err); !ok || domainErr.Message != MsgInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}

	raw, _ := svc.tokens.Sign(token.Subject{ID: uuid.New(), Role: "normal"})
	_, err = svc.Authenticate(context.Background(), raw)
	domainErr, ok := apperr.As(err)
	if !ok || domainErr.Kind != apperr.KindUnauthorized || domainErr.Message != MsgUserNotFound {
		t.Fatalf("expected user not found, got %v", err)
	}
}
