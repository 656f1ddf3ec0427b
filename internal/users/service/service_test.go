package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"travel_booking_backend/internal/access"
	"travel_booking_backend/internal/users/repository"
	"travel_booking_backend/internal/users/transport"
	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/phone"

	"github.com/google/uuid"
)

type fakeRepo struct {
	mu       sync.Mutex
	users    map[uuid.UUID]repository.User
	emails   map[string]uuid.UUID
	deleted  []uuid.UUID
	updates  []repository.UpdateParams
	lastList repository.ListParams
	listErr  error
}

func newFakeRepo(users ...repository.User) *fakeRepo {
	r := &fakeRepo{users: make(map[uuid.UUID]repository.User), emails: make(map[string]uuid.UUID)}
	for _, u := range users {
		r.users[u.ID] = u
		r.emails[u.Email] = u.ID
	}
	return r
}

func (r *fakeRepo) List(_ context.Context, params repository.ListParams) ([]repository.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = params
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]repository.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeRepo) Count(context.Context, repository.ListParams) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	u, ok := r.users[id]
	if !ok {
		return repository.User{}, apperr.NotFound("User not found")
	}
	return u, nil
}

func (r *fakeRepo) EmailTaken(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
	id, ok := r.emails[email]
	return ok && id != excludeID, nil
}

func (r *fakeRepo) Create(_ context.Context, params repository.CreateParams) (repository.User, error) {
	u := repository.User{ID: uuid.New(), UserName: params.UserName, Email: params.Email, Role: params.Role, Phone: params.Phone, CreatedAt: time.Now()}
	r.users[u.ID] = u
	r.emails[u.Email] = u.ID
	return u, nil
}

func (r *fakeRepo) Update(_ context.Context, params repository.UpdateParams) (repository.User, error) {
	r.updates = append(r.updates, params)
	u, ok := r.users[params.ID]
	if !ok {
		return repository.User{}, apperr.NotFound("User not found")
	}
	if params.Role != nil {
		u.Role = *params.Role
	}
	if params.Email != nil {
		u.Email = *params.Email
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return apperr.NotFound("User not found")
	}
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func newTestService(repo repository.Repository) *Service {
	return New(repo, phone.NewNormalizer("US"), logger.Nop())
}

func strPtr(s string) *string { return &s }

func TestListRequiresAdmin(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.List(context.Background(), access.Caller{ID: uuid.New(), Role: access.RoleNormal}, transport.ListUsersRequest{})
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestListPaginatesAndNormalizesFailures(t *testing.T) {
	repo := newFakeRepo(
		repository.User{ID: uuid.New(), Email: "a@example.com"},
		repository.User{ID: uuid.New(), Email: "b@example.com"},
	)
	svc := newTestService(repo)
	admin := access.Caller{ID: uuid.New(), Role: access.RoleAdmin}

	resp, err := svc.List(context.Background(), admin, transport.ListUsersRequest{Page: 2, Limit: 1, UserName: " ada "})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if resp.Meta.Total != 2 || resp.Meta.TotalPages != 2 || resp.Meta.Page != 2 {
		t.Fatalf("unexpected meta %+v", resp.Meta)
	}
	if repo.lastList.Offset != 1 || repo.lastList.UserName != "ada" {
		t.Fatalf("unexpected list params %+v", repo.lastList)
	}

	repo.listErr = errors.New("timeout")
	_, err = svc.List(context.Background(), admin, transport.ListUsersRequest{})
	if domainErr, ok := apperr.As(err); !ok || domainErr.Message != msgFetchFailed {
		t.Fatalf("expected normalized fetch failure, got %v", err)
	}
}

func TestGetByIDOwnership(t *testing.T) {
	owner := repository.User{ID: uuid.New(), Email: "owner@example.com", Role: access.RoleNormal}
	svc := newTestService(newFakeRepo(owner))

	if _, err := svc.GetByID(context.Background(), access.Caller{ID: owner.ID, Role: access.RoleNormal}, owner.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}

	_, err := svc.GetByID(context.Background(), access.Caller{ID: uuid.New(), Role: access.RoleNormal}, owner.ID)
	if domainErr, ok := apperr.As(err); !ok || domainErr.Kind != apperr.KindForbidden || domainErr.Message != MsgViewForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	_, err = svc.GetByID(context.Background(), access.Caller{ID: uuid.New(), Role: access.RoleAdmin}, uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for admin on missing user, got %v", err)
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeRepo(repository.User{ID: uuid.New(), Email: "taken@example.com"})
	svc := newTestService(repo)
	admin := access.Caller{ID: uuid.New(), Role: access.RoleAdmin}

	_, err := svc.Create(context.Background(), admin, transport.CreateUserRequest{
		UserName: "Dup", Email: "TAKEN@example.com", Password: "password123",
	})
	if domainErr, ok := apperr.As(err); !ok || domainErr.Kind != apperr.KindConflict || domainErr.Message != MsgEmailExists {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateDefaultsRoleAndNormalizesPhone(t *testing.T) {
	svc := newTestService(newFakeRepo())
	admin := access.Caller{ID: uuid.New(), Role: access.RoleAdmin}

	resp, err := svc.Create(context.Background(), admin, transport.CreateUserRequest{
		UserName: "New", Email: "new@example.com", Password: "password123", Phone: strPtr("(650) 253-0000"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Role != access.RoleNormal {
		t.Fatalf("expected default role normal, got %q", resp.Role)
	}
	if resp.Phone == nil || *resp.Phone != "+16502530000" {
		t.Fatalf("expected E.164 phone, got %v", resp.Phone)
	}
}

func TestUpdateIgnoresRoleForNonAdmins(t *testing.T) {
	self := repository.User{ID: uuid.New(), Email: "self@example.com", Role: access.RoleNormal}
	repo := newFakeRepo(self)
	svc := newTestService(repo)

	resp, err := svc.Update(context.Background(), access.Caller{ID: self.ID, Role: access.RoleNormal}, self.ID, transport.UpdateUserRequest{
		Role: strPtr(access.RoleAdmin),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.Role != access.RoleNormal || repo.updates[0].Role != nil {
		t.Fatal("non-admin must not be able to change their role")
	}

	resp, err = svc.Update(context.Background(), access.Caller{ID: uuid.New(), Role: access.RoleAdmin}, self.ID, transport.UpdateUserRequest{
		Role: strPtr(access.RoleAdmin),
	})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if resp.Role != access.RoleAdmin {
		t.Fatalf("expected admin to change the role, got %q", resp.Role)
	}
}

func TestUpdateForbiddenAndEmailConflict(t *testing.T) {
	a := repository.User{ID: uuid.New(), Email: "a@example.com", Role: access.RoleNormal}
	b := repository.User{ID: uuid.New(), Email: "b@example.com", Role: access.RoleNormal}
	svc := newTestService(newFakeRepo(a, b))

	_, err := svc.Update(context.Background(), access.Caller{ID: a.ID, Role: access.RoleNormal}, b.ID, transport.UpdateUserRequest{})
	if domainErr, ok := apperr.As(err); !ok || domainErr.Message != MsgUpdateForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	_, err = svc.Update(context.Background(), access.Caller{ID: a.ID, Role: access.RoleNormal}, a.ID, transport.UpdateUserRequest{
		Email: strPtr("B@example.com"),
	})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteSoftDeletesOwnAccount(t *testing.T) {
	self := repository.User{ID: uuid.New(), Email: "self@example.com", Role: access.RoleNormal}
	other := repository.User{ID: uuid.New(), Email: "other@example.com", Role: access.RoleNormal}
	repo := newFakeRepo(self, other)
	svc := newTestService(repo)
	caller := access.Caller{ID: self.ID, Role: access.RoleNormal}

	err := svc.Delete(context.Background(), caller, other.ID)
	if domainErr, ok := apperr.As(err); !ok || domainErr.Message != MsgDeleteForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), caller, self.ID); err != nil {
		t.Fatalf("delete self: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != self.ID {
		t.Fatalf("unexpected deletions %v", repo.deleted)
	}
}
