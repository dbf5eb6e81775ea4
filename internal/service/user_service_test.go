package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/arco/demo/internal/domain"
	"github.com/arco/demo/internal/repository"
	"github.com/arco/demo/internal/service"
)

// memCache is an in-memory UserCache with optional failure injection.
type memCache struct {
	mu     sync.Mutex
	users  map[string]domain.User
	GetErr error
	SetErr error
}

func newMemCache() *memCache { return &memCache{users: make(map[string]domain.User)} }

func (c *memCache) Get(_ context.Context, id string) (*domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	u, ok := c.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (c *memCache) Set(_ context.Context, u *domain.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	c.users[u.ID] = *u
	return nil
}

func (c *memCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.users, id)
	return nil
}

type lookups []string

func (l *lookups) record(result string) { *l = append(*l, result) }

func newService() (*service.UserService, *repository.MockUserRepository, *memCache, *lookups) {
	repo := repository.NewMockUserRepository()
	c := newMemCache()
	var l lookups
	svc := service.NewUserService(repo, c, zap.NewNop(), l.record)
	return svc, repo, c, &l
}

var validReq = domain.CreateUserRequest{ID: "1", Name: "Kim JeongTae"}

func TestUserService_Create(t *testing.T) {
	svc, _, _, _ := newService()

	u, err := svc.Create(context.Background(), validReq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "1" || u.Name != "Kim JeongTae" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestUserService_Create_Invalid(t *testing.T) {
	svc, _, _, _ := newService()

	bad := validReq
	bad.Name = ""
	if _, err := svc.Create(context.Background(), bad); err != domain.ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validReq); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, validReq); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserService_GetByID_ReadThrough(t *testing.T) {
	svc, repo, _, l := newService()
	ctx := context.Background()
	_, _ = svc.Create(ctx, validReq)

	for i := 0; i < 3; i++ {
		u, err := svc.GetByID(ctx, "1")
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if u.Name != validReq.Name {
			t.Fatalf("get %d: unexpected name %q", i, u.Name)
		}
	}

	if repo.GetByIDCalls != 1 {
		t.Fatalf("expected 1 repository lookup, got %d", repo.GetByIDCalls)
	}
	want := []string{service.CacheMiss, service.CacheHit, service.CacheHit}
	if len(*l) != len(want) {
		t.Fatalf("expected lookups %v, got %v", want, *l)
	}
	for i := range want {
		if (*l)[i] != want[i] {
			t.Fatalf("expected lookups %v, got %v", want, *l)
		}
	}
}

func TestUserService_GetByID_CacheErrorFallsBackToRepo(t *testing.T) {
	svc, repo, c, l := newService()
	ctx := context.Background()
	_, _ = svc.Create(ctx, validReq)

	c.GetErr = errors.New("connection refused")
	c.SetErr = errors.New("connection refused")

	u, err := svc.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("expected cache failure to be ignored, got %v", err)
	}
	if u.ID != "1" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if repo.GetByIDCalls != 1 {
		t.Fatalf("expected repository lookup, got %d", repo.GetByIDCalls)
	}
	if (*l)[0] != service.CacheError {
		t.Fatalf("expected error lookup, got %v", *l)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, _, _, _ := newService()
	if _, err := svc.GetByID(context.Background(), "missing"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_UpdateName_WritesThroughCache(t *testing.T) {
	svc, repo, c, _ := newService()
	ctx := context.Background()
	_, _ = svc.Create(ctx, validReq)
	_, _ = svc.GetByID(ctx, "1")

	if _, err := svc.UpdateName(ctx, "1", domain.UpdateUserRequest{Name: "renamed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cached, _ := c.Get(ctx, "1")
	if cached == nil || cached.Name != "renamed" {
		t.Fatalf("expected cache to hold renamed user, got %+v", cached)
	}

	calls := repo.GetByIDCalls
	u, err := svc.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "renamed" {
		t.Fatalf("expected renamed user, got %q", u.Name)
	}
	if repo.GetByIDCalls != calls {
		t.Fatalf("expected read after rename to be served from cache, repo called %d more times", repo.GetByIDCalls-calls)
	}
}

func TestUserService_UpdateName_SetFailureDropsEntry(t *testing.T) {
	svc, _, c, _ := newService()
	ctx := context.Background()
	_, _ = svc.Create(ctx, validReq)
	_, _ = svc.GetByID(ctx, "1")

	c.SetErr = errors.New("redis down")
	u, err := svc.UpdateName(ctx, "1", domain.UpdateUserRequest{Name: "renamed"})
	if err != nil {
		t.Fatalf("cache failure must not fail the update, got %v", err)
	}
	if u.Name != "renamed" {
		t.Fatalf("expected renamed user, got %q", u.Name)
	}

	c.SetErr = nil
	if cached, _ := c.Get(ctx, "1"); cached != nil {
		t.Fatalf("expected stale cache entry to be dropped, got %+v", cached)
	}
}

func TestUserService_UpdateName_Errors(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	tests := []struct {
		name        string
		id          string
		req         domain.UpdateUserRequest
		expectedErr error
	}{
		{"unknown user", "missing", domain.UpdateUserRequest{Name: "x"}, domain.ErrNotFound},
		{"empty name", "1", domain.UpdateUserRequest{}, domain.ErrInvalidName},
		{"empty id", "", domain.UpdateUserRequest{Name: "x"}, domain.ErrInvalidUserID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.UpdateName(ctx, tc.id, tc.req); err != tc.expectedErr {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, _, c, _ := newService()
	ctx := context.Background()
	_, _ = svc.Create(ctx, validReq)
	_, _ = svc.GetByID(ctx, "1")

	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached, _ := c.Get(ctx, "1"); cached != nil {
		t.Fatal("expected cache entry to be dropped")
	}
	if err := svc.Delete(ctx, "1"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
