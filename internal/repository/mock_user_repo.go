package repository

import (
	"context"
	"sync"
	"time"

	"github.com/arco/demo/internal/domain"
)

// MockUserRepository is a hand-written, in-memory implementation of
// UserRepository used in unit tests.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Optional error overrides, set in tests to simulate failure paths.
	CreateErr  error
	GetByIDErr error

	// GetByIDCalls counts lookups that reached the repository.
	GetByIDCalls int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(_ context.Context, u *domain.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; ok {
		return domain.ErrConflict
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	clone := *u
	m.users[u.ID] = &clone
	return nil
}

func (m *MockUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	m.GetByIDCalls++
	m.mu.Unlock()
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *MockUserRepository) UpdateName(_ context.Context, id, name string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Name = name
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (m *MockUserRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.users, id)
	return nil
}
