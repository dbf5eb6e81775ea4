package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arco/demo/internal/cache"
	"github.com/arco/demo/internal/domain"
	"github.com/arco/demo/internal/repository"
)

// Cache lookup results reported to the metrics hook.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// UserService coordinates the repository and the read-through cache.
// Cache failures are logged and never fail a request.
type UserService struct {
	repo     repository.UserRepository
	cache    cache.UserCache
	logger   *zap.Logger
	onLookup func(result string)
}

func NewUserService(
	repo repository.UserRepository,
	c cache.UserCache,
	logger *zap.Logger,
	onLookup func(result string),
) *UserService {
	if c == nil {
		c = cache.Nop{}
	}
	if onLookup == nil {
		onLookup = func(string) {}
	}
	return &UserService{repo: repo, cache: c, logger: logger, onLookup: onLookup}
}

// Create validates and persists a new user.
func (s *UserService) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u := &domain.User{ID: req.ID, Name: req.Name}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}
	return u, nil
}

// GetByID serves from the cache when possible and fills it on a miss.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := domain.ValidateUserID(id); err != nil {
		return nil, err
	}

	cached, err := s.cache.Get(ctx, id)
	switch {
	case err != nil:
		s.onLookup(CacheError)
		s.logger.Warn("user cache get failed", zap.String("id", id), zap.Error(err))
	case cached != nil:
		s.onLookup(CacheHit)
		return cached, nil
	default:
		s.onLookup(CacheMiss)
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, u); err != nil {
		s.logger.Warn("user cache set failed", zap.String("id", id), zap.Error(err))
	}
	return u, nil
}

// UpdateName renames a user and writes the row returned by the writer into
// the cache, so a lagging reader cannot repopulate it with the old name.
// The entry is dropped instead when the write fails.
func (s *UserService) UpdateName(ctx context.Context, id string, req domain.UpdateUserRequest) (*domain.User, error) {
	if err := domain.ValidateUserID(id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.UpdateName(ctx, id, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, u); err != nil {
		s.logger.Warn("user cache set failed", zap.String("id", id), zap.Error(err))
		s.invalidate(ctx, id)
	}
	return u, nil
}

// Delete removes a user and drops its cache entry.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateUserID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn("user cache delete failed", zap.String("id", id), zap.Error(err))
	}
}
