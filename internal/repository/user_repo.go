package repository

import (
	"context"

	"github.com/arco/demo/internal/domain"
)

// UserRepository defines all persistence operations for users.
// The pgx implementation is in pg_user_repo.go.
// Tests use a hand-written mock (mock_user_repo.go).
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
