// Package cache provides the read-through cache used for user lookups.
package cache

import (
	"context"

	"github.com/arco/demo/internal/domain"
)

// UserCache stores users by ID. A miss is reported as (nil, nil).
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

// Nop is used when no Redis address is configured. Every lookup misses.
type Nop struct{}

func (Nop) Get(context.Context, string) (*domain.User, error) { return nil, nil }
func (Nop) Set(context.Context, *domain.User) error           { return nil }
func (Nop) Delete(context.Context, string) error              { return nil }
