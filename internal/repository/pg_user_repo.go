package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arco/demo/internal/domain"
)

type pgUserRepository struct {
	reader *pgxpool.Pool
	writer *pgxpool.Pool
}

// NewPgUserRepository returns a UserRepository backed by PostgreSQL.
// Lookups go to reader and mutations to writer; pass the same pool twice
// when there is no read replica.
func NewPgUserRepository(reader, writer *pgxpool.Pool) UserRepository {
	return &pgUserRepository{reader: reader, writer: writer}
}

func (r *pgUserRepository) Create(ctx context.Context, u *domain.User) error {
	err := r.writer.QueryRow(ctx, `
		INSERT INTO users (id, name)
		VALUES ($1, $2)
		RETURNING created_at, updated_at`,
		u.ID, u.Name,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *pgUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.reader.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

func (r *pgUserRepository) UpdateName(ctx context.Context, id, name string) (*domain.User, error) {
	row := r.writer.QueryRow(ctx, `
		UPDATE users SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at`, name, id)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (r *pgUserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.writer.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
