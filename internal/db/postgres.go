package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arco/demo/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Pools holds the writer pool and the reader pool. Reader is the same pool
// as Writer when no separate reader DSN is configured.
type Pools struct {
	Writer *pgxpool.Pool
	Reader *pgxpool.Pool
}

// Close closes both pools once.
func (p *Pools) Close() {
	if p.Reader != nil && p.Reader != p.Writer {
		p.Reader.Close()
	}
	if p.Writer != nil {
		p.Writer.Close()
	}
}

// ConnectPools opens the writer pool and, if it differs, the reader pool.
func ConnectPools(ctx context.Context, cfg *config.Config) (*Pools, error) {
	writer, err := Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("writer: %w", err)
	}
	pools := &Pools{Writer: writer, Reader: writer}

	if cfg.DatabaseReaderURL != "" && cfg.DatabaseReaderURL != cfg.DatabaseURL {
		reader, err := Connect(ctx, cfg.DatabaseReaderURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			writer.Close()
			return nil, fmt.Errorf("reader: %w", err)
		}
		pools.Reader = reader
	}
	return pools, nil
}

// Connect creates a pgxpool connection pool and verifies connectivity.
func Connect(ctx context.Context, dsn string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// Migrate runs all pending up-migrations embedded in the binary.
// It is idempotent: already-applied migrations are skipped.
func Migrate(databaseURL string) error {
	return run(databaseURL, (*migrate.Migrate).Up)
}

// MigrateDown rolls back every applied migration.
func MigrateDown(databaseURL string) error {
	return run(databaseURL, (*migrate.Migrate).Down)
}

func run(databaseURL string, step func(*migrate.Migrate) error) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, MigrationURL(databaseURL))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// MigrationURL rewrites a postgres:// or postgresql:// DSN to the pgx5://
// scheme golang-migrate's pgx/v5 driver expects.
func MigrationURL(databaseURL string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}
