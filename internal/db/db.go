// Package db is the Postgres store shared by every camera of a site.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// DefaultMigrationsPath is relative to the repository root.
const DefaultMigrationsPath = "internal/db/migrations"

var (
	ErrConnectFailed = errors.New("database connection failed")
	ErrMigrateFailed = errors.New("schema migration failed")
)

type Config struct {
	ConnString     string
	MigrationsPath string
}

type DB struct {
	connString     string
	migrationsPath string
	pool           *pgxpool.Pool
}

// Migrate brings shutter_daily and shutter_log up to the latest version.
func (db *DB) Migrate(ctx context.Context) error {
	const fn = "DB:Migrate"
	slog.InfoContext(ctx, "Running shutter schema migrations...", "path", db.migrationsPath)
	m, err := migrate.New("file://"+db.migrationsPath, db.connString)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMigrateFailed, err)
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.InfoContext(ctx, "Shutter schema up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMigrateFailed, err)
	}
	version, _, _ := m.Version()
	slog.InfoContext(ctx, "Shutter schema migrated", "version", version)
	return nil
}

func Init(ctx context.Context, cfg Config) (*DB, error) {
	const fn = "DB:Init"
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = DefaultMigrationsPath
	}
	pool, err := pgxpool.Connect(ctx, cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrConnectFailed, err)
	}

	db := &DB{
		pool:           pool,
		connString:     cfg.ConnString,
		migrationsPath: cfg.MigrationsPath,
	}
	if err := db.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	slog.InfoContext(ctx, "Postgres shutter store ready", "migrations", cfg.MigrationsPath)
	return db, nil
}

func (db *DB) Close() {
	db.pool.Close()
}
