package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/SkillForge_Go/internal/database/migrations"
)

// MigratePostgres applies the embedded Postgres migrations through the pool
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return migrate(ctx, goose.DialectPostgres, db, migrations.DirPostgres)
}

// MigrateSQLite applies the embedded SQLite migrations
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, goose.DialectSQLite3, db, migrations.DirSQLite)
}

func migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB, dir string) error {
	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	if len(results) == 0 {
		slog.Default().Info(LogMsgSchemaUpToDate, "dialect", string(dialect))
		return nil
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"dialect", string(dialect),
			"version", r.Source.Version,
			"duration", r.Duration)
	}
	return nil
}
