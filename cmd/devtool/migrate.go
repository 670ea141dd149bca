package main

import (
	"context"
	"fmt"

	"github.com/osse101/SkillForge_Go/internal/config"
	"github.com/osse101/SkillForge_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, create")
	}

	switch args[0] {
	case "create":
		// create <name> [postgres|sqlite]
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		dialect := config.StorageDriverPostgres
		if len(args) > 2 {
			dialect = args[2]
		}
		dir := "internal/database/migrations/" + dialect
		return runCommandVerbose("go", "run", "github.com/pressly/goose/v3/cmd/goose", "-dir", dir, "create", args[1], "sql")
	case "up":
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return migrateUp(context.Background(), cfg)
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

// migrateUp applies the embedded migrations for SQL drivers
func migrateUp(ctx context.Context, cfg *config.Config) error {
	PrintHeader(fmt.Sprintf("Migrating %s", cfg.StorageDriver))

	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := database.MigratePostgres(ctx, pool); err != nil {
			return err
		}
	case config.StorageDriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := database.MigrateSQLite(ctx, db); err != nil {
			return err
		}
	default:
		PrintInfo("Driver %s has no schema, nothing to migrate", cfg.StorageDriver)
		return nil
	}

	PrintSuccess("Migrations applied")
	return nil
}
