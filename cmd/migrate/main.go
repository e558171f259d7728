package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	appconfig "github.com/sehatplus/notification-service/internal/config"
	appmigrations "github.com/sehatplus/notification-service/migrations"
	"github.com/sehatplus/notification-service/pkg/logging"
)

// command is a parsed CLI invocation: migrate [up|down|force <version>].
type command struct {
	name    string
	version int
}

func main() {
	_ = godotenv.Load()
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	cmd, err := parseArgs(os.Args[1:])
	if err != nil {
		logger.Error("invalid arguments", "error", err)
		os.Exit(2)
	}
	if err := run(cfg, logger, cmd); err != nil {
		logger.Error("recipient table migration failed", "command", cmd.name, "error", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (command, error) {
	if len(args) == 0 {
		return command{name: "up"}, nil
	}
	switch args[0] {
	case "up", "down":
		return command{name: args[0]}, nil
	case "force":
		if len(args) < 2 {
			return command{}, errors.New("force requires a version")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return command{}, fmt.Errorf("invalid force version %q: %w", args[1], err)
		}
		return command{name: "force", version: version}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q (want up, down or force <version>)", args[0])
	}
}

func run(cfg *appconfig.Config, logger *logging.Logger, cmd command) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required to migrate the recipient tables")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("database driver: %w", err)
	}
	srcDriver, err := iofs.New(appmigrations.FS, ".")
	if err != nil {
		return fmt.Errorf("embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch cmd.name {
	case "force":
		if err := m.Force(cmd.version); err != nil {
			return fmt.Errorf("force version %d: %w", cmd.version, err)
		}
		logger.Info("migration version forced", "version", cmd.version)
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("roll back: %w", err)
		}
		logger.Info("recipient tables rolled back")
	default:
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Info("recipient tables already up to date")
				return nil
			}
			return fmt.Errorf("apply: %w", err)
		}
		version, dirty, _ := m.Version()
		logger.Info("recipient tables migrated", "version", version, "dirty", dirty)
	}
	return nil
}
