package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAppEnv         = "local"
	defaultHTTPAddr       = ":8080"
	defaultDatabaseDriver = "postgres"
	defaultPostgresDriver = "pgx"
	defaultPostgresDSN    = "host=localhost user=postgres password=postgres dbname=catalog port=5432 sslmode=disable"
	defaultSQLiteDSN      = "catalog.db?_foreign_keys=on"
	defaultDBLogLevel     = "warn"
	defaultMaxOpenConns   = 25
	defaultMaxIdleConns   = 10
)

// Config holds the runtime settings of the catalog service.
type Config struct {
	AppEnv         string
	HTTPAddr       string
	DatabaseDriver string
	PostgresDriver string
	DatabaseDSN    string
	DBLogLevel     string
	MaxOpenConns   int
	MaxIdleConns   int
}

// Load reads the given .env files (missing files are ignored) and builds a
// Config from the environment. Variables already set in the process
// environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := &Config{
		AppEnv:         get("APP_ENV", defaultAppEnv),
		HTTPAddr:       get("HTTP_ADDR", defaultHTTPAddr),
		DatabaseDriver: strings.ToLower(get("DB_DRIVER", defaultDatabaseDriver)),
		PostgresDriver: strings.ToLower(get("POSTGRES_DRIVER", defaultPostgresDriver)),
		DBLogLevel:     strings.ToLower(get("DB_LOG_LEVEL", defaultDBLogLevel)),
	}

	switch cfg.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("config: unsupported DB_DRIVER %q (supported: postgres, sqlite)", cfg.DatabaseDriver)
	}

	switch cfg.PostgresDriver {
	case "pgx", "pq":
	default:
		return nil, fmt.Errorf("config: unsupported POSTGRES_DRIVER %q (supported: pgx, pq)", cfg.PostgresDriver)
	}

	cfg.DatabaseDSN = get("DATABASE_DSN", "")
	if cfg.DatabaseDSN == "" {
		if cfg.DatabaseDriver == "sqlite" {
			cfg.DatabaseDSN = defaultSQLiteDSN
		} else {
			cfg.DatabaseDSN = defaultPostgresDSN
		}
	}

	var err error
	if cfg.MaxOpenConns, err = getInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns); err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns, err = getInt("DB_MAX_IDLE_CONNS", defaultMaxIdleConns); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func get(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := get(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("config: %s must be a non-negative integer, got %q", key, raw)
	}
	return n, nil
}
