package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/mytheresa/product-catalog/app/config"
	"github.com/mytheresa/product-catalog/app/logging"
	"github.com/mytheresa/product-catalog/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database and tunes the connection pool.
func Open(ctx context.Context, cfg *config.Config, l *slog.Logger) (*gorm.DB, error) {
	dialector, err := buildDialector(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: build dialector: %w", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logging.GormLogger(cfg, l),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	l.Info("database connected", "driver", cfg.DatabaseDriver)
	return db, nil
}

func buildDialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DatabaseDriver {
	case "postgres":
		if cfg.PostgresDriver == "pq" {
			return postgres.New(postgres.Config{DriverName: "postgres", DSN: cfg.DatabaseDSN}), nil
		}
		return postgres.Open(cfg.DatabaseDSN), nil
	case "sqlite":
		return sqlite.Open(sqliteDSN(cfg.DatabaseDSN)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DatabaseDriver)
	}
}

// Migrate creates or updates every catalog table together with its unique
// indexes, the partial default-image index and the foreign key actions.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("database: migrate: %w", err)
	}
	return nil
}

// sqliteDSN turns on foreign key enforcement for every pooled connection.
// SQLite leaves it off unless the connection asks for it.
func sqliteDSN(dsn string) string {
	base, query, _ := strings.Cut(dsn, "?")
	params, _ := url.ParseQuery(query)
	params.Del("_fk")
	params.Set("_foreign_keys", "on")
	return base + "?" + params.Encode()
}
