// Package logging builds the service's structured logger and the matching
// gorm logger.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mytheresa/product-catalog/app/config"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a JSON logger in production and a text logger otherwise,
// and installs it as the slog default.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	l := slog.New(handler).With("service", "catalog")
	slog.SetDefault(l)
	return l
}

// GormLogger returns a gorm logger writing through l at the configured
// DB_LOG_LEVEL. gorm's error, warn and info lines keep their severity.
func GormLogger(cfg *config.Config, l *slog.Logger) gormlogger.Interface {
	return &gormLogger{
		l:             l.With("component", "gorm"),
		level:         gormLevel(cfg.DBLogLevel),
		slowThreshold: 200 * time.Millisecond,
	}
}

func gormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

type gormLogger struct {
	l             *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func (g *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.l.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (g *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.l.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (g *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.l.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace logs a finished statement: failures at error, slow statements at
// warn, everything else at info when DB_LOG_LEVEL is info.
func (g *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		sql, rows := fc()
		g.l.ErrorContext(ctx, "query failed", "error", err, "sql", sql, "rows", rows, "elapsed", elapsed)
	case elapsed > g.slowThreshold && g.slowThreshold != 0 && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.l.WarnContext(ctx, "slow query", "sql", sql, "rows", rows, "elapsed", elapsed, "threshold", g.slowThreshold)
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.l.InfoContext(ctx, "query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
