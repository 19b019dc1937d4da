package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mytheresa/product-catalog/app/config"
	"github.com/mytheresa/product-catalog/app/database"
	"github.com/mytheresa/product-catalog/app/logging"
	"github.com/mytheresa/product-catalog/app/server"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog tables, indexes and foreign keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, db, l, err := connect(ctx)
		if err != nil {
			return err
		}
		defer closeDB(db, l)

		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		l.Info("migrations applied")
		return nil
	},
}

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, db, l, err := connect(ctx)
		if err != nil {
			return err
		}
		defer closeDB(db, l)

		if migrateOnStart {
			if err := database.Migrate(ctx, db); err != nil {
				return err
			}
		}

		srv := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           server.NewRouter(db, l),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			l.Info("server listening", "addr", cfg.HTTPAddr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		l.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply migrations before serving")
}

func connect(ctx context.Context) (*config.Config, *gorm.DB, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, nil, err
	}
	l := logging.New(cfg, os.Stdout)

	db, err := database.Open(ctx, cfg, l)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, db, l, nil
}

func closeDB(db *gorm.DB, l *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		l.Warn("closing database", "error", err)
	}
}
