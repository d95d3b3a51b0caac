package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	httpadapter "promoted-ads/internal/adapter/http"
	"promoted-ads/internal/adapter/postgres"
	"promoted-ads/internal/adapter/sqlite"
	"promoted-ads/internal/adapter/usecase"
	"promoted-ads/internal/config"
	"promoted-ads/internal/config/configs"
	"promoted-ads/internal/core/port"
	"promoted-ads/internal/db"
	"promoted-ads/internal/telemetry"
)

// main is the entry point of the promoted-ads service. It loads
// configuration, opens the configured store, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	// Prices and bids are written as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracing shutdown error", slog.Any("error", err))
		}
	}()

	repos, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repos.close()

	handler := httpadapter.NewHandler(
		usecase.NewAdUseCase(repos.campaigns),
		usecase.NewCampaignUseCase(repos.campaigns, repos.products),
		usecase.NewProductUseCase(repos.products),
		logger,
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.Name()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

type stores struct {
	campaigns port.CampaignRepository
	products  port.ProductRepository
	close     func()
}

// openStores connects the repositories selected by cfg.Store.
func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, error) {
	switch cfg.Store.Name() {
	case configs.DriverSQLite:
		sqlDB, err := sqlite.Open(cfg.SQLite, logger)
		if err != nil {
			return stores{}, fmt.Errorf("sqlite: %w", err)
		}
		logger.Info("sqlite store opened", slog.String("path", cfg.SQLite.Path))
		return stores{
			campaigns: sqlite.NewCampaignRepository(sqlDB),
			products:  sqlite.NewProductRepository(sqlDB),
			close:     func() { _ = sqlDB.Close() },
		}, nil

	default:
		if cfg.Psql.RunMigrations {
			if err := db.MigratePostgres(cfg.Psql.Addr.String(), logger); err != nil {
				return stores{}, fmt.Errorf("migrations: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return stores{}, fmt.Errorf("database connection: %w", err)
		}
		return stores{
			campaigns: postgres.NewCampaignRepository(pool),
			products:  postgres.NewProductRepository(pool),
			close:     pool.Close,
		}, nil
	}
}
