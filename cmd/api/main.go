package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-catalog/internal/config"
	"marketplace-catalog/internal/database"
	"marketplace-catalog/internal/handler"
	"marketplace-catalog/internal/middleware"
	"marketplace-catalog/internal/repository"
	"marketplace-catalog/internal/router"
	"marketplace-catalog/internal/service"
	"marketplace-catalog/internal/snapshot"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// repositories is the data source the services read from.
type repositories struct {
	products repository.ProductRepository
	sellers  repository.SellerRepository
	orders   repository.OrderRepository

	// reload refreshes the data in place; nil for sources that are always live.
	reload func(ctx context.Context) error
	close  func()
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("source", cfg.Catalog.Source).Msg("starting marketplace catalog API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repos.close()

	// Initialize services
	catalogService := service.NewCatalogService(repos.products, repos.sellers, cfg.Catalog.LowStockThreshold, logger)
	sellerService := service.NewSellerService(repos.sellers, repos.products, logger)
	orderService := service.NewOrderService(repos.orders, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Catalog: handler.NewCatalogHandler(catalogService, logger),
		Seller:  handler.NewSellerHandler(sellerService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger)
		go limiter.Run(ctx, time.Minute)
	}

	// Initialize router
	mux := router.New(handlers, limiter, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// SIGHUP reloads the snapshot without a restart
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)

	// Block until we receive a signal or an error
	for {
		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case <-reload:
			if repos.reload == nil {
				logger.Info().Msg("reload requested but the catalogue source is live, ignoring")
				continue
			}
			if err := repos.reload(ctx); err != nil {
				logger.Error().Err(err).Msg("catalogue reload failed, keeping previous data")
			}

		case sig := <-shutdown:
			logger.Info().
				Str("signal", sig.String()).
				Msg("shutdown signal received, starting graceful shutdown")

			// Create a context with timeout for shutdown
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()

			// Attempt graceful shutdown
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("failed to shutdown server gracefully")
				// Force close
				if closeErr := server.Close(); closeErr != nil {
					logger.Error().Err(closeErr).Msg("failed to close server")
				}
				return fmt.Errorf("server shutdown failed: %w", err)
			}

			logger.Info().Msg("server shutdown completed")
			return nil
		}
	}
}

func openRepositories(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*repositories, error) {
	switch cfg.Catalog.Source {
	case config.SourceSnapshot:
		loader := newSnapshotLoader(ctx, cfg, logger)
		store, err := snapshot.NewStore(ctx, loader, cfg.Catalog.SnapshotPath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalogue snapshot: %w", err)
		}
		return &repositories{
			products: store.Products(),
			sellers:  store.Sellers(),
			orders:   store.Orders(),
			reload:   store.Reload,
			close:    func() {},
		}, nil

	default:
		pool, err := database.Open(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return &repositories{
			products: repository.NewProductRepository(pool, logger),
			sellers:  repository.NewSellerRepository(pool, logger),
			orders:   repository.NewOrderRepository(pool, logger),
			close:    pool.Close,
		}, nil
	}
}

// newSnapshotLoader prefers S3 when enabled and falls back to the local file.
func newSnapshotLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) snapshot.Loader {
	fileLoader := snapshot.NewFileLoader(logger)
	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for catalogue snapshots (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := snapshot.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}
	return snapshot.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}
