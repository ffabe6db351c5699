package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gosm1/pureperfumes/internal/cart"
	"github.com/gosm1/pureperfumes/internal/config"
	"github.com/gosm1/pureperfumes/internal/database"
	"github.com/gosm1/pureperfumes/internal/handler"
	"github.com/gosm1/pureperfumes/internal/notify"
	"github.com/gosm1/pureperfumes/internal/repository"
	"github.com/gosm1/pureperfumes/internal/router"
	"github.com/gosm1/pureperfumes/internal/service"
	"github.com/gosm1/pureperfumes/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting pureperfumes API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	offerRepo := repository.NewOfferRepository(pool, logger)

	// Initialize image storage
	var images storage.ImageStore
	if cfg.Storage.Enabled {
		images, err = storage.NewS3Store(ctx, cfg.Storage, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 image store, image features disabled")
			images = storage.NewDisabled(logger)
		}
	} else {
		images = storage.NewDisabled(logger)
		logger.Info().Msg("image storage disabled (S3 not configured)")
	}

	// Initialize order notifier
	notifier := notify.NewTelegramNotifier(cfg.Telegram, logger)
	if !cfg.Telegram.Enabled() {
		logger.Warn().Msg("telegram credentials missing, order notifications will be skipped")
	}

	// Initialize session cart store
	persister, err := cart.NewFilePersister(cfg.Cart.DataDir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize cart persistence: %w", err)
	}
	carts := cart.NewStore(persister, cart.SystemClock(), logger)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, images, logger)
	orderService := service.NewOrderService(orderRepo, notifier, logger)
	offerService := service.NewOfferService(offerRepo, logger)

	// Subscribe to order change notifications so concurrent admin sessions
	// converge without manual refresh.
	listener := repository.NewOrderListener(pool, logger)
	events, err := listener.Listen(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("order change subscription unavailable, admin list reloads on writes only")
	} else {
		go orderService.Watch(events)
	}

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:      handler.NewProductHandler(catalogService, logger),
		Cart:         handler.NewCartHandler(carts, catalogService, orderService, logger),
		Offer:        handler.NewOfferHandler(offerService, logger),
		AdminProduct: handler.NewAdminProductHandler(catalogService, logger),
		AdminOrder:   handler.NewAdminOrderHandler(orderService, logger),
		AdminOffer:   handler.NewAdminOfferHandler(offerService, logger),
		Image:        handler.NewImageHandler(images, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Admin.Secret, logger)

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

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

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
	}

	return nil
}
