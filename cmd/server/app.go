package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hollis-dev/storefront-api/internal/config"
	"github.com/hollis-dev/storefront-api/internal/mail"
	"github.com/hollis-dev/storefront-api/internal/notify"
	"github.com/hollis-dev/storefront-api/internal/platform/postgres"
	"github.com/hollis-dev/storefront-api/internal/service/auth"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	productStore store.ProductStore
	orderStore   store.OrderStore

	// Services
	jwtService     auth.JWTService
	passwordHasher *auth.BcryptVerifier

	// Background notification delivery
	dispatcher *notify.Dispatcher
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.productStore = postgres.NewPostgresProductStore(db, logger)
	app.orderStore = postgres.NewPostgresOrderStore(db, logger)

	mailer := mail.New(cfg.Mail, logger)
	app.dispatcher = notify.NewDispatcher(mailer, cfg.Notify, logger)
	app.dispatcher.Start()

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.dispatcher != nil {
		app.dispatcher.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
