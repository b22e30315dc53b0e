package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hollis-dev/storefront-api/internal/api"
	apimiddleware "github.com/hollis-dev/storefront-api/internal/api/middleware"
	"github.com/hollis-dev/storefront-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Every response, including router-level 404s and 405s,
// carries the uniform envelope.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondError(w, r, http.StatusNotFound, "Resource not found.", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondError(w, r, http.StatusMethodNotAllowed, "Resource not found.", nil)
	})

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordHasher, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.passwordHasher, app.dispatcher, app.logger)
	productHandler := api.NewProductHandler(app.productStore, app.userStore, app.logger)
	orderHandler := api.NewOrderHandler(app.orderStore, app.userStore, app.logger)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/login", authHandler.Login)
		r.Post("/users", userHandler.Create)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users", userHandler.List)
			r.Post("/products", productHandler.Create)
			r.Get("/products", productHandler.List)
			r.Post("/orders", orderHandler.Create)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondSuccess(w, r, http.StatusOK, "OK.", nil)
	})

	return r
}
