package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/1ShivamPandey/apnafinance/internal/api/handlers"
	custommiddleware "github.com/1ShivamPandey/apnafinance/internal/api/middleware"
	"github.com/1ShivamPandey/apnafinance/internal/api/response"
	"github.com/1ShivamPandey/apnafinance/internal/config"
	"github.com/1ShivamPandey/apnafinance/internal/logging"
	"github.com/1ShivamPandey/apnafinance/internal/service"
	"github.com/1ShivamPandey/apnafinance/web"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, portfolioService *service.PortfolioService, logger *logging.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.RespondError(w, http.StatusNotFound, "not found", "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.RespondError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService, cfg.Upload.MaxBytes, logger)
			r.Post("/upload", portfolioHandler.Upload)
			r.Post("/summary", portfolioHandler.Summary)
			r.Post("/chart", portfolioHandler.Chart)
		})
	})

	// Embedded browser dashboard at the site root.
	r.Handle("/*", web.Handler())

	return r
}
