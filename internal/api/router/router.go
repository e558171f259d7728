package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/sehatplus/notification-service/internal/http/middleware"
	"github.com/sehatplus/notification-service/internal/notify"
	"github.com/sehatplus/notification-service/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	NotifyHandler      *notify.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.NotifyHandler.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// The booking pages post to the bare root; /notifications is the
	// documented path.
	r.Post("/", cfg.NotifyHandler.Notify)
	r.Post("/notifications", cfg.NotifyHandler.Notify)

	return r
}
