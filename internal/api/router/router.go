package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zootown/agency-ai-platform/internal/booking"
	"github.com/zootown/agency-ai-platform/internal/chat"
	httpmiddleware "github.com/zootown/agency-ai-platform/internal/http/middleware"
	"github.com/zootown/agency-ai-platform/internal/leads"
	"github.com/zootown/agency-ai-platform/internal/portfolio"
	"github.com/zootown/agency-ai-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger           *logging.Logger
	LeadsHandler     *leads.Handler
	ChatHandler      *chat.Handler
	BookingHandler   *booking.Handler
	PortfolioHandler *portfolio.Handler
	MetricsHandler   http.Handler

	CORSAllowedOrigins []string

	// Intake rate limiting (per client IP). Zero disables it.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
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

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Public API consumed by the website.
	r.Route("/api", func(api chi.Router) {
		if cfg.LeadsHandler != nil {
			// The form and the chat email capture both write leads; rate limit
			// submissions so a runaway client cannot flood the inbox.
			intake := api.With()
			if cfg.RateLimitPerSecond > 0 {
				intake = api.With(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
			}
			intake.Post("/leads", cfg.LeadsHandler.CreateLead)
		}

		if cfg.ChatHandler != nil {
			api.Post("/chat", cfg.ChatHandler.Respond)
			api.Post("/chat/session", cfg.ChatHandler.Session)
			api.Get("/chat/history", cfg.ChatHandler.History)
		}

		if cfg.BookingHandler != nil {
			api.Get("/booking/link", cfg.BookingHandler.Link)
		}

		if cfg.PortfolioHandler != nil {
			api.Get("/portfolio", cfg.PortfolioHandler.ListProjects)
			api.Get("/portfolio/{slug}", cfg.PortfolioHandler.GetProject)
		}
	})

	// Internal endpoints, fronted by the deployment's access controls.
	if cfg.LeadsHandler != nil {
		r.Get("/admin/leads", cfg.LeadsHandler.ListLeads)
	}

	return r
}
