package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simply-Coder-start/Medi-Triage/internal/appointments"
	httpmiddleware "github.com/Simply-Coder-start/Medi-Triage/internal/http/middleware"
	"github.com/Simply-Coder-start/Medi-Triage/internal/identity"
	"github.com/Simply-Coder-start/Medi-Triage/internal/notify"
	"github.com/Simply-Coder-start/Medi-Triage/internal/requests"
	"github.com/Simply-Coder-start/Medi-Triage/internal/slots"
	"github.com/Simply-Coder-start/Medi-Triage/internal/triage"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	TokenParser         httpmiddleware.TokenParser
	IdentityHandler     *identity.Handler
	TriageHandler       *triage.Handler
	RequestsHandler     *requests.Handler
	SlotsHandler        *slots.Handler
	AppointmentsHandler *appointments.Handler
	NotifyHub           *notify.Hub
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
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

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status": "ok"}`))
		})
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		public.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.IdentityHandler.Register)
			r.Post("/login", cfg.IdentityHandler.Login)
		})
	})

	// Authenticated endpoints
	r.Route("/api", func(api chi.Router) {
		api.Use(httpmiddleware.SessionAuth(cfg.TokenParser))

		api.Get("/me", cfg.IdentityHandler.Me)
		api.Put("/me/profile", cfg.IdentityHandler.UpdateProfile)

		api.Route("/triage", func(r chi.Router) {
			r.Get("/questions", cfg.TriageHandler.Questions)
			r.Put("/progress", cfg.TriageHandler.SaveProgress)
			r.Get("/progress", cfg.TriageHandler.Resume)
			r.Delete("/progress", cfg.TriageHandler.Discard)
		})

		api.Route("/requests", func(r chi.Router) {
			r.Post("/", cfg.RequestsHandler.Create)
			r.Get("/", cfg.RequestsHandler.List)
			r.Get("/inbox", cfg.RequestsHandler.Inbox)
			r.Delete("/{id}", cfg.RequestsHandler.Cancel)
			r.Post("/{id}/accept", cfg.RequestsHandler.Accept)
			r.Post("/{id}/reject", cfg.RequestsHandler.Reject)
		})

		api.Route("/slots", func(r chi.Router) {
			r.Post("/", cfg.SlotsHandler.Add)
			r.Get("/", cfg.SlotsHandler.List)
			r.Delete("/{id}", cfg.SlotsHandler.Remove)
		})

		api.Route("/appointments", func(r chi.Router) {
			r.Get("/", cfg.AppointmentsHandler.List)
			r.Patch("/{id}/status", cfg.AppointmentsHandler.UpdateStatus)
		})

		if cfg.NotifyHub != nil {
			api.Get("/ws", cfg.NotifyHub.Serve)
		}
	})

	return r
}
