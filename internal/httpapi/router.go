package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/shamscripts/crm-followup/internal/sheet"
	"github.com/shamscripts/crm-followup/internal/store"
)

// Server holds dependencies for the HTTP handlers.
type Server struct {
	Stores store.Stores
	Sync   *sheet.Service

	// RateLimitConfig applies to the sheet import/export routes.
	RateLimitConfig RateLimitInfo
}

// NewServer wires a server over the given stores.
func NewServer(stores store.Stores) *Server {
	return &Server{
		Stores: stores,
		Sync:   sheet.NewService(stores.Leads, stores.Companies),
		RateLimitConfig: RateLimitInfo{
			WindowSeconds: 60,
			MaxRequests:   60,
			Burst:         10,
		},
	}
}

// Routes creates the HTTP router with all CRM endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(CorrelationMiddleware)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	})

	r.Get("/v1/info", s.Info)

	// Leads
	r.Route("/v1/leads", func(r chi.Router) {
		r.Get("/", s.ListLeads)
		r.Post("/", s.CreateLead)
		r.Get("/{id}", s.GetLead)
		r.Put("/{id}", s.UpdateLead)
		r.Delete("/{id}", s.DeleteLead)
	})

	// Companies
	r.Route("/v1/companies", func(r chi.Router) {
		r.Get("/", s.ListCompanies)
		r.Post("/", s.CreateCompany)
		r.Get("/{id}", s.GetCompany)
		r.Put("/{id}", s.UpdateCompany)
		r.Delete("/{id}", s.DeleteCompany)
	})

	// Follow-ups
	r.Route("/v1/follow-ups", func(r chi.Router) {
		r.Get("/", s.ListFollowUps)
		r.Post("/", s.CreateFollowUp)
		r.Get("/{id}", s.GetFollowUp)
		r.Put("/{id}", s.UpdateFollowUp)
		r.Delete("/{id}", s.DeleteFollowUp)
	})

	// Call notes
	r.Route("/v1/call-notes", func(r chi.Router) {
		r.Get("/", s.ListCallNotes)
		r.Post("/", s.CreateCallNote)
		r.Get("/{id}", s.GetCallNote)
		r.Delete("/{id}", s.DeleteCallNote)
	})

	// Email records
	r.Route("/v1/emails", func(r chi.Router) {
		r.Get("/", s.ListEmails)
		r.Post("/", s.CreateEmail)
		r.Get("/{id}", s.GetEmail)
		r.Delete("/{id}", s.DeleteEmail)
	})

	// Users and their notifications
	r.Route("/v1/users", func(r chi.Router) {
		r.Get("/", s.ListUsers)
		r.Post("/", s.CreateUser)
		r.Get("/{id}", s.GetUser)
		r.Get("/{id}/notifications", s.ListNotifications)
	})
	r.Post("/v1/notifications/{id}/read", s.MarkNotificationRead)

	// Sheet import/export; rate limited, these are the expensive routes
	r.Route("/v1/sheet", func(r chi.Router) {
		r.Use(RateLimitMiddleware(s.RateLimitConfig))

		r.Post("/import", s.ImportSheet)
		r.Get("/export", s.ExportSheet)
		r.Get("/conflicts", s.ListPendingConflicts)
		r.Post("/conflicts/resolve", s.ResolveConflict)
	})

	log.Info().Msg("HTTP routes registered")
	return r
}
