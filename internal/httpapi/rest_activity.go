package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/shamscripts/crm-followup/internal/model"
	"github.com/shamscripts/crm-followup/internal/store"
)

// Handlers for the activity records hanging off a lead: follow-ups, call
// notes, and email records.

// ListFollowUps handles GET /v1/follow-ups
func (s *Server) ListFollowUps(w http.ResponseWriter, r *http.Request) {
	followUps, err := s.Stores.FollowUps.ListAll(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to list follow-ups")
		writeError(w, r, 500, "failed to list follow-ups")
		return
	}
	writeJSON(w, 200, followUps)
}

// CreateFollowUp handles POST /v1/follow-ups
func (s *Server) CreateFollowUp(w http.ResponseWriter, r *http.Request) {
	var f model.FollowUp
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}
	if f.LeadID == "" {
		writeError(w, r, 400, "leadId is required")
		return
	}
	if f.Priority == "" {
		f.Priority = model.PriorityMedium
	}
	if f.Status == "" {
		f.Status = "pending"
	}

	created, err := s.Stores.FollowUps.Create(r.Context(), f)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to create follow-up")
		writeError(w, r, 500, "failed to create follow-up")
		return
	}
	writeJSON(w, 201, created)
}

// GetFollowUp handles GET /v1/follow-ups/{id}
func (s *Server) GetFollowUp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	f, err := s.Stores.FollowUps.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "follow-up not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to get follow-up")
		writeError(w, r, 500, "failed to get follow-up")
		return
	}
	writeJSON(w, 200, f)
}

// UpdateFollowUp handles PUT /v1/follow-ups/{id}
func (s *Server) UpdateFollowUp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var f model.FollowUp
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}
	f.ID = id
	f.UpdatedAt = time.Now().UTC()

	updated, err := s.Stores.FollowUps.Update(r.Context(), f)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "follow-up not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to update follow-up")
		writeError(w, r, 500, "failed to update follow-up")
		return
	}
	writeJSON(w, 200, updated)
}

// DeleteFollowUp handles DELETE /v1/follow-ups/{id}
func (s *Server) DeleteFollowUp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.Stores.FollowUps.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "follow-up not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to delete follow-up")
		writeError(w, r, 500, "failed to delete follow-up")
		return
	}
	w.WriteHeader(204)
}

// ListCallNotes handles GET /v1/call-notes
func (s *Server) ListCallNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.Stores.CallNotes.ListAll(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to list call notes")
		writeError(w, r, 500, "failed to list call notes")
		return
	}
	writeJSON(w, 200, notes)
}

// CreateCallNote handles POST /v1/call-notes
func (s *Server) CreateCallNote(w http.ResponseWriter, r *http.Request) {
	var n model.CallNote
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}
	if n.LeadID == "" {
		writeError(w, r, 400, "leadId is required")
		return
	}

	created, err := s.Stores.CallNotes.Create(r.Context(), n)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to create call note")
		writeError(w, r, 500, "failed to create call note")
		return
	}
	writeJSON(w, 201, created)
}

// GetCallNote handles GET /v1/call-notes/{id}
func (s *Server) GetCallNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := s.Stores.CallNotes.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "call note not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to get call note")
		writeError(w, r, 500, "failed to get call note")
		return
	}
	writeJSON(w, 200, n)
}

// DeleteCallNote handles DELETE /v1/call-notes/{id}
func (s *Server) DeleteCallNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.Stores.CallNotes.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "call note not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to delete call note")
		writeError(w, r, 500, "failed to delete call note")
		return
	}
	w.WriteHeader(204)
}

// ListEmails handles GET /v1/emails
func (s *Server) ListEmails(w http.ResponseWriter, r *http.Request) {
	emails, err := s.Stores.Emails.ListAll(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to list email records")
		writeError(w, r, 500, "failed to list email records")
		return
	}
	writeJSON(w, 200, emails)
}

// CreateEmail handles POST /v1/emails
func (s *Server) CreateEmail(w http.ResponseWriter, r *http.Request) {
	var e model.EmailRecord
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}
	if e.LeadID == "" {
		writeError(w, r, 400, "leadId is required")
		return
	}
	if e.Direction == "" {
		e.Direction = "outbound"
	}

	created, err := s.Stores.Emails.Create(r.Context(), e)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to create email record")
		writeError(w, r, 500, "failed to create email record")
		return
	}
	writeJSON(w, 201, created)
}

// GetEmail handles GET /v1/emails/{id}
func (s *Server) GetEmail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	e, err := s.Stores.Emails.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "email record not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to get email record")
		writeError(w, r, 500, "failed to get email record")
		return
	}
	writeJSON(w, 200, e)
}

// DeleteEmail handles DELETE /v1/emails/{id}
func (s *Server) DeleteEmail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.Stores.Emails.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "email record not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to delete email record")
		writeError(w, r, 500, "failed to delete email record")
		return
	}
	w.WriteHeader(204)
}
