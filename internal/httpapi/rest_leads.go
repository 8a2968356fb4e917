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

// ListLeads handles GET /v1/leads
func (s *Server) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.Stores.Leads.ListAll(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to list leads")
		writeError(w, r, 500, "failed to list leads")
		return
	}
	writeJSON(w, 200, leads)
}

// CreateLead handles POST /v1/leads
func (s *Server) CreateLead(w http.ResponseWriter, r *http.Request) {
	var lead model.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}

	applyLeadDefaults(&lead)

	created, err := s.Stores.Leads.Create(r.Context(), lead)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to create lead")
		writeError(w, r, 500, "failed to create lead")
		return
	}
	writeJSON(w, 201, created)
}

// GetLead handles GET /v1/leads/{id}
func (s *Server) GetLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := s.Stores.Leads.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "lead not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to get lead")
		writeError(w, r, 500, "failed to get lead")
		return
	}
	writeJSON(w, 200, lead)
}

// UpdateLead handles PUT /v1/leads/{id}
func (s *Server) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var lead model.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}
	lead.ID = id
	lead.UpdatedAt = time.Now().UTC()

	updated, err := s.Stores.Leads.Update(r.Context(), lead)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "lead not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to update lead")
		writeError(w, r, 500, "failed to update lead")
		return
	}
	writeJSON(w, 200, updated)
}

// DeleteLead handles DELETE /v1/leads/{id}
func (s *Server) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.Stores.Leads.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "lead not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to delete lead")
		writeError(w, r, 500, "failed to delete lead")
		return
	}
	w.WriteHeader(204)
}

// applyLeadDefaults fills the documented defaults on a freshly created
// lead, mirroring what the sheet mapper does for absent columns.
func applyLeadDefaults(l *model.Lead) {
	if l.Status == "" {
		l.Status = model.StatusActive
	}
	if l.Stage == "" {
		l.Stage = model.StageProspect
	}
	if l.Priority == "" {
		l.Priority = model.PriorityMedium
	}
	if l.Tags == nil {
		l.Tags = []string{}
	}
}
