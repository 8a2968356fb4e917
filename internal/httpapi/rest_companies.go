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

// ListCompanies handles GET /v1/companies
func (s *Server) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.Stores.Companies.ListAll(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to list companies")
		writeError(w, r, 500, "failed to list companies")
		return
	}
	writeJSON(w, 200, companies)
}

// CreateCompany handles POST /v1/companies
func (s *Server) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var company model.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}

	created, err := s.Stores.Companies.Create(r.Context(), company)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to create company")
		writeError(w, r, 500, "failed to create company")
		return
	}
	writeJSON(w, 201, created)
}

// GetCompany handles GET /v1/companies/{id}
func (s *Server) GetCompany(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	company, err := s.Stores.Companies.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "company not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to get company")
		writeError(w, r, 500, "failed to get company")
		return
	}
	writeJSON(w, 200, company)
}

// UpdateCompany handles PUT /v1/companies/{id}
func (s *Server) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var company model.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}
	company.ID = id
	company.UpdatedAt = time.Now().UTC()

	updated, err := s.Stores.Companies.Update(r.Context(), company)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "company not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to update company")
		writeError(w, r, 500, "failed to update company")
		return
	}
	writeJSON(w, 200, updated)
}

// DeleteCompany handles DELETE /v1/companies/{id}
func (s *Server) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.Stores.Companies.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "company not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to delete company")
		writeError(w, r, 500, "failed to delete company")
		return
	}
	w.WriteHeader(204)
}
