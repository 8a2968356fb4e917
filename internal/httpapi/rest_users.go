package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/shamscripts/crm-followup/internal/model"
	"github.com/shamscripts/crm-followup/internal/store"
)

// ListUsers handles GET /v1/users
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Stores.Users.ListAll(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to list users")
		writeError(w, r, 500, "failed to list users")
		return
	}
	writeJSON(w, 200, users)
}

// CreateUser handles POST /v1/users
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}

	created, err := s.Stores.Users.Create(r.Context(), u)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to create user")
		writeError(w, r, 500, "failed to create user")
		return
	}
	writeJSON(w, 201, created)
}

// GetUser handles GET /v1/users/{id}
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := s.Stores.Users.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "user not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to get user")
		writeError(w, r, 500, "failed to get user")
		return
	}
	writeJSON(w, 200, u)
}

// ListNotifications handles GET /v1/users/{id}/notifications
func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	notifications, err := s.Stores.Notifications.ListForUser(r.Context(), userID)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("userId", userID).Msg("failed to list notifications")
		writeError(w, r, 500, "failed to list notifications")
		return
	}
	writeJSON(w, 200, notifications)
}

// MarkNotificationRead handles POST /v1/notifications/{id}/read
func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.Stores.Notifications.MarkRead(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, 404, "notification not found")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to mark notification read")
		writeError(w, r, 500, "failed to mark notification read")
		return
	}
	w.WriteHeader(204)
}
