package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shamscripts/crm-followup/internal/model"
	"github.com/shamscripts/crm-followup/internal/sheet"
)

// maxSheetBytes caps uploaded sheet size.
const maxSheetBytes = 10 << 20 // 10 MiB

// parseKind reads an explicit kind value, falling back to the filename
// heuristic when absent.
func parseKind(explicit, filename string) (sheet.Kind, error) {
	switch explicit {
	case "":
		return sheet.KindForFilename(filename), nil
	case string(sheet.KindLeads):
		return sheet.KindLeads, nil
	case string(sheet.KindCompanies):
		return sheet.KindCompanies, nil
	default:
		return "", fmt.Errorf("unknown kind %q", explicit)
	}
}

// ImportSheet handles POST /v1/sheet/import
//
// Multipart form fields:
//   - file:   the sheet to import (required)
//   - kind:   "leads" or "companies"; derived from the filename if absent
//   - config: JSON sync config; stock defaults for the kind if absent
//   - userId: when present, the user receives a summary notification
func (s *Server) ImportSheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	if err := r.ParseMultipartForm(maxSheetBytes); err != nil {
		writeError(w, r, 400, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, 400, "missing file field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxSheetBytes))
	if err != nil {
		writeError(w, r, 400, "failed to read uploaded file")
		return
	}

	kind, err := parseKind(r.FormValue("kind"), header.Filename)
	if err != nil {
		writeError(w, r, 400, err.Error())
		return
	}

	cfg := sheet.DefaultConfig(kind)
	if raw := r.FormValue("config"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			writeError(w, r, 400, "invalid config JSON")
			return
		}
	}
	if err := cfg.Validate(); err != nil {
		writeError(w, r, 400, err.Error())
		return
	}

	result, err := s.Sync.Import(ctx, kind, content, cfg)

	var readErr *sheet.ReadError
	if errors.As(err, &readErr) {
		// The pass failed before any row was processed
		writeJSON(w, 422, result)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("import pass failed")
		writeError(w, r, 500, "import failed")
		return
	}

	if userID := r.FormValue("userId"); userID != "" {
		s.notifyImportDone(r, userID, kind, result)
	}

	writeJSON(w, 200, result)
}

// notifyImportDone records a summary notification for the requesting user.
// Failures are logged, not surfaced; the import itself already succeeded.
func (s *Server) notifyImportDone(r *http.Request, userID string, kind sheet.Kind, result *sheet.Result) {
	msg := fmt.Sprintf("%s import finished: %d created, %d updated, %d skipped",
		kind, result.Created, result.Updated, result.Skipped)
	if n := result.Unresolved(); n > 0 {
		msg += fmt.Sprintf(", %d conflicts awaiting review", n)
	}

	_, err := s.Stores.Notifications.Create(r.Context(), model.Notification{
		UserID:  userID,
		Kind:    "sheet-import",
		Message: msg,
	})
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Str("userId", userID).Msg("failed to create import notification")
	}
}

// ExportSheet handles GET /v1/sheet/export?kind=leads|companies
func (s *Server) ExportSheet(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r.URL.Query().Get("kind"), "")
	if err != nil {
		writeError(w, r, 400, err.Error())
		return
	}

	content, err := s.Sync.Export(r.Context(), kind)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("kind", string(kind)).Msg("export failed")
		writeError(w, r, 500, "export failed")
		return
	}

	filename := sheet.ExportFilename(kind, time.Now().UTC())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(200)
	w.Write([]byte(content))
}

// ListPendingConflicts handles GET /v1/sheet/conflicts?kind=leads|companies
func (s *Server) ListPendingConflicts(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r.URL.Query().Get("kind"), "")
	if err != nil {
		writeError(w, r, 400, err.Error())
		return
	}
	writeJSON(w, 200, s.Sync.Pending.List(kind))
}

// resolveReq is the body for POST /v1/sheet/conflicts/resolve. Choice uses
// the boundary labels: "crm" keeps the stored value, "excel" takes the
// sheet value.
type resolveReq struct {
	RecordID string `json:"recordId"`
	Field    string `json:"field"`
	Choice   string `json:"choice"`
}

// ResolveConflict handles POST /v1/sheet/conflicts/resolve
func (s *Server) ResolveConflict(w http.ResponseWriter, r *http.Request) {
	var req resolveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, 400, "invalid JSON")
		return
	}

	var choice sheet.Resolution
	switch req.Choice {
	case "crm", string(sheet.ResolutionExisting):
		choice = sheet.ResolutionExisting
	case "excel", string(sheet.ResolutionIncoming):
		choice = sheet.ResolutionIncoming
	default:
		writeError(w, r, 400, fmt.Sprintf("invalid choice %q", req.Choice))
		return
	}

	item, err := s.Sync.ResolveConflict(r.Context(), req.RecordID, req.Field, choice)
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).
			Str("recordId", req.RecordID).
			Str("field", req.Field).
			Msg("conflict resolution failed")
		writeError(w, r, 404, err.Error())
		return
	}

	writeJSON(w, 200, item)
}
