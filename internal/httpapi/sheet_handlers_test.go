package httpapi

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shamscripts/crm-followup/internal/model"
	"github.com/shamscripts/crm-followup/internal/sheet"
)

func postSheet(t *testing.T, h http.Handler, filename, content string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := sheetUpload(t, filename, content, fields)
	req := httptest.NewRequest("POST", "/v1/sheet/import", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestImportSheetCreatesLeads(t *testing.T) {
	srv, h := newTestServer(t)

	content := "Name,Email,Score\nAda Lovelace,ada@example.com,85\n"
	rec := postSheet(t, h, "leads.csv", content, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	result := decodeBody[sheet.Result](t, rec)
	if !result.Success || result.Created != 1 {
		t.Errorf("result = %+v, want 1 created", result)
	}

	all, _ := srv.Stores.Leads.ListAll(context.Background())
	if len(all) != 1 || all[0].Email != "ada@example.com" {
		t.Errorf("store = %+v", all)
	}
}

func TestImportSheetKindRouting(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		kind     string
		wantErr  bool
	}{
		{"explicit leads", "data.csv", "leads", false},
		{"explicit companies", "data.csv", "companies", false},
		{"from filename", "my-leads.csv", "", false},
		{"unknown kind", "data.csv", "contacts", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := newTestServer(t)

			fields := map[string]string{}
			if tt.kind != "" {
				fields["kind"] = tt.kind
			}
			rec := postSheet(t, h, tt.filename, "Name\nSomebody\n", fields)

			if tt.wantErr && rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if !tt.wantErr && rec.Code != http.StatusOK {
				t.Errorf("status = %d, body %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestImportSheetConfigOverride(t *testing.T) {
	srv, h := newTestServer(t)

	// Data starts on line 3 under a preamble; default config would misread it
	content := "exported 2026-03-15\nName,Email\nAda,ada@example.com\n"
	rec := postSheet(t, h, "leads.csv", content, map[string]string{
		"config": `{"headerRow":2,"startRow":3}`,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	result := decodeBody[sheet.Result](t, rec)
	if result.Created != 1 {
		t.Errorf("result = %+v, want 1 created", result)
	}

	all, _ := srv.Stores.Leads.ListAll(context.Background())
	if len(all) != 1 || all[0].Name != "Ada" {
		t.Errorf("store = %+v", all)
	}
}

func TestImportSheetBadRequests(t *testing.T) {
	_, h := newTestServer(t)

	t.Run("missing file field", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if err := mw.WriteField("kind", "leads"); err != nil {
			t.Fatalf("write field: %v", err)
		}
		mw.Close()

		req := httptest.NewRequest("POST", "/v1/sheet/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("invalid config JSON", func(t *testing.T) {
		rec := postSheet(t, h, "leads.csv", "Name\nAda\n", map[string]string{"config": "{not json"})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("invalid config values", func(t *testing.T) {
		rec := postSheet(t, h, "leads.csv", "Name\nAda\n", map[string]string{"config": `{"headerRow":0}`})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestImportSheetUnreadableFile(t *testing.T) {
	_, h := newTestServer(t)

	rec := postSheet(t, h, "leads.csv", string([]byte{0xff, 0xfe}), nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	result := decodeBody[sheet.Result](t, rec)
	if result.Success || result.Processed != 0 {
		t.Errorf("result = %+v, want empty unsuccessful result", result)
	}
}

func TestImportSheetNotifiesUser(t *testing.T) {
	srv, h := newTestServer(t)

	rec := postSheet(t, h, "leads.csv", "Name,Email\nAda,ada@example.com\n", map[string]string{
		"userId": "user-1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	notifications, _ := srv.Stores.Notifications.ListForUser(context.Background(), "user-1")
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}
	n := notifications[0]
	if n.Kind != "sheet-import" || !strings.Contains(n.Message, "1 created") {
		t.Errorf("notification = %+v", n)
	}
}

func TestExportSheet(t *testing.T) {
	srv, h := newTestServer(t)

	_, err := srv.Stores.Leads.Create(context.Background(), model.Lead{
		ID: "lead-1", Name: "Ada Lovelace", Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("seed lead: %v", err)
	}

	rec := doJSON(t, h, "GET", "/v1/sheet/export?kind=leads", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q", ct)
	}

	wantName := sheet.ExportFilename(sheet.KindLeads, time.Now().UTC())
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, wantName) {
		t.Errorf("Content-Disposition = %q, want filename %q", cd, wantName)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "ID,Name,Email,") {
		t.Errorf("body missing header row: %q", body)
	}
	if !strings.Contains(body, "Ada Lovelace") {
		t.Errorf("body missing seeded lead: %q", body)
	}
}

func TestConflictResolutionFlow(t *testing.T) {
	srv, h := newTestServer(t)

	_, err := srv.Stores.Leads.Create(context.Background(), model.Lead{
		ID: "lead-1", Name: "Ada Lovelace", Email: "ada@example.com", Score: 85,
		UpdatedAt: time.Now().UTC().Add(-24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("seed lead: %v", err)
	}

	// Manual policy defers the score conflict instead of merging
	content := "ID,Name,Email,Score\nlead-1,Ada Lovelace,ada@example.com,90\n"
	rec := postSheet(t, h, "leads.csv", content, map[string]string{
		"config": `{"conflictResolution":"manual"}`,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("import status = %d, body %s", rec.Code, rec.Body.String())
	}
	result := decodeBody[sheet.Result](t, rec)
	if result.Skipped != 1 || len(result.Conflicts) != 1 {
		t.Fatalf("result = %+v, want 1 skipped with 1 conflict", result)
	}

	// The conflict is visible out of band
	rec = doJSON(t, h, "GET", "/v1/sheet/conflicts?kind=leads", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("conflicts status = %d", rec.Code)
	}
	pending := decodeBody[[]sheet.ConflictItem](t, rec)
	if len(pending) != 1 || pending[0].Field != "score" {
		t.Fatalf("pending = %+v", pending)
	}

	t.Run("invalid choice", func(t *testing.T) {
		rec := doJSON(t, h, "POST", "/v1/sheet/conflicts/resolve", map[string]string{
			"recordId": "lead-1", "field": "score", "choice": "coin-flip",
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("resolve toward the sheet", func(t *testing.T) {
		rec := doJSON(t, h, "POST", "/v1/sheet/conflicts/resolve", map[string]string{
			"recordId": "lead-1", "field": "score", "choice": "excel",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		item := decodeBody[sheet.ConflictItem](t, rec)
		if !item.Resolved || item.Resolution != sheet.ResolutionIncoming {
			t.Errorf("item = %+v", item)
		}

		lead, _ := srv.Stores.Leads.Get(context.Background(), "lead-1")
		if lead.Score != 90 {
			t.Errorf("Score = %d, want 90", lead.Score)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		rec := doJSON(t, h, "POST", "/v1/sheet/conflicts/resolve", map[string]string{
			"recordId": "lead-1", "field": "score", "choice": "crm",
		})
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
