package sheet

import (
	"strings"
	"testing"
	"time"

	"github.com/shamscripts/crm-followup/internal/model"
)

func TestRenderLeads(t *testing.T) {
	ts := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	leads := []model.Lead{
		{
			ID: "lead-1", Name: "Ada Lovelace", Email: "ada@example.com",
			Status: "active", Stage: "prospect", Priority: "high", Score: 85,
			Tags: []string{"vip", "q3"}, CreatedAt: ts, UpdatedAt: ts,
		},
	}

	out := RenderLeads(leads)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header + 1 record", len(lines))
	}

	if !strings.HasPrefix(lines[0], "ID,Name,Email,Phone,") {
		t.Errorf("header = %q", lines[0])
	}
	row := lines[1]
	for _, want := range []string{"lead-1", "Ada Lovelace", "85", "vip;q3", "2026-03-15"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q missing %q", row, want)
		}
	}
}

func TestRenderLeadsEmpty(t *testing.T) {
	out := RenderLeads(nil)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("empty export should still carry the header row, got %q", out)
	}
}

func TestRenderCompanies(t *testing.T) {
	companies := []model.Company{
		{ID: "co-1", Name: "Initech", Industry: "Software", Size: "51-200"},
	}

	out := RenderCompanies(companies)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "ID,Name,Industry,Size,Phone,Email,Notes,Created At,Updated At" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "co-1,Initech,Software,51-200,") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", ""},
		{"has, comma", `"has, comma"`},
		{`say "hi"`, `"say ""hi"""`},
		{`both, "kinds"`, `"both, ""kinds"""`},
	}

	for _, tt := range tests {
		if got := escapeCell(tt.in); got != tt.want {
			t.Errorf("escapeCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderLeadsEscapesNotes(t *testing.T) {
	leads := []model.Lead{
		{ID: "lead-1", Name: "Ada", Notes: "met at conf, follow up"},
	}
	out := RenderLeads(leads)
	if !strings.Contains(out, `"met at conf, follow up"`) {
		t.Errorf("comma value not quoted: %q", out)
	}
}
