package sheet

import (
	"reflect"
	"testing"
	"time"

	"github.com/shamscripts/crm-followup/internal/model"
)

var resolveNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func resolveFixture() (model.Lead, model.Lead, []ConflictItem) {
	existing := model.Lead{
		ID:        "lead-1",
		Name:      "Ada Lovelace",
		Phone:     "555-0100",
		Score:     85,
		Notes:     "met at conference",
		UpdatedAt: resolveNow.Add(-48 * time.Hour),
	}
	incoming := existing
	incoming.Phone = "555-0199"
	incoming.Score = 90
	incoming.UpdatedAt = resolveNow.Add(-time.Hour)

	return existing, incoming, DetectLeadConflicts(existing, incoming)
}

func TestResolveLeadCRMPolicy(t *testing.T) {
	existing, incoming, conflicts := resolveFixture()

	merged, stamped, ok := ResolveLead(existing, incoming, conflicts, PolicyCRM, resolveNow)
	if !ok {
		t.Fatal("crm policy must merge")
	}
	if merged.Phone != "555-0100" || merged.Score != 85 {
		t.Errorf("crm policy must keep stored values, got phone=%q score=%d", merged.Phone, merged.Score)
	}
	if !merged.UpdatedAt.Equal(resolveNow) {
		t.Errorf("UpdatedAt = %v, want resolution time", merged.UpdatedAt)
	}
	for _, c := range stamped {
		if !c.Resolved || c.Resolution != ResolutionExisting {
			t.Errorf("conflict not stamped existing: %+v", c)
		}
	}
}

func TestResolveLeadExcelPolicy(t *testing.T) {
	existing, incoming, conflicts := resolveFixture()

	merged, stamped, ok := ResolveLead(existing, incoming, conflicts, PolicyExcel, resolveNow)
	if !ok {
		t.Fatal("excel policy must merge")
	}
	if merged.Phone != "555-0199" || merged.Score != 90 {
		t.Errorf("excel policy must take sheet values, got phone=%q score=%d", merged.Phone, merged.Score)
	}
	// Non-conflicting fields keep their stored values
	if merged.Notes != "met at conference" {
		t.Errorf("non-conflicting field changed: %q", merged.Notes)
	}
	for _, c := range stamped {
		if !c.Resolved || c.Resolution != ResolutionIncoming {
			t.Errorf("conflict not stamped incoming: %+v", c)
		}
	}
}

func TestResolveLeadManualPolicy(t *testing.T) {
	existing, incoming, conflicts := resolveFixture()

	merged, stamped, ok := ResolveLead(existing, incoming, conflicts, PolicyManual, resolveNow)
	if ok {
		t.Fatal("manual policy must not merge")
	}
	if !reflect.DeepEqual(merged, existing) {
		t.Errorf("manual policy must leave the record untouched: %+v", merged)
	}
	if len(stamped) != len(conflicts) {
		t.Fatalf("stamped = %d, want %d", len(stamped), len(conflicts))
	}
	for _, c := range stamped {
		if c.Resolved || c.Resolution != ResolutionManualPending {
			t.Errorf("conflict not deferred: %+v", c)
		}
	}
}

func TestResolveManualNoConflictsMerges(t *testing.T) {
	// Manual only defers when there is something to decide; a conflict-free
	// match goes through as a normal update.
	existing, incoming, _ := resolveFixture()
	incoming = existing

	merged, stamped, ok := ResolveLead(existing, incoming, nil, PolicyManual, resolveNow)
	if !ok {
		t.Fatal("conflict-free manual resolution must merge")
	}
	if len(stamped) != 0 {
		t.Errorf("stamped = %v, want none", stamped)
	}
	if merged.Phone != existing.Phone || merged.Score != existing.Score {
		t.Errorf("merged record changed: %+v", merged)
	}
	if !merged.UpdatedAt.Equal(resolveNow) {
		t.Errorf("UpdatedAt = %v, want resolution time", merged.UpdatedAt)
	}

	company := model.Company{ID: "co-1", Name: "Initech", UpdatedAt: resolveNow.Add(-time.Hour)}
	mergedCo, _, ok := ResolveCompany(company, company, nil, PolicyManual, resolveNow)
	if !ok {
		t.Fatal("conflict-free manual company resolution must merge")
	}
	if !mergedCo.UpdatedAt.Equal(resolveNow) {
		t.Errorf("company UpdatedAt = %v, want resolution time", mergedCo.UpdatedAt)
	}
}

func TestResolveLeadNewestPolicy(t *testing.T) {
	tests := []struct {
		name         string
		incomingAge  time.Duration // relative to existing.UpdatedAt
		wantIncoming bool
	}{
		{"incoming newer", +time.Hour, true},
		{"incoming older", -time.Hour, false},
		// Equal timestamps are not strictly newer, so the stored side wins
		{"equal timestamps", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing, incoming, _ := resolveFixture()
			incoming.UpdatedAt = existing.UpdatedAt.Add(tt.incomingAge)
			conflicts := DetectLeadConflicts(existing, incoming)

			merged, stamped, ok := ResolveLead(existing, incoming, conflicts, PolicyNewest, resolveNow)
			if !ok {
				t.Fatal("newest policy must merge")
			}

			wantPhone, wantRes := "555-0100", ResolutionExisting
			if tt.wantIncoming {
				wantPhone, wantRes = "555-0199", ResolutionIncoming
			}
			if merged.Phone != wantPhone {
				t.Errorf("Phone = %q, want %q", merged.Phone, wantPhone)
			}
			for _, c := range stamped {
				if c.Resolution != wantRes {
					t.Errorf("Resolution = %q, want %q", c.Resolution, wantRes)
				}
			}
		})
	}
}

func TestResolveLeadNewestDecidedPerRecord(t *testing.T) {
	// One timestamp comparison decides every conflicting field; there is no
	// per-field mixing.
	existing, incoming, conflicts := resolveFixture()
	incoming.UpdatedAt = existing.UpdatedAt.Add(time.Hour)

	merged, _, _ := ResolveLead(existing, incoming, conflicts, PolicyNewest, resolveNow)
	if merged.Phone != incoming.Phone || merged.Score != incoming.Score {
		t.Errorf("all conflicting fields must follow one decision: %+v", merged)
	}
}

func TestResolveCompany(t *testing.T) {
	existing := model.Company{
		ID:        "co-1",
		Name:      "Initech",
		Industry:  "Software",
		Notes:     "renewal due in june",
		UpdatedAt: resolveNow.Add(-24 * time.Hour),
	}
	incoming := existing
	incoming.Industry = "Fintech"
	incoming.UpdatedAt = resolveNow
	conflicts := DetectCompanyConflicts(existing, incoming)

	merged, stamped, ok := ResolveCompany(existing, incoming, conflicts, PolicyNewest, resolveNow)
	if !ok {
		t.Fatal("newest policy must merge")
	}
	if merged.Industry != "Fintech" {
		t.Errorf("Industry = %q, want Fintech", merged.Industry)
	}
	if merged.Notes != "renewal due in june" {
		t.Errorf("non-conflicting field changed: %q", merged.Notes)
	}
	if len(stamped) != 1 || stamped[0].Resolution != ResolutionIncoming {
		t.Errorf("unexpected stamped conflicts: %v", stamped)
	}
}

func TestResolveLeadDeterministic(t *testing.T) {
	// Same inputs, same outputs, every time.
	existing, incoming, conflicts := resolveFixture()

	first, _, _ := ResolveLead(existing, incoming, conflicts, PolicyExcel, resolveNow)
	for i := 0; i < 5; i++ {
		again, _, _ := ResolveLead(existing, incoming, conflicts, PolicyExcel, resolveNow)
		if again.Phone != first.Phone || again.Score != first.Score || !again.UpdatedAt.Equal(first.UpdatedAt) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}
