package sheet

import (
	"testing"

	"github.com/shamscripts/crm-followup/internal/model"
)

func TestDetectLeadConflicts(t *testing.T) {
	existing := model.Lead{
		ID:    "lead-1",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0100",
		Stage: "prospect",
		Score: 85,
	}

	t.Run("differing non-empty fields conflict", func(t *testing.T) {
		incoming := existing
		incoming.Phone = "555-0199"
		incoming.Score = 90

		got := DetectLeadConflicts(existing, incoming)
		if len(got) != 2 {
			t.Fatalf("conflicts = %d, want 2: %v", len(got), got)
		}
		// Emission follows the fixed field order: phone before score
		if got[0].Field != "phone" || got[1].Field != "score" {
			t.Errorf("field order = [%s %s], want [phone score]", got[0].Field, got[1].Field)
		}
		if got[1].CRMValue != "85" || got[1].ExcelValue != "90" {
			t.Errorf("score conflict = %q vs %q, want 85 vs 90", got[1].CRMValue, got[1].ExcelValue)
		}
		for _, c := range got {
			if c.RecordID != "lead-1" || c.RecordLabel != "Ada Lovelace" {
				t.Errorf("conflict identity wrong: %+v", c)
			}
			if c.Resolved {
				t.Errorf("freshly detected conflict must be unresolved: %+v", c)
			}
		}
	})

	t.Run("empty incoming side is not a conflict", func(t *testing.T) {
		incoming := existing
		incoming.Phone = ""
		if got := DetectLeadConflicts(existing, incoming); len(got) != 0 {
			t.Errorf("conflicts = %v, want none", got)
		}
	})

	t.Run("empty existing side is not a conflict", func(t *testing.T) {
		base := existing
		base.Notes = ""
		incoming := base
		incoming.Notes = "fresh notes from the sheet"
		if got := DetectLeadConflicts(base, incoming); len(got) != 0 {
			t.Errorf("conflicts = %v, want none", got)
		}
	})

	t.Run("equal records produce no conflicts", func(t *testing.T) {
		if got := DetectLeadConflicts(existing, existing); len(got) != 0 {
			t.Errorf("conflicts = %v, want none", got)
		}
	})

	t.Run("score zero counts as a value", func(t *testing.T) {
		// 0 stringifies to "0", not "", so 0 vs 85 is a real conflict.
		incoming := existing
		incoming.Score = 0
		got := DetectLeadConflicts(existing, incoming)
		if len(got) != 1 || got[0].Field != "score" {
			t.Fatalf("conflicts = %v, want one score conflict", got)
		}
		if got[0].ExcelValue != "0" {
			t.Errorf("ExcelValue = %q, want \"0\"", got[0].ExcelValue)
		}
	})

	t.Run("fields outside the meaningful set are ignored", func(t *testing.T) {
		incoming := existing
		incoming.Company = "Somewhere Else"
		incoming.Designation = "CTO"
		incoming.AssignedTo = "someone"
		if got := DetectLeadConflicts(existing, incoming); len(got) != 0 {
			t.Errorf("conflicts = %v, want none", got)
		}
	})
}

func TestDetectCompanyConflicts(t *testing.T) {
	existing := model.Company{
		ID:       "co-1",
		Name:     "Initech",
		Industry: "Software",
		Size:     "51-200",
	}
	incoming := existing
	incoming.Industry = "Fintech"
	incoming.Size = ""

	got := DetectCompanyConflicts(existing, incoming)
	if len(got) != 1 {
		t.Fatalf("conflicts = %d, want 1: %v", len(got), got)
	}
	if got[0].Field != "industry" || got[0].CRMValue != "Software" || got[0].ExcelValue != "Fintech" {
		t.Errorf("unexpected conflict: %+v", got[0])
	}
	if got[0].RecordLabel != "Initech" {
		t.Errorf("RecordLabel = %q, want Initech", got[0].RecordLabel)
	}
}

func TestDetectConflictsSwappedSides(t *testing.T) {
	// Swapping the sides flips CRMValue and ExcelValue but finds the same
	// field set.
	a := model.Lead{ID: "x", Name: "A", Phone: "1"}
	b := model.Lead{ID: "x", Name: "A", Phone: "2"}

	ab := DetectLeadConflicts(a, b)
	ba := DetectLeadConflicts(b, a)
	if len(ab) != 1 || len(ba) != 1 {
		t.Fatalf("conflicts = %d/%d, want 1/1", len(ab), len(ba))
	}
	if ab[0].CRMValue != ba[0].ExcelValue || ab[0].ExcelValue != ba[0].CRMValue {
		t.Errorf("sides did not flip: %+v vs %+v", ab[0], ba[0])
	}
}
