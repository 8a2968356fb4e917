package sheet

import (
	"strconv"

	"github.com/shamscripts/crm-followup/internal/model"
)

// Resolution records which side a conflict was settled in favor of.
type Resolution string

const (
	ResolutionExisting      Resolution = "existing"
	ResolutionIncoming      Resolution = "incoming"
	ResolutionManualPending Resolution = "manual-pending"
)

// ConflictItem describes one field on one record where the stored ("CRM")
// value and the incoming sheet ("excel") value are both non-empty and
// differ. Items live for the duration of a pass unless deferred to a human.
type ConflictItem struct {
	RecordID    string     `json:"recordId"`
	Field       string     `json:"field"`
	CRMValue    string     `json:"crmValue"`
	ExcelValue  string     `json:"excelValue"`
	RecordLabel string     `json:"recordLabel"`
	Resolved    bool       `json:"resolved"`
	Resolution  Resolution `json:"resolution,omitempty"`
}

// The meaningful fields per kind, in emission order. Fields outside these
// lists are never compared.
var (
	leadConflictFields = []struct {
		name string
		get  func(model.Lead) string
	}{
		{"name", func(l model.Lead) string { return l.Name }},
		{"email", func(l model.Lead) string { return l.Email }},
		{"phone", func(l model.Lead) string { return l.Phone }},
		{"stage", func(l model.Lead) string { return l.Stage }},
		{"priority", func(l model.Lead) string { return l.Priority }},
		{"score", func(l model.Lead) string { return strconv.Itoa(l.Score) }},
		{"notes", func(l model.Lead) string { return l.Notes }},
	}

	companyConflictFields = []struct {
		name string
		get  func(model.Company) string
	}{
		{"name", func(c model.Company) string { return c.Name }},
		{"industry", func(c model.Company) string { return c.Industry }},
		{"size", func(c model.Company) string { return c.Size }},
		{"phone", func(c model.Company) string { return c.Phone }},
		{"email", func(c model.Company) string { return c.Email }},
		{"notes", func(c model.Company) string { return c.Notes }},
	}
)

// DetectLeadConflicts compares the meaningful lead fields. A conflict is
// emitted only when both sides are non-empty and unequal after
// stringification; an empty side on either end is never a conflict.
//
// Score is the one numeric field, so its zero value stringifies to "0",
// which counts as non-empty: a stored score of 0 against an incoming 85 is
// a real conflict, not missing data.
func DetectLeadConflicts(existing, incoming model.Lead) []ConflictItem {
	var out []ConflictItem
	for _, f := range leadConflictFields {
		ev, iv := f.get(existing), f.get(incoming)
		if ev == "" || iv == "" || ev == iv {
			continue
		}
		out = append(out, ConflictItem{
			RecordID:    existing.ID,
			Field:       f.name,
			CRMValue:    ev,
			ExcelValue:  iv,
			RecordLabel: existing.Name,
		})
	}
	return out
}

// DetectCompanyConflicts is the company counterpart of DetectLeadConflicts.
func DetectCompanyConflicts(existing, incoming model.Company) []ConflictItem {
	var out []ConflictItem
	for _, f := range companyConflictFields {
		ev, iv := f.get(existing), f.get(incoming)
		if ev == "" || iv == "" || ev == iv {
			continue
		}
		out = append(out, ConflictItem{
			RecordID:    existing.ID,
			Field:       f.name,
			CRMValue:    ev,
			ExcelValue:  iv,
			RecordLabel: existing.Name,
		})
	}
	return out
}
