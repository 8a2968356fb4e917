package sheet

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shamscripts/crm-followup/internal/store"
)

// Result summarizes one import pass. It is built up during the pass, handed
// to the caller, and never persisted.
type Result struct {
	Success   bool           `json:"success"`
	Processed int            `json:"recordsProcessed"`
	Created   int            `json:"recordsCreated"`
	Updated   int            `json:"recordsUpdated"`
	Skipped   int            `json:"recordsSkipped"`
	Conflicts []ConflictItem `json:"conflicts"`
	Errors    []string       `json:"errors"`
}

func newResult() *Result {
	return &Result{
		Conflicts: make([]ConflictItem, 0),
		Errors:    make([]string, 0),
	}
}

// Unresolved counts conflicts still awaiting a human decision.
func (r *Result) Unresolved() int {
	n := 0
	for _, c := range r.Conflicts {
		if !c.Resolved {
			n++
		}
	}
	return n
}

// Service drives import and export passes against the record stores. One
// pass runs to completion before control returns; passes are not run
// concurrently.
type Service struct {
	Leads     store.LeadStore
	Companies store.CompanyStore

	// Pending holds conflicts deferred under the manual policy until a
	// decision arrives out of band.
	Pending *PendingConflicts

	now func() time.Time
}

// NewService creates a sync service over the given stores.
func NewService(leads store.LeadStore, companies store.CompanyStore) *Service {
	return &Service{
		Leads:     leads,
		Companies: companies,
		Pending:   NewPendingConflicts(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Import runs one pass of the requested kind.
func (s *Service) Import(ctx context.Context, kind Kind, content []byte, cfg Config) (*Result, error) {
	if kind == KindLeads {
		return s.ImportLeads(ctx, content, cfg)
	}
	return s.ImportCompanies(ctx, content, cfg)
}

// ImportLeads parses the content and reconciles every row against the lead
// store. A parser failure fails the whole pass; a bad row is recorded and
// skipped, never aborting the pass.
func (s *Service) ImportLeads(ctx context.Context, content []byte, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sync config: %w", err)
	}

	result := newResult()

	rows, err := Parse(content, cfg.HeaderRow, cfg.StartRow)
	if err != nil {
		return result, err
	}

	existing, err := s.Leads.ListAll(ctx)
	if err != nil {
		return result, fmt.Errorf("load leads: %w", err)
	}

	mapper := NewMapper(cfg)

	for _, row := range rows {
		result.Processed++
		candidate := mapper.Lead(row)

		match, found := MatchLead(candidate, existing)
		if !found {
			if !cfg.CreateMissingRecords {
				result.Skipped++
				continue
			}
			if _, err := s.Leads.Create(ctx, candidate); err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("row %d: create failed: %v", result.Processed, err))
				continue
			}
			result.Created++
			continue
		}

		if !cfg.UpdateExistingRecords {
			result.Skipped++
			continue
		}

		conflicts := DetectLeadConflicts(match, candidate)
		merged, stamped, ok := ResolveLead(match, candidate, conflicts, cfg.ConflictResolution, s.now())
		if !ok {
			// Manual policy: leave the record untouched, surface the
			// conflicts, move on.
			result.Skipped++
			result.Conflicts = append(result.Conflicts, stamped...)
			s.Pending.Add(KindLeads, stamped)
			continue
		}

		if _, err := s.Leads.Update(ctx, merged); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d: update failed: %v", result.Processed, err))
			continue
		}
		result.Updated++
	}

	result.Success = true
	log.Info().
		Int("processed", result.Processed).
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Int("conflicts", len(result.Conflicts)).
		Int("errors", len(result.Errors)).
		Msg("lead import pass finished")
	return result, nil
}

// ImportCompanies is the company counterpart of ImportLeads.
func (s *Service) ImportCompanies(ctx context.Context, content []byte, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sync config: %w", err)
	}

	result := newResult()

	rows, err := Parse(content, cfg.HeaderRow, cfg.StartRow)
	if err != nil {
		return result, err
	}

	existing, err := s.Companies.ListAll(ctx)
	if err != nil {
		return result, fmt.Errorf("load companies: %w", err)
	}

	mapper := NewMapper(cfg)

	for _, row := range rows {
		result.Processed++
		candidate := mapper.Company(row)

		match, found := MatchCompany(candidate, existing)
		if !found {
			if !cfg.CreateMissingRecords {
				result.Skipped++
				continue
			}
			if _, err := s.Companies.Create(ctx, candidate); err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("row %d: create failed: %v", result.Processed, err))
				continue
			}
			result.Created++
			continue
		}

		if !cfg.UpdateExistingRecords {
			result.Skipped++
			continue
		}

		conflicts := DetectCompanyConflicts(match, candidate)
		merged, stamped, ok := ResolveCompany(match, candidate, conflicts, cfg.ConflictResolution, s.now())
		if !ok {
			result.Skipped++
			result.Conflicts = append(result.Conflicts, stamped...)
			s.Pending.Add(KindCompanies, stamped)
			continue
		}

		if _, err := s.Companies.Update(ctx, merged); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d: update failed: %v", result.Processed, err))
			continue
		}
		result.Updated++
	}

	result.Success = true
	log.Info().
		Int("processed", result.Processed).
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Int("conflicts", len(result.Conflicts)).
		Int("errors", len(result.Errors)).
		Msg("company import pass finished")
	return result, nil
}

// Export reads the full collection of the requested kind and renders it as
// delimited text.
func (s *Service) Export(ctx context.Context, kind Kind) (string, error) {
	if kind == KindLeads {
		leads, err := s.Leads.ListAll(ctx)
		if err != nil {
			return "", fmt.Errorf("load leads: %w", err)
		}
		return RenderLeads(leads), nil
	}

	companies, err := s.Companies.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("load companies: %w", err)
	}
	return RenderCompanies(companies), nil
}

// ResolveConflict applies a human decision to a previously deferred
// conflict: choice "crm" keeps the stored value, "excel" writes the sheet
// value onto the record. The record is updated in the store and the
// resolved item is returned.
func (s *Service) ResolveConflict(ctx context.Context, recordID, field string, choice Resolution) (ConflictItem, error) {
	kind, item, ok := s.Pending.Take(recordID, field)
	if !ok {
		return ConflictItem{}, fmt.Errorf("no pending conflict for record %s field %s", recordID, field)
	}

	var value string
	switch choice {
	case ResolutionExisting:
		value = item.CRMValue
	case ResolutionIncoming:
		value = item.ExcelValue
	default:
		// Put it back; the decision was invalid.
		s.Pending.Add(kind, []ConflictItem{item})
		return ConflictItem{}, fmt.Errorf("invalid resolution choice %q", choice)
	}

	now := s.now()
	if kind == KindLeads {
		lead, err := s.Leads.Get(ctx, recordID)
		if err != nil {
			return ConflictItem{}, fmt.Errorf("load lead %s: %w", recordID, err)
		}
		setLeadField(&lead, field, value)
		lead.UpdatedAt = now
		if _, err := s.Leads.Update(ctx, lead); err != nil {
			return ConflictItem{}, fmt.Errorf("update lead %s: %w", recordID, err)
		}
	} else {
		company, err := s.Companies.Get(ctx, recordID)
		if err != nil {
			return ConflictItem{}, fmt.Errorf("load company %s: %w", recordID, err)
		}
		setCompanyField(&company, field, value)
		company.UpdatedAt = now
		if _, err := s.Companies.Update(ctx, company); err != nil {
			return ConflictItem{}, fmt.Errorf("update company %s: %w", recordID, err)
		}
	}

	item.Resolved = true
	item.Resolution = choice
	return item, nil
}

// ExportFilename builds the download filename for an export pass.
func ExportFilename(kind Kind, day time.Time) string {
	return fmt.Sprintf("%s_export_%s.csv", kind, day.Format("2006-01-02"))
}
