package sheet

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shamscripts/crm-followup/internal/model"
)

// ResolveLead merges an incoming lead into an existing one under the given
// policy. It returns the merged record, the conflict items stamped with
// their outcome, and whether a merge happened at all.
//
// Under PolicyManual a nonzero conflict list is never merged: the existing
// record comes back untouched, every item is marked manual-pending, and
// merged=false tells the caller to skip the update and surface the conflicts
// instead. A conflict-free match merges under every policy, manual included;
// there is nothing to defer.
//
// Merging only ever touches fields flagged as conflicting; everything else
// keeps its existing value. PolicyNewest is decided once for the whole
// record with a single strictly-later timestamp comparison, so either all
// conflicting fields take the incoming value or none do.
func ResolveLead(existing, incoming model.Lead, conflicts []ConflictItem, policy Policy, now time.Time) (model.Lead, []ConflictItem, bool) {
	if policy == PolicyManual && len(conflicts) > 0 {
		out := stampConflicts(conflicts, ResolutionManualPending, false)
		return existing, out, false
	}

	takeIncoming := policy == PolicyExcel
	if policy == PolicyNewest {
		takeIncoming = incoming.UpdatedAt.After(existing.UpdatedAt)
	}

	merged := existing
	resolution := ResolutionExisting
	if takeIncoming {
		resolution = ResolutionIncoming
		for _, c := range conflicts {
			setLeadField(&merged, c.Field, c.ExcelValue)
		}
	}
	merged.UpdatedAt = now

	return merged, stampConflicts(conflicts, resolution, true), true
}

// ResolveCompany is the company counterpart of ResolveLead.
func ResolveCompany(existing, incoming model.Company, conflicts []ConflictItem, policy Policy, now time.Time) (model.Company, []ConflictItem, bool) {
	if policy == PolicyManual && len(conflicts) > 0 {
		out := stampConflicts(conflicts, ResolutionManualPending, false)
		return existing, out, false
	}

	takeIncoming := policy == PolicyExcel
	if policy == PolicyNewest {
		takeIncoming = incoming.UpdatedAt.After(existing.UpdatedAt)
	}

	merged := existing
	resolution := ResolutionExisting
	if takeIncoming {
		resolution = ResolutionIncoming
		for _, c := range conflicts {
			setCompanyField(&merged, c.Field, c.ExcelValue)
		}
	}
	merged.UpdatedAt = now

	return merged, stampConflicts(conflicts, resolution, true), true
}

func stampConflicts(conflicts []ConflictItem, res Resolution, resolved bool) []ConflictItem {
	out := make([]ConflictItem, len(conflicts))
	for i, c := range conflicts {
		c.Resolved = resolved
		c.Resolution = res
		out[i] = c
	}
	return out
}

// setLeadField writes a stringified value back onto a meaningful lead field.
// Field names are the ones DetectLeadConflicts emits.
func setLeadField(l *model.Lead, field, value string) {
	switch field {
	case "name":
		l.Name = value
	case "email":
		l.Email = value
	case "phone":
		l.Phone = value
	case "stage":
		l.Stage = value
	case "priority":
		l.Priority = value
	case "score":
		if n, err := strconv.Atoi(value); err == nil {
			l.Score = n
		}
	case "notes":
		l.Notes = value
	}
}

func setCompanyField(c *model.Company, field, value string) {
	switch field {
	case "name":
		c.Name = value
	case "industry":
		c.Industry = value
	case "size":
		c.Size = value
	case "phone":
		c.Phone = value
	case "email":
		c.Email = value
	case "notes":
		c.Notes = value
	}
}

// conflictKey identifies a deferred conflict across requests.
func conflictKey(recordID, field string) string {
	return fmt.Sprintf("%s/%s", recordID, field)
}
