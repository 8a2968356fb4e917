package sheet

import "github.com/shamscripts/crm-followup/internal/model"

// MatchLead finds the stored lead a candidate corresponds to: by ID first,
// then by email (the lead natural key). The ID scan runs over the whole
// collection before natural keys are considered, so an ID match always wins
// even when a different record shares the candidate's email.
func MatchLead(candidate model.Lead, existing []model.Lead) (model.Lead, bool) {
	if candidate.ID != "" {
		for _, l := range existing {
			if l.ID == candidate.ID {
				return l, true
			}
		}
	}
	if candidate.Email != "" {
		for _, l := range existing {
			if l.Email == candidate.Email {
				return l, true
			}
		}
	}
	return model.Lead{}, false
}

// MatchCompany is the company counterpart; the natural key is the name.
func MatchCompany(candidate model.Company, existing []model.Company) (model.Company, bool) {
	if candidate.ID != "" {
		for _, c := range existing {
			if c.ID == candidate.ID {
				return c, true
			}
		}
	}
	if candidate.Name != "" {
		for _, c := range existing {
			if c.Name == candidate.Name {
				return c, true
			}
		}
	}
	return model.Company{}, false
}
