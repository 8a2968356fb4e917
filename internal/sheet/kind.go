// Package sheet implements the spreadsheet import/export engine: parsing
// delimited text into rows, mapping rows onto CRM records, matching them
// against stored records, detecting field-level conflicts, and merging under
// a configurable resolution policy.
package sheet

import "strings"

// Kind selects which record pipeline a sheet routes to.
type Kind string

const (
	KindLeads     Kind = "leads"
	KindCompanies Kind = "companies"
)

// KindForFilename routes an uploaded file to a pipeline. Filenames containing
// "lead" go to the lead pipeline, everything else to companies.
func KindForFilename(name string) Kind {
	if strings.Contains(strings.ToLower(name), "lead") {
		return KindLeads
	}
	return KindCompanies
}
