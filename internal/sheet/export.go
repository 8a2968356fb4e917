package sheet

import (
	"strconv"
	"strings"

	"github.com/shamscripts/crm-followup/internal/model"
)

// dateLayout renders timestamps at calendar-day granularity on export.
const dateLayout = "2006-01-02"

// Export column layouts. Headers deliberately match the default field
// mappings so an export re-imports cleanly under the stock config.
var (
	leadExportColumns = []struct {
		header string
		value  func(model.Lead) string
	}{
		{"ID", func(l model.Lead) string { return l.ID }},
		{"Name", func(l model.Lead) string { return l.Name }},
		{"Email", func(l model.Lead) string { return l.Email }},
		{"Phone", func(l model.Lead) string { return l.Phone }},
		{"Company", func(l model.Lead) string { return l.Company }},
		{"Designation", func(l model.Lead) string { return l.Designation }},
		{"Status", func(l model.Lead) string { return l.Status }},
		{"Stage", func(l model.Lead) string { return l.Stage }},
		{"Priority", func(l model.Lead) string { return l.Priority }},
		{"Score", func(l model.Lead) string { return strconv.Itoa(l.Score) }},
		{"Assigned To", func(l model.Lead) string { return l.AssignedTo }},
		{"Notes", func(l model.Lead) string { return l.Notes }},
		{"Tags", func(l model.Lead) string { return strings.Join(l.Tags, ";") }},
		{"Created At", func(l model.Lead) string { return l.CreatedAt.Format(dateLayout) }},
		{"Updated At", func(l model.Lead) string { return l.UpdatedAt.Format(dateLayout) }},
	}

	companyExportColumns = []struct {
		header string
		value  func(model.Company) string
	}{
		{"ID", func(c model.Company) string { return c.ID }},
		{"Name", func(c model.Company) string { return c.Name }},
		{"Industry", func(c model.Company) string { return c.Industry }},
		{"Size", func(c model.Company) string { return c.Size }},
		{"Phone", func(c model.Company) string { return c.Phone }},
		{"Email", func(c model.Company) string { return c.Email }},
		{"Notes", func(c model.Company) string { return c.Notes }},
		{"Created At", func(c model.Company) string { return c.CreatedAt.Format(dateLayout) }},
		{"Updated At", func(c model.Company) string { return c.UpdatedAt.Format(dateLayout) }},
	}
)

// RenderLeads serializes leads as delimited text: header row first, one row
// per record, newline-joined.
func RenderLeads(leads []model.Lead) string {
	hdr := make([]string, len(leadExportColumns))
	for i, col := range leadExportColumns {
		hdr[i] = col.header
	}

	var b strings.Builder
	writeRow(&b, hdr)
	for _, l := range leads {
		cells := make([]string, len(leadExportColumns))
		for i, col := range leadExportColumns {
			cells[i] = col.value(l)
		}
		writeRow(&b, cells)
	}
	return b.String()
}

// RenderCompanies serializes companies the same way.
func RenderCompanies(companies []model.Company) string {
	hdr := make([]string, len(companyExportColumns))
	for i, col := range companyExportColumns {
		hdr[i] = col.header
	}

	var b strings.Builder
	writeRow(&b, hdr)
	for _, c := range companies {
		cells := make([]string, len(companyExportColumns))
		for i, col := range companyExportColumns {
			cells[i] = col.value(c)
		}
		writeRow(&b, cells)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCell(cell))
	}
	b.WriteByte('\n')
}

// escapeCell quote-wraps a value containing a comma or quote, doubling
// internal quotes. Escaping happens only on the write path; the read path
// does a plain comma split.
func escapeCell(s string) string {
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
