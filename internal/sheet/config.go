package sheet

import "fmt"

// Policy controls how field conflicts between a stored record and an
// incoming row are resolved.
type Policy string

const (
	// PolicyCRM keeps the stored value for every conflicting field.
	PolicyCRM Policy = "crm"
	// PolicyExcel takes the sheet value for every conflicting field.
	PolicyExcel Policy = "excel"
	// PolicyManual defers every conflicting row to a human decision; the row
	// is skipped and its conflicts surface in the result.
	PolicyManual Policy = "manual"
	// PolicyNewest takes the sheet values only when the incoming record is
	// strictly newer than the stored one, decided once per record.
	PolicyNewest Policy = "newest"
)

// Config describes one import pass. It is validated once up front and not
// mutated afterwards.
type Config struct {
	// SheetName is carried for callers that track multi-tab workbooks; the
	// text parser itself does not use it.
	SheetName string `json:"sheetName"`

	// HeaderRow and StartRow are 1-based line indexes into the raw file.
	HeaderRow int `json:"headerRow"`
	StartRow  int `json:"startRow"`

	// FieldMappings maps domain field names to source column names.
	FieldMappings map[string]string `json:"fieldMappings"`

	ConflictResolution    Policy `json:"conflictResolution"`
	CreateMissingRecords  bool   `json:"createMissingRecords"`
	UpdateExistingRecords bool   `json:"updateExistingRecords"`
}

// Validate checks the config before a pass starts.
func (c Config) Validate() error {
	if c.HeaderRow < 1 {
		return fmt.Errorf("headerRow must be >= 1, got %d", c.HeaderRow)
	}
	if c.StartRow < 1 {
		return fmt.Errorf("startRow must be >= 1, got %d", c.StartRow)
	}
	switch c.ConflictResolution {
	case PolicyCRM, PolicyExcel, PolicyManual, PolicyNewest:
	default:
		return fmt.Errorf("unknown conflict resolution policy %q", c.ConflictResolution)
	}
	if len(c.FieldMappings) == 0 {
		return fmt.Errorf("fieldMappings must not be empty")
	}
	return nil
}

// DefaultLeadMappings maps lead fields to the column names the exporter
// writes, so an exported sheet re-imports under the default config.
func DefaultLeadMappings() map[string]string {
	return map[string]string{
		"id":          "ID",
		"name":        "Name",
		"email":       "Email",
		"phone":       "Phone",
		"company":     "Company",
		"designation": "Designation",
		"status":      "Status",
		"stage":       "Stage",
		"priority":    "Priority",
		"score":       "Score",
		"assignedTo":  "Assigned To",
		"notes":       "Notes",
		"tags":        "Tags",
	}
}

// DefaultCompanyMappings is the company counterpart of DefaultLeadMappings.
func DefaultCompanyMappings() map[string]string {
	return map[string]string{
		"id":       "ID",
		"name":     "Name",
		"industry": "Industry",
		"size":     "Size",
		"phone":    "Phone",
		"email":    "Email",
		"notes":    "Notes",
	}
}

// DefaultConfig returns the stock import config for a kind: header on the
// first line, data from the second, newest-wins resolution, create and
// update both enabled.
func DefaultConfig(kind Kind) Config {
	cfg := Config{
		HeaderRow:             1,
		StartRow:              2,
		ConflictResolution:    PolicyNewest,
		CreateMissingRecords:  true,
		UpdateExistingRecords: true,
	}
	if kind == KindLeads {
		cfg.FieldMappings = DefaultLeadMappings()
	} else {
		cfg.FieldMappings = DefaultCompanyMappings()
	}
	return cfg
}
