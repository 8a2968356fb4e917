package sheet

import "testing"

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig(KindLeads)
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero header row", func(c *Config) { c.HeaderRow = 0 }},
		{"negative start row", func(c *Config) { c.StartRow = -1 }},
		{"unknown policy", func(c *Config) { c.ConflictResolution = "coin-flip" }},
		{"empty policy", func(c *Config) { c.ConflictResolution = "" }},
		{"no field mappings", func(c *Config) { c.FieldMappings = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(KindLeads)
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDefaultMappingsMatchExportHeaders(t *testing.T) {
	// Every column the exporter writes for a mapped field must be reachable
	// through the default mappings, so an export re-imports cleanly.
	leadHeaders := make(map[string]bool)
	for _, col := range leadExportColumns {
		leadHeaders[col.header] = true
	}
	for field, col := range DefaultLeadMappings() {
		if !leadHeaders[col] {
			t.Errorf("lead field %q maps to column %q, which the exporter never writes", field, col)
		}
	}

	companyHeaders := make(map[string]bool)
	for _, col := range companyExportColumns {
		companyHeaders[col.header] = true
	}
	for field, col := range DefaultCompanyMappings() {
		if !companyHeaders[col] {
			t.Errorf("company field %q maps to column %q, which the exporter never writes", field, col)
		}
	}
}

func TestKindForFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"leads_export_2026-03-15.csv", KindLeads},
		{"MY-LEADS.CSV", KindLeads},
		{"companies_export_2026-03-15.csv", KindCompanies},
		{"accounts.csv", KindCompanies},
		{"", KindCompanies},
	}

	for _, tt := range tests {
		if got := KindForFilename(tt.filename); got != tt.want {
			t.Errorf("KindForFilename(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
