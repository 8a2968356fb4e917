package sheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shamscripts/crm-followup/internal/model"
)

// Mapper converts parsed rows into domain records using a field-mapping
// config. Clock and ID generation are injectable for tests.
type Mapper struct {
	Mappings map[string]string

	Now   func() time.Time
	NewID func() string
}

// NewMapper builds a Mapper from a validated config.
func NewMapper(cfg Config) *Mapper {
	return &Mapper{
		Mappings: cfg.FieldMappings,
		Now:      func() time.Time { return time.Now().UTC() },
		NewID:    uuid.NewString,
	}
}

// field returns the row value for a domain field, going through the
// configured column name. Missing columns and empty cells both come back as
// ("", false).
func (m *Mapper) field(row Row, name string) (string, bool) {
	col, ok := m.Mappings[name]
	if !ok {
		return "", false
	}
	v, ok := row[col]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (m *Mapper) stringField(row Row, name, def string) string {
	if v, ok := m.field(row, name); ok {
		return v
	}
	return def
}

// intField does a best-effort numeric parse, defaulting to 0. Values like
// "85.0" are accepted by falling back to a float parse.
func (m *Mapper) intField(row Row, name string) int {
	v, ok := m.field(row, name)
	if !ok {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

// listField splits a ";"-delimited cell into a list, dropping empty parts.
func (m *Mapper) listField(row Row, name string) []string {
	v, ok := m.field(row, name)
	if !ok {
		return []string{}
	}
	parts := strings.Split(v, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Lead maps one row onto a Lead. Absent fields get their documented
// defaults; a missing ID gets a fresh one; both timestamps are always set to
// now regardless of what the sheet says.
func (m *Mapper) Lead(row Row) model.Lead {
	now := m.Now()

	id, ok := m.field(row, "id")
	if !ok {
		id = m.NewID()
	}

	return model.Lead{
		ID:          id,
		Name:        m.stringField(row, "name", ""),
		Email:       m.stringField(row, "email", ""),
		Phone:       m.stringField(row, "phone", ""),
		Company:     m.stringField(row, "company", ""),
		Designation: m.stringField(row, "designation", ""),
		Status:      m.stringField(row, "status", model.StatusActive),
		Stage:       m.stringField(row, "stage", model.StageProspect),
		Priority:    m.stringField(row, "priority", model.PriorityMedium),
		Score:       m.intField(row, "score"),
		AssignedTo:  m.stringField(row, "assignedTo", ""),
		Notes:       m.stringField(row, "notes", ""),
		Tags:        m.listField(row, "tags"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Company maps one row onto a Company.
func (m *Mapper) Company(row Row) model.Company {
	now := m.Now()

	id, ok := m.field(row, "id")
	if !ok {
		id = m.NewID()
	}

	return model.Company{
		ID:        id,
		Name:      m.stringField(row, "name", ""),
		Industry:  m.stringField(row, "industry", ""),
		Size:      m.stringField(row, "size", ""),
		Phone:     m.stringField(row, "phone", ""),
		Email:     m.stringField(row, "email", ""),
		Notes:     m.stringField(row, "notes", ""),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
