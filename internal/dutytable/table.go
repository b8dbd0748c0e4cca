// Package dutytable holds the Zambian specific-duty schedule: an ordered list of
// flat duty amounts keyed by vehicle type, engine capacity and vehicle age.
package dutytable

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

//go:embed data/zm_specific_duty.json
var defaultTableJSON []byte

// Row is one specific-duty rule. All bounds are inclusive.
//
// The JSON field names are consumed by external tooling that regenerates the
// schedule, so they must not change.
type Row struct {
	// Type is the vehicle category (e.g. "sedan", "suv", "pickup").
	Type string `json:"type"`

	// CCMin and CCMax bound the engine capacity in cubic centimetres.
	CCMin int `json:"cc_min"`
	CCMax int `json:"cc_max"`

	// AgeMin and AgeMax bound the vehicle age in whole years.
	AgeMin int `json:"age_min"`
	AgeMax int `json:"age_max"`

	// DutyZMW is the flat duty in Zambian kwacha.
	DutyZMW float64 `json:"duty_zmw"`
}

// Matches reports whether the row applies to a vehicle of the given type,
// engine capacity and age. Type comparison ignores case and surrounding spaces.
func (r Row) Matches(vehicleType string, cc, ageYears int) bool {
	if !strings.EqualFold(strings.TrimSpace(r.Type), strings.TrimSpace(vehicleType)) {
		return false
	}
	return cc >= r.CCMin && cc <= r.CCMax && ageYears >= r.AgeMin && ageYears <= r.AgeMax
}

// Table is an immutable, ordered specific-duty schedule.
// It is safe for concurrent use.
type Table struct {
	rows   []Row
	source string
}

// New builds a Table from rows, keeping their order. Rows with inverted or
// negative bounds, an empty type or a negative duty are dropped with a warning.
func New(rows []Row, source string) *Table {
	kept := make([]Row, 0, len(rows))
	for i, r := range rows {
		if reason := invalidReason(r); reason != "" {
			logger().Warn().
				Str("source", source).
				Int("row", i).
				Str("type", r.Type).
				Str("reason", reason).
				Msg("skipping invalid specific-duty row")
			continue
		}
		kept = append(kept, r)
	}
	return &Table{rows: kept, source: source}
}

func invalidReason(r Row) string {
	switch {
	case strings.TrimSpace(r.Type) == "":
		return "empty type"
	case r.CCMin < 0 || r.AgeMin < 0:
		return "negative lower bound"
	case r.CCMin > r.CCMax:
		return "cc_min greater than cc_max"
	case r.AgeMin > r.AgeMax:
		return "age_min greater than age_max"
	case r.DutyZMW < 0:
		return "negative duty"
	}
	return ""
}

// Parse decodes a JSON array of rows. It fails only when the document itself
// cannot be decoded; individual bad rows are skipped (see New).
func Parse(data []byte, source string) (*Table, error) {
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse specific-duty table %s: %w", source, err)
	}
	t := New(rows, source)
	logger().Info().
		Str("source", source).
		Int("rows", len(t.rows)).
		Int("skipped", len(rows)-len(t.rows)).
		Msg("specific-duty table loaded")
	return t, nil
}

// LoadFile reads and parses a specific-duty table from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specific-duty table: %w", err)
	}
	return Parse(data, path)
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the embedded schedule, parsing it on first use.
// If the embedded document is unreadable the error is logged and an empty
// table is returned, so every lookup takes the fallback path.
func Default() *Table {
	defaultTableOnce.Do(func() {
		t, err := Parse(defaultTableJSON, "embedded")
		if err != nil {
			logger().Error().Err(err).Msg("failed to load embedded specific-duty table")
			t = New(nil, "embedded")
		}
		defaultTable = t
	})
	return defaultTable
}

// Lookup returns the first row matching the vehicle, scanning in table order.
// The second result is false when no row matches.
func (t *Table) Lookup(vehicleType string, cc, ageYears int) (Row, bool) {
	if t == nil {
		return Row{}, false
	}
	for _, r := range t.rows {
		if r.Matches(vehicleType, cc, ageYears) {
			return r, true
		}
	}
	return Row{}, false
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Source describes where the table was loaded from.
func (t *Table) Source() string {
	if t == nil {
		return ""
	}
	return t.source
}

// Rows returns a copy of the table rows in lookup order.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Types returns the distinct vehicle types in first-seen order.
func (t *Table) Types() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool)
	var types []string
	for _, r := range t.rows {
		key := strings.ToLower(strings.TrimSpace(r.Type))
		if seen[key] {
			continue
		}
		seen[key] = true
		types = append(types, key)
	}
	return types
}
