// Package main converts a Zambian specific-duty schedule from CSV into the
// JSON table embedded by internal/dutytable.
//
// The CSV must have the header
//
//	type,cc_min,cc_max,age_min,age_max,duty_zmw
//
// Duty amounts may use a decimal comma ("15610,50") or thousands separators
// ("15,610.50"); ambiguous forms are rejected.
//
// Usage:
//
//	go run ./tools/generate-duty-table --in schedule.csv [--out FILE] [--strict]
//
// Flags:
//
//	--in      CSV schedule to convert (required)
//	--out     Output JSON file (default: ./internal/dutytable/data/zm_specific_duty.json)
//	--strict  Fail instead of skipping rows with invalid bounds
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/rshade/landedcost/internal/dutytable"
)

const (
	defaultOut = "./internal/dutytable/data/zm_specific_duty.json"

	// expectedMinRows guards against converting a truncated schedule.
	expectedMinRows = 10
)

var header = []string{"type", "cc_min", "cc_max", "age_min", "age_max", "duty_zmw"}

func main() {
	in := flag.String("in", "", "CSV schedule to convert")
	out := flag.String("out", defaultOut, "Output JSON file")
	strict := flag.Bool("strict", false, "Fail on rows with invalid bounds instead of skipping them")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: --in is required")
		os.Exit(2)
	}

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening schedule: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	rows, err := readSchedule(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading schedule: %v\n", err)
		os.Exit(1)
	}

	data, kept, err := buildTable(rows, *strict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote %s (%d rows, %d skipped)\n", *out, kept, len(rows)-kept)
}

// readSchedule parses the CSV into rows. Malformed numbers are errors; bound
// checks are left to buildTable.
func readSchedule(r io.Reader) ([]dutytable.Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	got, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(got) != len(header) {
		return nil, fmt.Errorf("CSV has %d columns, expected %d (%s)", len(got), len(header), strings.Join(header, ","))
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(got[i]), name) {
			return nil, fmt.Errorf("column %d is %q, expected %q", i+1, got[i], name)
		}
	}

	var rows []dutytable.Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(record []string) (dutytable.Row, error) {
	ints := make([]int, 4)
	for i := range ints {
		v, err := strconv.Atoi(strings.TrimSpace(record[i+1]))
		if err != nil {
			return dutytable.Row{}, fmt.Errorf("%s: %w", header[i+1], err)
		}
		ints[i] = v
	}

	duty, err := parseAmount(record[5])
	if err != nil {
		return dutytable.Row{}, fmt.Errorf("duty_zmw: %w", err)
	}

	return dutytable.Row{
		Type:    strings.ToLower(strings.TrimSpace(record[0])),
		CCMin:   ints[0],
		CCMax:   ints[1],
		AgeMin:  ints[2],
		AgeMax:  ints[3],
		DutyZMW: duty,
	}, nil
}

// parseAmount accepts "15610", "15610.50", a decimal comma ("15610,50") and
// thousands separators ("15,610", "15,610.50"). A single comma followed by
// one or two digits is a decimal comma; any other comma must separate groups
// of three digits. Everything else is rejected rather than guessed.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}
	if !strings.Contains(s, ",") {
		return strconv.ParseFloat(s, 64)
	}

	intPart, frac, hasDot := strings.Cut(s, ".")
	if !hasDot && strings.Count(s, ",") == 1 {
		whole, decimals, _ := strings.Cut(s, ",")
		if len(decimals) >= 1 && len(decimals) <= 2 && isDigits(decimals) && isDigits(whole) {
			return strconv.ParseFloat(whole+"."+decimals, 64)
		}
	}
	if !validThousands(intPart) {
		return 0, fmt.Errorf("ambiguous separators in %q", s)
	}
	n := strings.ReplaceAll(intPart, ",", "")
	if hasDot {
		n += "." + frac
	}
	return strconv.ParseFloat(n, 64)
}

// validThousands reports whether s is digits grouped in threes by commas,
// with a leading group of one to three digits.
func validThousands(s string) bool {
	groups := strings.Split(s, ",")
	if len(groups[0]) < 1 || len(groups[0]) > 3 || !isDigits(groups[0]) {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 || !isDigits(g) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// buildTable validates rows the same way the runtime loader does and returns
// the indented JSON for the rows that survive.
func buildTable(rows []dutytable.Row, strict bool) ([]byte, int, error) {
	table := dutytable.New(rows, "csv")
	kept := table.Len()

	if strict && kept != len(rows) {
		return nil, kept, fmt.Errorf("%d of %d rows have invalid bounds", len(rows)-kept, len(rows))
	}
	if kept < expectedMinRows {
		return nil, kept, fmt.Errorf("only %d valid rows, expected at least %d", kept, expectedMinRows)
	}

	data, err := json.MarshalIndent(table.Rows(), "", "  ")
	if err != nil {
		return nil, kept, fmt.Errorf("failed to encode table: %w", err)
	}
	return append(data, '\n'), kept, nil
}
