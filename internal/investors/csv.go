// Package investors loads the fundraising target list from directory
// CSV exports.
package investors

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"runway/internal/model"
)

// Expected column order of a directory export. The first row is a
// header and is always skipped.
const expectedColumns = 7

// ParseCSV reads a directory export. Rows with a blank firm name are
// skipped, short rows are padded with empty fields, and surrounding
// whitespace is trimmed everywhere.
func ParseCSV(r io.Reader) ([]model.Investor, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var out []model.Investor
	for _, rec := range records[1:] {
		inv, ok := parseRecord(rec)
		if !ok {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func parseRecord(rec []string) (model.Investor, bool) {
	fields := make([]string, expectedColumns)
	for i := 0; i < expectedColumns && i < len(rec); i++ {
		fields[i] = strings.TrimSpace(rec[i])
	}
	if fields[0] == "" {
		return model.Investor{}, false
	}
	return model.Investor{
		FirmName:      fields[0],
		Type:          fields[1],
		Location:      fields[2],
		Website:       fields[3],
		OfficeContact: fields[4],
		Portfolio:     fields[5],
		Focus:         fields[6],
	}, true
}

// ImportFile parses the CSV at the given path.
func ImportFile(path string) ([]model.Investor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ParseCSV(f)
}
