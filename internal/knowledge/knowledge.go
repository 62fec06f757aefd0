// Package knowledge loads the skincare knowledge table from CSV.
package knowledge

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/skin-advisor/internal/skincare"
)

var (
	// ErrNoRows is returned when a table source holds a header but no data.
	ErrNoRows = errors.New("knowledge table has no rows")
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("knowledge table is missing a required column")
)

// Columns lists the header names every knowledge table must provide.
var Columns = []string{"keywords", "skin_type", "issue_category", "ingredients", "product"}

//go:embed skincare_knowledge.csv
var defaultTable []byte

// Load reads the knowledge table at path. An empty path loads the built-in table.
func Load(path string) (*skincare.Table, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening knowledge file %q: %w", path, err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing knowledge file %q: %w", path, err)
	}

	return table, nil
}

// Default returns the built-in knowledge table.
func Default() (*skincare.Table, error) {
	table, err := Parse(bytes.NewReader(defaultTable))
	if err != nil {
		return nil, fmt.Errorf("parsing built-in knowledge table: %w", err)
	}
	return table, nil
}

// Parse decodes CSV with a header row into a table. Column order is free and
// unknown columns are ignored.
func Parse(r io.Reader) (*skincare.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		index[name] = i
	}

	for _, column := range Columns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}

	var rows []skincare.Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		row, err := decodeRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("decoding line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return skincare.NewTable(rows), nil
}

func decodeRow(record []string, index map[string]int) (skincare.Row, error) {
	fields := make(map[string]string, len(Columns))
	for _, column := range Columns {
		if i := index[column]; i < len(record) {
			fields[column] = strings.TrimSpace(record[i])
		}
	}

	var row skincare.Row
	if err := mapstructure.Decode(fields, &row); err != nil {
		return skincare.Row{}, err
	}
	return row, nil
}
