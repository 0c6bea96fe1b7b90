package iris

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Required column headers, as exported by the Kaggle Iris CSV. Extra columns
// (the dataset ships an Id column) are ignored.
const (
	colSepalLength = "SepalLengthCm"
	colSepalWidth  = "SepalWidthCm"
	colPetalLength = "PetalLengthCm"
	colPetalWidth  = "PetalWidthCm"
	colSpecies     = "Species"
)

// ErrMissingColumn indicates a required column is absent from the CSV header.
var ErrMissingColumn = errors.New("required column missing")

// SchemaError reports a malformed test-set file: a required column missing
// from the header, or a cell that cannot be parsed. The loader rejects the
// whole file rather than defaulting or skipping rows, so a tabulation never
// runs on partial data.
type SchemaError struct {
	Row    int // 1-based data row; 0 for header-level problems
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("test set schema: column %s: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("test set schema: row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Load reads the test set from a CSV file on disk.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open test set: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read parses test records from CSV data. The first row must be a header
// naming at least the four measurement columns and the species column, in any
// order.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := requiredColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for row := 1; ; row++ {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		rec, err := parseRecord(cells, cols, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// requiredColumns maps each required column name to its header position.
func requiredColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	required := []string{colSepalLength, colSepalWidth, colPetalLength, colPetalWidth, colSpecies}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, &SchemaError{Column: name, Err: ErrMissingColumn}
		}
	}
	return cols, nil
}

// parseRecord converts one CSV row into a Record.
func parseRecord(cells []string, cols map[string]int, row int) (Record, error) {
	measure := func(column string) (float64, error) {
		idx := cols[column]
		if idx >= len(cells) {
			return 0, &SchemaError{Row: row, Column: column, Err: errors.New("cell missing")}
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cells[idx]), 64)
		if err != nil {
			return 0, &SchemaError{Row: row, Column: column, Err: err}
		}
		return v, nil
	}

	var rec Record
	var err error
	if rec.SepalLength, err = measure(colSepalLength); err != nil {
		return Record{}, err
	}
	if rec.SepalWidth, err = measure(colSepalWidth); err != nil {
		return Record{}, err
	}
	if rec.PetalLength, err = measure(colPetalLength); err != nil {
		return Record{}, err
	}
	if rec.PetalWidth, err = measure(colPetalWidth); err != nil {
		return Record{}, err
	}

	idx := cols[colSpecies]
	if idx >= len(cells) {
		return Record{}, &SchemaError{Row: row, Column: colSpecies, Err: errors.New("cell missing")}
	}
	rec.Species, err = ParseSpecies(strings.TrimSpace(cells[idx]))
	if err != nil {
		return Record{}, &SchemaError{Row: row, Column: colSpecies, Err: err}
	}

	return rec, nil
}
