package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"droughtwatch/internal/core"
)

// ErrMissingCategory reports a category column absent from the source. It is
// raised at load time so a data-quality defect surfaces immediately instead
// of as a zeroed-out chart.
var ErrMissingCategory = errors.New("missing category column")

const (
	yearColumn     = "year"
	imageURLColumn = "Map Images Left"
)

// LoadCSV reads the yearly table from a CSV file.
func LoadCSV(path string) (*core.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	return core.NewDataset(records)
}

func parseCSV(r io.Reader) ([]core.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []core.Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// columnIndexes maps each required column to its position in the header.
type columnIndexes struct {
	year       int
	categories [core.NumCategories]int
	imageURL   int
}

func mapColumns(header []string) (columnIndexes, error) {
	idx := columnIndexes{year: -1, imageURL: -1}
	for i := range idx.categories {
		idx.categories[i] = -1
	}

	for i, name := range header {
		name = strings.TrimSpace(name)
		switch {
		case strings.EqualFold(name, yearColumn):
			idx.year = i
		case name == imageURLColumn:
			idx.imageURL = i
		default:
			if c, ok := core.CategoryByColumn(name); ok {
				idx.categories[c] = i
			}
		}
	}

	if idx.year == -1 {
		return idx, fmt.Errorf("missing %q column in header %v", yearColumn, header)
	}
	for _, c := range core.Categories() {
		if idx.categories[c] == -1 {
			return idx, fmt.Errorf("%w: %s", ErrMissingCategory, c.Column())
		}
	}
	// The image column is tolerated missing: records then carry an empty
	// URL and the resolver degrades to the placeholder.
	return idx, nil
}

func parseRow(row []string, cols columnIndexes) (core.Record, error) {
	var rec core.Record

	year, err := strconv.Atoi(strings.TrimSpace(cell(row, cols.year)))
	if err != nil {
		return rec, fmt.Errorf("bad year %q: %w", cell(row, cols.year), err)
	}
	rec.Year = year

	for _, c := range core.Categories() {
		raw := strings.TrimSpace(cell(row, cols.categories[c]))
		if raw == "" {
			raw = "0"
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, fmt.Errorf("bad %s value %q (year %d): %w", c.Column(), raw, year, err)
		}
		rec.Areas[c] = v
	}

	if cols.imageURL != -1 {
		rec.MapImageURL = strings.TrimSpace(cell(row, cols.imageURL))
	}
	return rec, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
