package core

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyDataset  = errors.New("empty dataset")
	ErrDuplicateYear = errors.New("duplicate year")
	ErrYearNotFound  = errors.New("year not found")
)

// Dataset is the immutable in-memory table of yearly records. It is built
// once at startup and shared read-only for the process lifetime; no method
// mutates it after construction.
type Dataset struct {
	records []Record
	byYear  map[int]int
}

// NewDataset validates the records, sorts them by year and indexes them.
// Exactly one record may exist per year.
func NewDataset(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	byYear := make(map[int]int, len(sorted))
	for i, r := range sorted {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byYear[r.Year]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateYear, r.Year)
		}
		byYear[r.Year] = i
	}
	return &Dataset{records: sorted, byYear: byYear}, nil
}

// Len returns the number of yearly records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Years returns the distinct years in ascending order. The slice is a copy.
func (d *Dataset) Years() []int {
	years := make([]int, len(d.records))
	for i, r := range d.records {
		years[i] = r.Year
	}
	return years
}

// Records returns all records in year order. The slice is a copy; the
// records themselves are value types.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Contains reports whether the dataset has a record for year.
func (d *Dataset) Contains(year int) bool {
	_, ok := d.byYear[year]
	return ok
}

// Lookup returns the record for year. Callers normally restrict selections
// to Years(), so a failure here is a defensive check, not a primary
// validation path.
func (d *Dataset) Lookup(year int) (Record, error) {
	i, ok := d.byYear[year]
	if !ok {
		return Record{}, fmt.Errorf("%w: %d", ErrYearNotFound, year)
	}
	return d.records[i], nil
}

// FirstYear returns the earliest year in the dataset.
func (d *Dataset) FirstYear() int {
	return d.records[0].Year
}

// LastYear returns the latest year in the dataset.
func (d *Dataset) LastYear() int {
	return d.records[len(d.records)-1].Year
}
