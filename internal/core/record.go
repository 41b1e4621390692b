package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidYear  = errors.New("invalid year")
	ErrNegativeArea = errors.New("negative area")
)

// Record is one year of the drought dataset: the surveyed area in square
// kilometers for each of the six categories, plus the reference to the
// year's satellite map image. The areas array is indexed by Category, so a
// loaded record is structurally complete: a missing category column is a
// load-time error, never a per-record lookup failure.
type Record struct {
	Year        int
	Areas       [NumCategories]float64
	MapImageURL string
}

// Value returns the area for a single category.
func (r Record) Value(c Category) float64 {
	if !c.Valid() {
		return 0
	}
	return r.Areas[c]
}

// Total is the sum over all six categories.
func (r Record) Total() float64 {
	var sum float64
	for _, v := range r.Areas {
		sum += v
	}
	return sum
}

func (r Record) Validate() error {
	if r.Year <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidYear, r.Year)
	}
	for _, c := range Categories() {
		if r.Areas[c] < 0 {
			return fmt.Errorf("%w: %s = %v (year %d)", ErrNegativeArea, c.Column(), r.Areas[c], r.Year)
		}
	}
	return nil
}
