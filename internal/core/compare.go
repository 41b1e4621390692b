package core

const (
	Increase  Direction = "increase"
	Decrease  Direction = "decrease"
	Unchanged Direction = "unchanged"
)

// Direction classifies a year-over-year delta for display.
type Direction string

// ComparisonRow is one category of a two-year comparison.
type ComparisonRow struct {
	Category  Category
	Left      float64
	Right     float64
	Delta     float64 // right minus left
	Direction Direction
}

// Comparison is the ephemeral result of comparing two selected years. It is
// recomputed on every selection change and never persisted.
type Comparison struct {
	LeftYear  int
	RightYear int
	Rows      []ComparisonRow
}

// Compare computes right-minus-left deltas for every category in canonical
// order. Classification uses exact floating equality for "unchanged": the
// inputs are parsed values, never accumulated sums, so no epsilon is
// applied.
func Compare(left, right Record) Comparison {
	cmp := Comparison{
		LeftYear:  left.Year,
		RightYear: right.Year,
		Rows:      make([]ComparisonRow, 0, NumCategories),
	}
	for _, c := range Categories() {
		l, r := left.Areas[c], right.Areas[c]
		delta := r - l
		dir := Unchanged
		switch {
		case delta > 0:
			dir = Increase
		case delta < 0:
			dir = Decrease
		}
		cmp.Rows = append(cmp.Rows, ComparisonRow{
			Category:  c,
			Left:      l,
			Right:     r,
			Delta:     delta,
			Direction: dir,
		})
	}
	return cmp
}
