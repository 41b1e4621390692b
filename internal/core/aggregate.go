package core

// CategoryValue pairs a category with its area, preserving canonical order
// where returned in slices.
type CategoryValue struct {
	Category Category
	Value    float64
}

// GroupedTotals is the fixed three-bucket partition of the six categories:
// the three drought classes summed, near normal alone, the two wet classes
// summed. Grouping is a partition, so Drought+NearNormal+Wet always equals
// Record.Total().
type GroupedTotals struct {
	Drought    float64
	NearNormal float64
	Wet        float64
}

// Sum returns the combined area of all three buckets.
func (g GroupedTotals) Sum() float64 {
	return g.Drought + g.NearNormal + g.Wet
}

// CategoryValues returns the six raw values in canonical order.
func (r Record) CategoryValues() []CategoryValue {
	out := make([]CategoryValue, 0, NumCategories)
	for _, c := range Categories() {
		out = append(out, CategoryValue{Category: c, Value: r.Areas[c]})
	}
	return out
}

// GroupedTotals computes the three-bucket totals. Pure sum, no
// normalization.
func (r Record) GroupedTotals() GroupedTotals {
	return GroupedTotals{
		Drought:    r.Areas[ExtremeDrought] + r.Areas[SevereDrought] + r.Areas[ModerateDrought],
		NearNormal: r.Areas[NearNormal],
		Wet:        r.Areas[ModeratelyWet] + r.Areas[ExtremelyWet],
	}
}

// NonZeroCategories filters CategoryValues to strictly positive entries,
// preserving canonical order. When every value is zero it returns an empty
// slice rather than an error so callers can apply their own placeholder
// policy (the pie renderer substitutes a "No Data" slice).
func (r Record) NonZeroCategories() []CategoryValue {
	var out []CategoryValue
	for _, c := range Categories() {
		if r.Areas[c] > 0 {
			out = append(out, CategoryValue{Category: c, Value: r.Areas[c]})
		}
	}
	return out
}

// Percentages returns each category's share of the year total, in percent
// and canonical order. A zero total yields all zeros, never a division
// error.
func (r Record) Percentages() []CategoryValue {
	total := r.Total()
	out := make([]CategoryValue, 0, NumCategories)
	for _, c := range Categories() {
		pct := 0.0
		if total > 0 {
			pct = r.Areas[c] / total * 100
		}
		out = append(out, CategoryValue{Category: c, Value: pct})
	}
	return out
}
