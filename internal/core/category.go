package core

// Category is one of the six fixed climate classifications used by the
// drought dataset. The declaration order is the canonical order: it drives
// card layout (first three / last three), legend ordering and table rows
// in every consumer, so it must not be reordered.
type Category int

const (
	ExtremeDrought Category = iota
	SevereDrought
	ModerateDrought
	NearNormal
	ModeratelyWet
	ExtremelyWet
)

// NumCategories is the size of the closed category set.
const NumCategories = 6

var categoryLabels = [NumCategories]string{
	"Extreme Drought",
	"Severe Drought",
	"Moderate Drought",
	"Near Normal",
	"Moderately Wet",
	"Extremely Wet",
}

var categoryColumns = [NumCategories]string{
	"Extreme_Drought",
	"Severe_Drought",
	"Moderate_Drought",
	"Near_Normal",
	"Moderately_Wet",
	"Extremely_Wet",
}

// Categories returns all categories in canonical order.
func Categories() []Category {
	return []Category{ExtremeDrought, SevereDrought, ModerateDrought, NearNormal, ModeratelyWet, ExtremelyWet}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	return c >= ExtremeDrought && c <= ExtremelyWet
}

// String returns the display label, e.g. "Extreme Drought".
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryLabels[c]
}

// Column returns the dataset column name, e.g. "Extreme_Drought".
func (c Category) Column() string {
	if !c.Valid() {
		return ""
	}
	return categoryColumns[c]
}

// CategoryByColumn resolves a dataset column name to its category.
func CategoryByColumn(name string) (Category, bool) {
	for i, col := range categoryColumns {
		if col == name {
			return Category(i), true
		}
	}
	return Category(-1), false
}
