package charts

import "droughtwatch/internal/core"

// Category colors follow the z-score based drought classification scale.
var categoryColors = [core.NumCategories]string{
	core.ExtremeDrought:  "#7e0000", // < -2
	core.SevereDrought:   "#d73027", // -2 to -1.5
	core.ModerateDrought: "#fc8d59", // -1.5 to -1
	core.NearNormal:      "#ffffbf", // -1 to 1
	core.ModeratelyWet:   "#91bfdb", // 1 to 1.5
	core.ExtremelyWet:    "#4575b4", // > 1.5
}

var categoryIcons = [core.NumCategories]string{
	core.ExtremeDrought:  "🔥",
	core.SevereDrought:   "☀️",
	core.ModerateDrought: "🌤️",
	core.NearNormal:      "🌱",
	core.ModeratelyWet:   "💧",
	core.ExtremelyWet:    "🌊",
}

// Grouped-bar bucket colors.
const (
	droughtGroupColor    = "#d73027"
	nearNormalGroupColor = "#ffffbf"
	wetGroupColor        = "#4575b4"
)

// Series colors for the two compared years.
const (
	leftYearColor  = "#1f77b4"
	rightYearColor = "#ff7f0e"
)

// Delta colors for the comparison table.
const (
	increaseColor  = "#e74c3c"
	decreaseColor  = "#27ae60"
	unchangedColor = "#95a5a6"
)

// Placeholder slice color for years with no data.
const noDataColor = "#d3d3d3"

// CategoryColor returns the display color for a category.
func CategoryColor(c core.Category) string {
	if !c.Valid() {
		return noDataColor
	}
	return categoryColors[c]
}

// CategoryIcon returns the emoji icon for a category.
func CategoryIcon(c core.Category) string {
	if !c.Valid() {
		return ""
	}
	return categoryIcons[c]
}

// DeltaColor returns the display color for a comparison direction.
func DeltaColor(d core.Direction) string {
	switch d {
	case core.Increase:
		return increaseColor
	case core.Decrease:
		return decreaseColor
	default:
		return unchangedColor
	}
}
