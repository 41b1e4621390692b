package charts

import "sort"

// Theme is one of the fixed dashboard color schemes.
type Theme struct {
	Name       string `json:"name"`
	Header     string `json:"header"`
	Background string `json:"bg"`
	Card       string `json:"card"`
	Text       string `json:"text"`
	Border     string `json:"border"`
	Accent     string `json:"accent"`
}

const DefaultThemeName = "default"

var themes = map[string]Theme{
	"default": {Name: "default", Header: "#6A1B9A", Background: "#fafafa", Card: "#ffffff", Text: "#333333", Border: "#e0e0e0", Accent: "#8e24aa"},
	"dark":    {Name: "dark", Header: "#2d1b69", Background: "#121212", Card: "#1e1e1e", Text: "#ffffff", Border: "#404040", Accent: "#bb86fc"},
	"ocean":   {Name: "ocean", Header: "#0077be", Background: "#f0f8ff", Card: "#ffffff", Text: "#333333", Border: "#87ceeb", Accent: "#4fc3f7"},
	"forest":  {Name: "forest", Header: "#228B22", Background: "#f5fff5", Card: "#ffffff", Text: "#333333", Border: "#90ee90", Accent: "#66bb6a"},
}

// ThemeByName returns the named theme, or the default theme for unknown
// names so a stale selector value never breaks rendering.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultThemeName]
}

// KnownTheme reports whether name is a registered theme.
func KnownTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// ThemeNames returns all registered theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
