package generator

// Palette is one named color theme applied to the generated document.
type Palette struct {
	Name           string
	Primary        string
	Secondary      string
	Background     string
	CardBackground string
	Text           string
}

// palettes holds the built-in themes in display order. The first entry
// is the fallback for unknown theme names.
var palettes = []Palette{
	{
		Name:           "dark",
		Primary:        "#6366f1",
		Secondary:      "#4f46e5",
		Background:     "#0f172a",
		CardBackground: "#1e293b",
		Text:           "#e2e8f0",
	},
	{
		Name:           "light",
		Primary:        "#3b82f6",
		Secondary:      "#1d4ed8",
		Background:     "#f8fafc",
		CardBackground: "#ffffff",
		Text:           "#1e293b",
	},
	{
		Name:           "blue",
		Primary:        "#0ea5e9",
		Secondary:      "#0369a1",
		Background:     "#082f49",
		CardBackground: "#0c4a6e",
		Text:           "#e0f2fe",
	},
	{
		Name:           "green",
		Primary:        "#10b981",
		Secondary:      "#047857",
		Background:     "#022c22",
		CardBackground: "#064e3b",
		Text:           "#d1fae5",
	},
	{
		Name:           "purple",
		Primary:        "#a855f7",
		Secondary:      "#7e22ce",
		Background:     "#2e1065",
		CardBackground: "#4c1d95",
		Text:           "#ede9fe",
	},
}

// PaletteFor returns the palette for the given theme name. Unknown
// names resolve to the default (dark) palette rather than failing.
func PaletteFor(name string) Palette {
	for _, p := range palettes {
		if p.Name == name {
			return p
		}
	}
	return palettes[0]
}

// Themes returns the built-in theme names in display order.
func Themes() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// Palettes returns a copy of the built-in palettes in display order.
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes)
	return out
}
