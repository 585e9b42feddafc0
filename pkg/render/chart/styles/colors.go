package styles

// defaultPalette is used when a bubble carries no explicit color.
// A muted categorical palette that stays readable with black text.
var defaultPalette = []string{
	"#4c78a8",
	"#f58518",
	"#e45756",
	"#72b7b2",
	"#54a24b",
	"#eeca3b",
	"#b279a2",
	"#ff9da6",
	"#9d755d",
	"#bab0ac",
}

// FillColor returns the fill color for a circle, falling back to the
// default palette by input position when no color is set.
func FillColor(c Circle) string {
	if c.Color != "" {
		return c.Color
	}
	return defaultPalette[c.Index%len(defaultPalette)]
}
