// Package styles defines the visual styles for chart rendering.
//
// A [Style] controls how circles, labels, titles, and footers are drawn.
// Two implementations ship by default: [Simple] (flat filled circles) and
// [Ink] (outlined circles with a light wash fill).
package styles

import "bytes"

// Style defines the visual appearance for chart rendering.
// Implementations control how circles, text, titles, and footers are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderCircle writes the SVG for a single bubble shape.
	RenderCircle(buf *bytes.Buffer, c Circle)
	// RenderText writes the SVG for a bubble's label and value text.
	RenderText(buf *bytes.Buffer, c Circle)
	// RenderTitle writes the SVG for the chart title.
	RenderTitle(buf *bytes.Buffer, f Frame, title string)
	// RenderFooter writes the SVG for the footer credit lines.
	RenderFooter(buf *bytes.Buffer, f Frame, left, right string)
}

// Circle contains all data needed to render a single bubble.
// Coordinates are in final SVG space (y axis pointing down).
type Circle struct {
	Index int     // Position in input order, used for palette fallback
	X, Y  float64 // Center coordinates
	R     float64 // Radius
	Label string  // Display text (centered)
	Value string  // Value text (below label)
	Color string  // Fill color; empty selects from the default palette
}

// Frame describes the overall drawing surface.
type Frame struct {
	Width   float64 // Total SVG width
	Height  float64 // Total SVG height
	TitleY  float64 // Baseline for the title text
	FooterY float64 // Baseline for the footer text
}
