package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontRadiusRatio  = 0.6
	valueFontRatio   = 0.7
	valueOffsetRatio = 0.2
	fontSizeMin      = 10.0

	titleFontSize  = 20.0
	footerFontSize = 8.0
)

// FontSize returns the label font size for a bubble of radius r.
// Small bubbles get a readable floor; large bubbles scale with radius.
func FontSize(r float64) float64 {
	return max(fontSizeMin, r*fontRadiusRatio)
}

// ValueFontSize returns the value font size for a bubble of radius r.
// Value text is rendered smaller than the label.
func ValueFontSize(r float64) float64 {
	return FontSize(r) * valueFontRatio
}

// ValueOffset returns the vertical distance between the label baseline and
// the value text for a bubble of radius r.
func ValueOffset(r float64) float64 {
	return r * valueOffsetRatio
}

// EscapeXML escapes text for safe inclusion in SVG output.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
