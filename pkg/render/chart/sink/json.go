package sink

import "github.com/jabulente/bubblechart/pkg/chart"

// RenderJSON exports the layout as a pretty-printed JSON document.
// This is the primary data interchange format, enabling:
//
//   - Integration with external visualization tools
//   - Caching computed layouts for fast re-rendering
//   - Round-trip rendering (re-import and render identically)
//
// The output is the canonical [chart.Layout] serialization, so it can be
// fed back to `bubblechart visualize` or the render API unchanged.
func RenderJSON(l chart.Layout) ([]byte, error) {
	return chart.MarshalLayout(l)
}
