// Package chart defines the serializable bubble-chart layout model.
//
// A [Layout] is the boundary between the packing core and every consumer:
// renderers, the HTTP API, the cache, and the CLI all exchange layouts in
// this format. The format is human-readable JSON designed for round-trip
// fidelity: layout → export → re-import renders identically.
package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jabulente/bubblechart/pkg/pack"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visual styles for rendering.
const (
	StyleSimple = "simple"
	StyleInk    = "ink"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultSpacing is the outline gap used by the full chart pipeline when the
// caller does not choose one.
const DefaultSpacing = 0.47

// =============================================================================
// Layout - Serialization Format
// =============================================================================

// Layout is the canonical serialization format for a packed bubble chart.
// Bubbles appear in original input order; positions are in layout units with
// the y axis pointing up (renderers flip as needed).
type Layout struct {
	Bubbles []Bubble `json:"bubbles" bson:"bubbles"`

	// Packing parameters, kept for provenance and cache keys.
	Spacing float64 `json:"spacing" bson:"spacing"`

	// Presentation
	Title  string  `json:"title,omitempty" bson:"title,omitempty"`
	Footer string  `json:"footer,omitempty" bson:"footer,omitempty"`
	Style  string  `json:"style,omitempty" bson:"style,omitempty"`
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`
}

// Bubble is one positioned circle plus its display attributes.
type Bubble struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Radius float64 `json:"radius" bson:"radius"`
	Area   float64 `json:"area" bson:"area"`

	// Display metadata (optional)
	Label string `json:"label,omitempty" bson:"label,omitempty"`
	Value string `json:"value,omitempty" bson:"value,omitempty"`
	Color string `json:"color,omitempty" bson:"color,omitempty"`
}

// FromSet exports a packed set as a Layout. The i-th bubble keeps the i-th
// input position, so callers can zip display metadata by index afterwards.
func FromSet(s *pack.Set) Layout {
	bubbles := make([]Bubble, s.Len())
	for i := range bubbles {
		b := s.At(i)
		bubbles[i] = Bubble{
			X:      b.Pos.X,
			Y:      b.Pos.Y,
			Radius: b.Radius,
			Area:   b.Area,
		}
	}
	return Layout{Bubbles: bubbles, Spacing: s.Spacing()}
}

// Bounds returns the axis-aligned bounding box that encloses every bubble
// outline, as (minX, minY, maxX, maxY). An empty layout returns all zeros.
func (l Layout) Bounds() (minX, minY, maxX, maxY float64) {
	if len(l.Bubbles) == 0 {
		return 0, 0, 0, 0
	}
	first := l.Bubbles[0]
	minX, maxX = first.X-first.Radius, first.X+first.Radius
	minY, maxY = first.Y-first.Radius, first.Y+first.Radius
	for _, b := range l.Bubbles[1:] {
		minX = min(minX, b.X-b.Radius)
		maxX = max(maxX, b.X+b.Radius)
		minY = min(minY, b.Y-b.Radius)
		maxY = max(maxY, b.Y+b.Radius)
	}
	return minX, minY, maxX, maxY
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if len(l.Bubbles) == 0 {
		return Layout{}, fmt.Errorf("layout has no bubbles")
	}
	return l, nil
}

// WriteLayout encodes a Layout as JSON and writes it to w.
func WriteLayout(l Layout, w io.Writer) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteLayoutFile writes a Layout to a JSON file at path.
func WriteLayoutFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(l, f)
}

// ReadLayout decodes a Layout from r.
func ReadLayout(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return UnmarshalLayout(data)
}

// ReadLayoutFile reads a Layout from a JSON file at path.
func ReadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(f)
}
