package chart

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/jabulente/bubblechart/pkg/pack"
)

func testLayout(t *testing.T) Layout {
	t.Helper()
	set, err := pack.New([]float64{4, 1, 1}, 0.5)
	if err != nil {
		t.Fatalf("pack.New() error = %v", err)
	}
	if err := set.Collapse(pack.WithMaxIterations(10)); err != nil {
		t.Fatalf("Collapse() error = %v", err)
	}
	l := FromSet(set)
	l.Title = "test chart"
	l.Bubbles[0].Label = "big"
	l.Bubbles[0].Color = "#4c78a8"
	return l
}

func TestFromSetPreservesOrder(t *testing.T) {
	set, err := pack.New([]float64{9, 4, 1}, 0.25)
	if err != nil {
		t.Fatalf("pack.New() error = %v", err)
	}
	l := FromSet(set)

	if len(l.Bubbles) != 3 {
		t.Fatalf("len(Bubbles) = %d, want 3", len(l.Bubbles))
	}
	for i, want := range []float64{9, 4, 1} {
		if l.Bubbles[i].Area != want {
			t.Errorf("bubble %d area = %v, want %v", i, l.Bubbles[i].Area, want)
		}
		if want := math.Sqrt(want / math.Pi); l.Bubbles[i].Radius != want {
			t.Errorf("bubble %d radius = %v, want %v", i, l.Bubbles[i].Radius, want)
		}
	}
	if l.Spacing != 0.25 {
		t.Errorf("Spacing = %v, want 0.25", l.Spacing)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := testLayout(t)

	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout() error = %v", err)
	}

	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error = %v", err)
	}

	if len(got.Bubbles) != len(l.Bubbles) {
		t.Fatalf("round-trip bubble count = %d, want %d", len(got.Bubbles), len(l.Bubbles))
	}
	for i := range l.Bubbles {
		if got.Bubbles[i] != l.Bubbles[i] {
			t.Errorf("bubble %d = %+v, want %+v", i, got.Bubbles[i], l.Bubbles[i])
		}
	}
	if got.Title != l.Title || got.Spacing != l.Spacing {
		t.Errorf("metadata round-trip mismatch: %+v", got)
	}
}

func TestUnmarshalLayoutRejectsEmpty(t *testing.T) {
	if _, err := UnmarshalLayout([]byte(`{"bubbles":[]}`)); err == nil {
		t.Error("UnmarshalLayout() accepted a layout with no bubbles")
	}
	if _, err := UnmarshalLayout([]byte(`not json`)); err == nil {
		t.Error("UnmarshalLayout() accepted invalid JSON")
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l := testLayout(t)
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile() error = %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error = %v", err)
	}
	if len(got.Bubbles) != len(l.Bubbles) {
		t.Errorf("bubble count = %d, want %d", len(got.Bubbles), len(l.Bubbles))
	}
}

func TestWriteLayoutEndsWithNewline(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLayout(testLayout(t), &buf); err != nil {
		t.Fatalf("WriteLayout() error = %v", err)
	}
	if b := buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		t.Error("WriteLayout() output does not end with newline")
	}
}

func TestBounds(t *testing.T) {
	l := Layout{Bubbles: []Bubble{
		{X: 0, Y: 0, Radius: 1},
		{X: 5, Y: -2, Radius: 3},
	}}

	minX, minY, maxX, maxY := l.Bounds()
	if minX != -1 || minY != -5 || maxX != 8 || maxY != 1 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (-1, -5, 8, 1)", minX, minY, maxX, maxY)
	}

	if minX, minY, maxX, maxY := (Layout{}).Bounds(); minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Error("Bounds() of empty layout is not all zeros")
	}
}
