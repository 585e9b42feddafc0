package styles

import (
	"bytes"
	"strings"
	"testing"
)

func TestFontSize(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		want   float64
	}{
		{"small bubble hits floor", 5, 10},
		{"floor boundary", 10.0 / 0.6, 10},
		{"large bubble scales", 100, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FontSize(tt.radius); got != tt.want {
				t.Errorf("FontSize(%v) = %v, want %v", tt.radius, got, tt.want)
			}
		})
	}
}

func TestValueFontSize(t *testing.T) {
	// Value text is 70% of the label size
	if got, want := ValueFontSize(100), 42.0; got != want {
		t.Errorf("ValueFontSize(100) = %v, want %v", got, want)
	}
	// Floor applies before the ratio
	if got, want := ValueFontSize(5), 7.0; got != want {
		t.Errorf("ValueFontSize(5) = %v, want %v", got, want)
	}
}

func TestValueOffset(t *testing.T) {
	if got, want := ValueOffset(50), 10.0; got != want {
		t.Errorf("ValueOffset(50) = %v, want %v", got, want)
	}
}

func TestFillColor(t *testing.T) {
	// Explicit color wins
	c := Circle{Index: 3, Color: "#123456"}
	if got := FillColor(c); got != "#123456" {
		t.Errorf("FillColor with explicit color = %q", got)
	}

	// Palette fallback is deterministic by index
	a := FillColor(Circle{Index: 0})
	b := FillColor(Circle{Index: 1})
	if a == b {
		t.Error("adjacent palette indices should differ")
	}
	if FillColor(Circle{Index: 0}) != a {
		t.Error("palette fallback should be deterministic")
	}

	// Index wraps around the palette
	if FillColor(Circle{Index: len(defaultPalette)}) != a {
		t.Error("palette index should wrap")
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`a<b&"c"`); strings.ContainsAny(got, `<&"`) && !strings.Contains(got, "&lt;") {
		t.Errorf("EscapeXML did not escape: %q", got)
	}
	if got := EscapeXML("plain"); got != "plain" {
		t.Errorf("EscapeXML(plain) = %q", got)
	}
}

func TestSimpleRenderCircle(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderCircle(&buf, Circle{X: 10, Y: 20, R: 5, Color: "#ff0000"})

	out := buf.String()
	if !strings.Contains(out, `cx="10.00"`) || !strings.Contains(out, `cy="20.00"`) {
		t.Errorf("circle missing coordinates: %s", out)
	}
	if !strings.Contains(out, `fill="#ff0000"`) {
		t.Errorf("circle missing fill: %s", out)
	}
}

func TestSimpleRenderText(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderText(&buf, Circle{X: 0, Y: 0, R: 50, Label: "go", Value: "42"})

	out := buf.String()
	if !strings.Contains(out, ">go</text>") {
		t.Errorf("missing label: %s", out)
	}
	// Label at r=50 uses 0.6*r = 30
	if !strings.Contains(out, `font-size="30.0"`) {
		t.Errorf("missing label font size: %s", out)
	}
	// Value at 70% of label size, offset 0.2*r below center
	if !strings.Contains(out, `font-size="21.0"`) {
		t.Errorf("missing value font size: %s", out)
	}
	if !strings.Contains(out, `y="10.00"`) {
		t.Errorf("value not offset below center: %s", out)
	}
}

func TestSimpleRenderTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderText(&buf, Circle{X: 0, Y: 0, R: 10})
	if buf.Len() != 0 {
		t.Errorf("empty label and value should render nothing, got %s", buf.String())
	}
}

func TestInkRenderCircle(t *testing.T) {
	var buf bytes.Buffer
	Ink{}.RenderCircle(&buf, Circle{X: 1, Y: 2, R: 3})

	out := buf.String()
	if !strings.Contains(out, `stroke="#1a1a1a"`) {
		t.Errorf("ink circle missing stroke: %s", out)
	}
	if !strings.Contains(out, "fill-opacity") {
		t.Errorf("ink circle missing wash: %s", out)
	}
}

func TestInkRenderDefs(t *testing.T) {
	var buf bytes.Buffer
	Ink{}.RenderDefs(&buf)
	if !strings.Contains(buf.String(), "<defs>") {
		t.Errorf("ink defs missing: %s", buf.String())
	}
}

func TestTitleAndFooter(t *testing.T) {
	f := Frame{Width: 1000, Height: 800, TitleY: 30, FooterY: 790}

	for _, s := range []Style{Simple{}, Ink{}} {
		var buf bytes.Buffer
		s.RenderTitle(&buf, f, "Revenue")
		if !strings.Contains(buf.String(), ">Revenue</text>") {
			t.Errorf("title missing: %s", buf.String())
		}

		buf.Reset()
		s.RenderFooter(&buf, f, "left credit", "right credit")
		out := buf.String()
		if !strings.Contains(out, "left credit") || !strings.Contains(out, "right credit") {
			t.Errorf("footer missing credits: %s", out)
		}
	}
}
