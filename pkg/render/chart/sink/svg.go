package sink

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/render/chart/styles"
)

const (
	defaultWidth = 1000.0

	// Fraction of the frame width kept clear around the bubbles.
	paddingRatio = 0.05

	titleBandHeight  = 48.0
	footerBandHeight = 28.0

	fontStack = "Candara, 'Segoe UI', sans-serif"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	generatedAt time.Time
	credits     bool
}

// WithStyle sets the visual style (default [styles.Simple]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithGeneratedAt overrides the timestamp shown in the footer credits.
// Useful for reproducible output.
func WithGeneratedAt(t time.Time) SVGOption { return func(r *svgRenderer) { r.generatedAt = t } }

// WithoutCredits suppresses the footer credit lines.
func WithoutCredits() SVGOption { return func(r *svgRenderer) { r.credits = false } }

// StyleByName resolves a style name to its implementation.
// Unknown names fall back to the simple style.
func StyleByName(name string) styles.Style {
	if name == chart.StyleInk {
		return styles.Ink{}
	}
	return styles.Simple{}
}

// RenderSVG renders a packed layout as an SVG document.
//
// Layout coordinates have the y axis pointing up; the renderer flips them
// into SVG screen space, scales the bubbles to fit the frame, and adds the
// title band and footer credits.
func RenderSVG(l chart.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(l, opts...)

	frame, circles := buildFrame(l)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		frame.Width, frame.Height, frame.Width, frame.Height, fontStack)

	r.style.RenderDefs(&buf)
	for _, c := range circles {
		r.style.RenderCircle(&buf, c)
	}
	for _, c := range circles {
		r.style.RenderText(&buf, c)
	}

	if l.Title != "" {
		r.style.RenderTitle(&buf, frame, l.Title)
	}
	if r.credits {
		right := "Generated on: " + r.generatedAt.Format("2006-01-02 15:04")
		r.style.RenderFooter(&buf, frame, l.Footer, right)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(l chart.Layout, opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style:       StyleByName(l.Style),
		generatedAt: time.Now(),
		credits:     true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// buildFrame maps layout-space bubbles into SVG screen space.
func buildFrame(l chart.Layout) (styles.Frame, []styles.Circle) {
	minX, minY, maxX, maxY := l.Bounds()
	boundsW := maxX - minX
	boundsH := maxY - minY

	width := l.Width
	if width <= 0 {
		width = defaultWidth
	}
	pad := width * paddingRatio

	titleBand := 0.0
	if l.Title != "" {
		titleBand = titleBandHeight
	}

	scale := 1.0
	if boundsW > 0 {
		scale = (width - 2*pad) / boundsW
	}

	height := l.Height
	if height <= 0 {
		height = titleBand + 2*pad + boundsH*scale + footerBandHeight
	} else if boundsH > 0 {
		// Fixed height: shrink further if the content would not fit.
		vscale := (height - titleBand - footerBandHeight - 2*pad) / boundsH
		if vscale < scale {
			scale = vscale
		}
	}

	frame := styles.Frame{
		Width:   width,
		Height:  height,
		TitleY:  titleBand * 0.6,
		FooterY: height - footerBandHeight*0.4,
	}

	circles := make([]styles.Circle, len(l.Bubbles))
	for i, b := range l.Bubbles {
		circles[i] = styles.Circle{
			Index: i,
			X:     pad + (b.X-minX)*scale,
			Y:     titleBand + pad + (maxY-b.Y)*scale,
			R:     b.Radius * scale,
			Label: b.Label,
			Value: b.Value,
			Color: b.Color,
		}
	}
	return frame, circles
}
