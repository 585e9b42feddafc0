package styles

import (
	"bytes"
	"fmt"
)

const (
	inkStroke      = "#1a1a1a"
	inkStrokeWidth = 2.0
	inkFillOpacity = 0.25
)

// Ink renders outlined circles with a light color wash, for a sketchier,
// print-friendly look.
type Ink struct{}

// RenderDefs writes a subtle paper-grain filter applied to circles.
func (Ink) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="grain">
      <feTurbulence type="fractalNoise" baseFrequency="0.9" numOctaves="2" result="noise"/>
      <feComposite operator="in" in="noise" in2="SourceGraphic" result="grain"/>
      <feBlend in="SourceGraphic" in2="grain" mode="multiply"/>
    </filter>
  </defs>
`)
}

// RenderCircle writes an outlined circle with a translucent wash.
func (Ink) RenderCircle(buf *bytes.Buffer, c Circle) {
	fmt.Fprintf(buf, `  <circle class="bubble" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="%.1f" filter="url(#grain)"/>`+"\n",
		c.X, c.Y, c.R, FillColor(c), inkFillOpacity, inkStroke, inkStrokeWidth)
}

// RenderText writes the centered label and the value text below it.
func (Ink) RenderText(buf *bytes.Buffer, c Circle) {
	if c.Label != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
			c.X, c.Y, FontSize(c.R), inkStroke, EscapeXML(c.Label))
	}
	if c.Value != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
			c.X, c.Y+ValueOffset(c.R), ValueFontSize(c.R), inkStroke, EscapeXML(c.Value))
	}
}

// RenderTitle writes a bold centered title with an underline rule.
func (Ink) RenderTitle(buf *bytes.Buffer, f Frame, title string) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" font-weight="bold" text-anchor="middle" fill="%s">%s</text>`+"\n",
		f.Width/2, f.TitleY, titleFontSize, inkStroke, EscapeXML(title))
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
		f.Width*0.25, f.TitleY+8, f.Width*0.75, f.TitleY+8, inkStroke)
}

// RenderFooter writes the left and right footer credits.
func (Ink) RenderFooter(buf *bytes.Buffer, f Frame, left, right string) {
	if left != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" font-weight="bold" fill="%s">%s</text>`+"\n",
			f.Width*0.01, f.FooterY, footerFontSize, inkStroke, EscapeXML(left))
	}
	if right != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" font-weight="bold" fill="%s">%s</text>`+"\n",
			f.Width*0.7, f.FooterY, footerFontSize, inkStroke, EscapeXML(right))
	}
}

// Ensure Ink implements Style.
var _ Style = Ink{}
