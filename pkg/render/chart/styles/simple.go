package styles

import (
	"bytes"
	"fmt"
)

// Simple renders flat filled circles with centered black text.
// This is the default style.
type Simple struct{}

// RenderDefs writes nothing; the simple style needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderCircle writes a filled circle.
func (Simple) RenderCircle(buf *bytes.Buffer, c Circle) {
	fmt.Fprintf(buf, `  <circle class="bubble" cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
		c.X, c.Y, c.R, FillColor(c))
}

// RenderText writes the centered label and the value text below it.
func (Simple) RenderText(buf *bytes.Buffer, c Circle) {
	if c.Label != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="middle" fill="black">%s</text>`+"\n",
			c.X, c.Y, FontSize(c.R), EscapeXML(c.Label))
	}
	if c.Value != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="middle" fill="black">%s</text>`+"\n",
			c.X, c.Y+ValueOffset(c.R), ValueFontSize(c.R), EscapeXML(c.Value))
	}
}

// RenderTitle writes a bold centered title.
func (Simple) RenderTitle(buf *bytes.Buffer, f Frame, title string) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
		f.Width/2, f.TitleY, titleFontSize, EscapeXML(title))
}

// RenderFooter writes the left and right footer credits.
func (Simple) RenderFooter(buf *bytes.Buffer, f Frame, left, right string) {
	if left != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" font-weight="bold">%s</text>`+"\n",
			f.Width*0.01, f.FooterY, footerFontSize, EscapeXML(left))
	}
	if right != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" font-weight="bold">%s</text>`+"\n",
			f.Width*0.7, f.FooterY, footerFontSize, EscapeXML(right))
	}
}

// Ensure Simple implements Style.
var _ Style = Simple{}
