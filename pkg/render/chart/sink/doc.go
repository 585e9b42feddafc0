// Package sink provides output format renderers for bubble charts.
//
// # Overview
//
// A "sink" transforms a packed [chart.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics
//   - JSON: Layout data export for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] produces an SVG with:
//
//   - Visual styles (flat simple style or outlined ink style)
//   - Dynamic font sizing relative to bubble radius
//   - Optional title band and footer credits with a generation timestamp
//
// Basic usage:
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithStyle(styles.Ink{}),
//	)
//
// # SVG Options
//
//   - [WithStyle]: Visual style ([styles.Simple] or [styles.Ink])
//   - [WithGeneratedAt]: Fixed timestamp for reproducible output
//   - [WithoutCredits]: Suppress the footer credit lines
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the layout as PDF/PNG by first
// generating SVG, then converting via [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(layout, opts...)
//	png, err := sink.RenderPNG(layout, sink.WithScale(2), opts...)
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [chart.Layout]: github.com/jabulente/bubblechart/pkg/chart.Layout
// [styles.Simple]: github.com/jabulente/bubblechart/pkg/render/chart/styles.Simple
// [styles.Ink]: github.com/jabulente/bubblechart/pkg/render/chart/styles.Ink
// [render.ToPDF]: github.com/jabulente/bubblechart/pkg/render.ToPDF
// [render.ToPNG]: github.com/jabulente/bubblechart/pkg/render.ToPNG
package sink
