// Package render provides output rendering for bubble charts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms packed
// bubble layouts into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Chart rendering (in [chart] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Chart Rendering
//
// The [chart] subpackage renders packed layouts as colored circles with
// centered labels and value text below them.
//
// Key chart subpackages:
//   - [chart/sink]: Output formats (SVG, JSON, PNG, PDF)
//   - [chart/styles]: Visual styles (simple, ink)
//
// [chart]: github.com/jabulente/bubblechart/pkg/render/chart
// [chart/sink]: github.com/jabulente/bubblechart/pkg/render/chart/sink
// [chart/styles]: github.com/jabulente/bubblechart/pkg/render/chart/styles
package render
