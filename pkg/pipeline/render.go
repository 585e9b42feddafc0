package pipeline

import (
	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/errors"
	"github.com/jabulente/bubblechart/pkg/render/chart/sink"
)

// RenderFromLayout renders output artifacts in the requested formats.
// This is the entry point when the layout is already computed, whether fresh
// from [GenerateLayout], read back from a JSON export, or served from cache.
func RenderFromLayout(l chart.Layout, opts Options) (map[string][]byte, error) {
	// Overrides are applied before defaults so an empty option means "keep
	// the layout's setting" while any explicit value, including the default
	// style, wins over what the layout carries.
	l = applyRenderOverrides(l, opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if l.Style == "" {
		l.Style = opts.Style
	}

	svgOpts := []sink.SVGOption{sink.WithStyle(sink.StyleByName(l.Style))}
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderFromLayoutData renders output from serialized layout data.
// This is useful when the layout was computed elsewhere (e.g., cached).
func RenderFromLayoutData(layoutData []byte, opts Options) (map[string][]byte, error) {
	l, err := chart.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse layout")
	}
	return RenderFromLayout(l, opts)
}

// applyRenderOverrides lets explicit render options win over presentation
// settings embedded in the layout. Unset options preserve the layout's own
// settings, so re-rendering an exported layout keeps its original look.
// Must run before SetRenderDefaults: afterwards an unset style is
// indistinguishable from an explicitly requested default one.
func applyRenderOverrides(l chart.Layout, opts Options) chart.Layout {
	if opts.Style != "" {
		l.Style = opts.Style
	}
	if opts.Title != "" {
		l.Title = opts.Title
	}
	if opts.Footer != "" {
		l.Footer = opts.Footer
	}
	if opts.Width > 0 {
		l.Width = opts.Width
	}
	if opts.Height > 0 {
		l.Height = opts.Height
	}
	return l
}
