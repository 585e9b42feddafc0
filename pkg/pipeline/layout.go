package pipeline

import (
	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/pack"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout packs the dataset into a bubble layout.
// This is the unified entry point for generating serializable layout data.
//
// The i-th bubble corresponds to the i-th dataset row, so labels, values,
// and colors are zipped by index after packing.
func GenerateLayout(ds Dataset, opts Options) (chart.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return chart.Layout{}, err
	}

	set, err := pack.New(ds.Areas, opts.Spacing)
	if err != nil {
		return chart.Layout{}, err
	}

	if err := set.Collapse(
		pack.WithMaxIterations(opts.MaxIterations),
		pack.WithConvergenceThreshold(opts.Threshold),
	); err != nil {
		return chart.Layout{}, err
	}

	l := chart.FromSet(set)
	attachMetadata(&l, ds)

	// Presentation settings travel with the layout so a cached or exported
	// layout renders the same everywhere.
	l.Title = opts.Title
	l.Footer = opts.Footer
	l.Style = opts.Style
	l.Width = opts.Width
	l.Height = opts.Height

	return l, nil
}

// attachMetadata zips display columns onto the packed bubbles by index.
// Short columns leave the remaining bubbles without metadata rather than
// failing the layout.
func attachMetadata(l *chart.Layout, ds Dataset) {
	for i := range l.Bubbles {
		if i < len(ds.Labels) {
			l.Bubbles[i].Label = ds.Labels[i]
		}
		if i < len(ds.Values) {
			l.Bubbles[i].Value = ds.Values[i]
		}
		if i < len(ds.Colors) {
			l.Bubbles[i].Color = ds.Colors[i]
		}
	}
}
