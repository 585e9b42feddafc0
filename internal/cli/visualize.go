package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a bubble chart from a computed layout",
		Long: `Render a bubble chart from a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it to SVG, PNG, or PDF format. The layout contains all positioning
information, so this step is purely about rendering.

Results are cached locally for faster subsequent runs.

Use 'chart' as a shortcut to go directly from CSV to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if opts.Style != "" {
				if err := chart.ValidateStyle(opts.Style); err != nil {
					return err
				}
			}
			return c.runVisualize(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), ink")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG raster scale factor (default 2.0)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title (overrides the layout's title)")
	cmd.Flags().StringVar(&opts.Footer, "footer", "", "chart footer credit (overrides the layout's footer)")

	return cmd
}

// runVisualize loads the layout and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	layout, err := chart.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if opts.Style == "" && layout.Style != "" {
		opts.Style = layout.Style
	}

	spinner := newSpinnerWithContext(ctx, "Rendering chart...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  cacheHit,
		bubbles:   len(layout.Bubbles),
	})
}
