package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/pipeline"
)

// layoutCommand creates the layout command for computing bubble positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [data.csv]",
		Short: "Compute bubble positions from a CSV file",
		Long: `Compute bubble positions from a CSV file.

The layout command loads the named area column, packs one circle per row into
a compact non-overlapping cluster, and writes the positions as a layout.json
file that can be rendered later with the 'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the cache and recompute")

	// Column flags
	cmd.Flags().StringVarP(&opts.AreasColumn, "areas", "a", "", "column holding the bubble areas (required)")
	cmd.Flags().StringVarP(&opts.LabelsColumn, "labels", "l", "", "column holding the bubble labels")
	cmd.Flags().StringVar(&opts.ValuesColumn, "values", "", "column holding the displayed values")
	cmd.Flags().StringVar(&opts.ColorsColumn, "colors", "", "column holding the bubble colors")

	// Layout flags
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "outline gap between bubbles (default 0.47)")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", 0, "maximum relaxation iterations")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", 0, "convergence threshold for the collision metric")

	// Presentation carried into the layout file
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title")
	cmd.Flags().StringVar(&opts.Footer, "footer", "", "chart footer credit")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), ink")

	return cmd
}

// runLayout loads the dataset, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if err := opts.ValidateForLoad(); err != nil {
		return err
	}

	ds, _, err := runner.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", opts.Input, err)
	}

	spinner := newSpinnerWithContext(ctx, "Packing bubbles...")
	spinner.Start()

	layout, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, ds, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(opts.Input, filepath.Ext(opts.Input))
		outputPath = base + ".layout.json"
	}

	if err := chart.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(layout.Bubbles), cacheHit)
	printNewline()
	printNextStep("Render", "bubblechart visualize "+outputPath)

	return nil
}
