package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/pipeline"
)

// chartCommand creates the chart command for the full CSV-to-artifact pipeline.
func (c *CLI) chartCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		configPath string
		noCache    bool
		pick       bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "chart [data.csv]",
		Short: "Generate a bubble chart from a CSV file",
		Long: `Generate a bubble chart from a CSV file.

The chart command runs the full pipeline: it loads the named area column from
the CSV, packs one circle per row into a compact non-overlapping cluster, and
renders SVG, PNG, PDF, or layout JSON artifacts.

Options can also come from a TOML config file (--config); flags override config
values. If no area column is given, an interactive picker lets you choose one.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Formats = parseFormats(formatsStr)
			if configPath != "" {
				cfg, err := chart.LoadConfig(configPath)
				if err != nil {
					return err
				}
				applyConfig(&opts, cfg, &output, cmd.Flags().Changed("format"))
			}
			if opts.AreasColumn == "" && pick {
				col, err := pickAreaColumn(opts.Input)
				if err != nil {
					return err
				}
				opts.AreasColumn = col
			}
			return c.runChart(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file with chart settings")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the cache and recompute")
	cmd.Flags().BoolVar(&pick, "pick", true, "interactively pick the area column when --areas is missing")

	// Column flags
	cmd.Flags().StringVarP(&opts.AreasColumn, "areas", "a", "", "column holding the bubble areas (required unless picked)")
	cmd.Flags().StringVarP(&opts.LabelsColumn, "labels", "l", "", "column holding the bubble labels")
	cmd.Flags().StringVar(&opts.ValuesColumn, "values", "", "column holding the displayed values")
	cmd.Flags().StringVar(&opts.ColorsColumn, "colors", "", "column holding the bubble colors")

	// Layout flags
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "outline gap between bubbles (default 0.47)")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", 0, "maximum relaxation iterations")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", 0, "convergence threshold for the collision metric")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), ink")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG raster scale factor (default 2.0)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title")
	cmd.Flags().StringVar(&opts.Footer, "footer", "", "chart footer credit")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "frame height")

	return cmd
}

// applyConfig copies config values into opts for every field the flags left
// at its zero value. Flags win over config, config wins over defaults.
// Formats need the explicit formatsSet signal: an unset --format flag already
// expands to the default SVG list, so the zero-value test cannot tell it
// apart from a deliberate "-f svg".
func applyConfig(opts *pipeline.Options, cfg chart.Config, output *string, formatsSet bool) {
	if opts.AreasColumn == "" {
		opts.AreasColumn = cfg.Columns.Areas
	}
	if opts.LabelsColumn == "" {
		opts.LabelsColumn = cfg.Columns.Labels
	}
	if opts.ValuesColumn == "" {
		opts.ValuesColumn = cfg.Columns.Values
	}
	if opts.ColorsColumn == "" {
		opts.ColorsColumn = cfg.Columns.Colors
	}
	if opts.Spacing == 0 {
		opts.Spacing = cfg.Spacing
	}
	if opts.Style == "" {
		opts.Style = cfg.Style
	}
	if opts.Title == "" {
		opts.Title = cfg.Title
	}
	if opts.Footer == "" {
		opts.Footer = cfg.Footer
	}
	if opts.Width == 0 {
		opts.Width = cfg.Width
	}
	if opts.Height == 0 {
		opts.Height = cfg.Height
	}
	if opts.Scale == 0 {
		opts.Scale = cfg.Output.Scale
	}
	if len(cfg.Output.Formats) > 0 && !formatsSet {
		opts.Formats = cfg.Output.Formats
	}
	if *output == "" {
		*output = cfg.Output.Path
	}
}

// runChart executes the full pipeline and writes the artifacts.
func (c *CLI) runChart(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Packing bubbles...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Chart failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	prog.done(fmt.Sprintf("Packed %d bubbles", result.Stats.BubbleCount))
	c.Logger.Debugf("Stage timings: load %s, layout %s, render %s",
		result.Stats.LoadTime.Round(time.Millisecond),
		result.Stats.LayoutTime.Round(time.Millisecond),
		result.Stats.RenderTime.Round(time.Millisecond))

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    output,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
		bubbles:   result.Stats.BubbleCount,
	})
}
