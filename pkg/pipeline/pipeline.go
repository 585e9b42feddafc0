// Package pipeline provides the core chart pipeline for bubblechart.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI, API, and worker components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the input dataset and extract the chart columns
//  2. Layout: Pack the bubbles with collision relaxation
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:       "revenue.csv",
//	    AreasColumn: "revenue",
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	ds, err := runner.Load(ctx, opts)
//
//	// Layout with a loaded dataset
//	layout, err := runner.GenerateLayout(ctx, ds, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jabulente/bubblechart/pkg/cache"
	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/errors"
	"github.com/jabulente/bubblechart/pkg/pack"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultSpacing is the default outline gap between bubbles.
	DefaultSpacing = chart.DefaultSpacing

	// DefaultMaxIterations is the default relaxation iteration cap.
	DefaultMaxIterations = pack.DefaultMaxIterations

	// DefaultThreshold is the default convergence threshold.
	DefaultThreshold = pack.DefaultConvergenceThreshold

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// DefaultStyle is the default visual style.
const DefaultStyle = chart.StyleSimple

// Format constants for output formats.
const (
	FormatSVG  = chart.FormatSVG
	FormatPNG  = chart.FormatPNG
	FormatPDF  = chart.FormatPDF
	FormatJSON = chart.FormatJSON
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for API requests.
//
// Zero values select the documented defaults; in particular a zero Spacing
// selects DefaultSpacing. Callers who need a literal zero gap should use
// [pack.New] directly.
type Options struct {
	// Load options
	Input        string `json:"input,omitempty"`
	AreasColumn  string `json:"areas_column"`
	LabelsColumn string `json:"labels_column,omitempty"`
	ValuesColumn string `json:"values_column,omitempty"`
	ColorsColumn string `json:"colors_column,omitempty"`
	Refresh      bool   `json:"refresh,omitempty"`

	// Layout options
	Spacing       float64 `json:"spacing,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	Threshold     float64 `json:"threshold,omitempty"`
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Title   string   `json:"title,omitempty"`
	Footer  string   `json:"footer,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded input data.
	Dataset Dataset

	// Layout contains the packed bubble positions.
	Layout chart.Layout

	// LayoutHash is the content hash of the serialized layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BubbleCount int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the dataset came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := chart.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading the dataset.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input file is required")
	}
	if err := errors.ValidateColumnName(o.AreasColumn); err != nil {
		return err
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Spacing == 0 {
		o.Spacing = DefaultSpacing
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return errors.ValidateSpacing(o.Spacing)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return chart.ValidateStyle(o.Style)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// DatasetKeyOpts returns cache key options for dataset loading.
func (o *Options) DatasetKeyOpts() cache.DatasetKeyOpts {
	return cache.DatasetKeyOpts{
		AreaColumn:  o.AreasColumn,
		LabelColumn: o.LabelsColumn,
		ValueColumn: o.ValuesColumn,
		ColorColumn: o.ColorsColumn,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Spacing:       o.Spacing,
		MaxIterations: o.MaxIterations,
		Threshold:     o.Threshold,
		Width:         int(o.Width),
		Height:        int(o.Height),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Scale:  o.Scale,
		Title:  o.Title,
		Footer: o.Footer,
	}
}
