// Package pkg provides the core libraries for bubblechart.
//
// # Overview
//
// Bubblechart packs a column of positive values into a cluster of
// non-overlapping circles whose areas are proportional to the values, then
// renders the cluster as a chart. The pkg directory is organized into four
// main areas:
//
//  1. [pack] - The packing core (grid placement, collision metric, relaxation)
//  2. [dataset] / [chart] - Input loading and the serializable layout model
//  3. [render] - Artifact generation (SVG, PNG, PDF, JSON)
//  4. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
// The typical data flow through bubblechart:
//
//	CSV file
//	     ↓
//	[dataset] package (read columns)
//	     ↓
//	[pack] package (place circles, relax until convergence)
//	     ↓
//	[chart] package (serializable layout + display metadata)
//	     ↓
//	[render/chart] package (SVG/PNG/PDF/JSON output)
//
// # Quick Start
//
// Pack a set of areas and render an SVG:
//
//	import (
//	    "github.com/jabulente/bubblechart/pkg/chart"
//	    "github.com/jabulente/bubblechart/pkg/pack"
//	    "github.com/jabulente/bubblechart/pkg/render/chart/sink"
//	)
//
//	// 1. Pack the areas into circles
//	set, _ := pack.New([]float64{120.5, 45, 10}, 0.47)
//	set.Collapse()
//
//	// 2. Export as a layout
//	l := chart.FromSet(set)
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(l)
//
// # Main Packages
//
// ## Packing Core
//
// [pack] - Circle packing. Radii come from areas (r = sqrt(area/π)), initial
// positions from a spiral grid walk, and final positions from an iterative
// relaxation that pulls each bubble toward the weighted centroid while
// keeping outlines separated.
//
// [geom] - Small 2D vector type shared by the packing core and the renderers.
//
// ## Data & Serialization
//
// [dataset] - CSV reading with typed column access (strings, floats).
//
// [chart] - The Layout serialization format plus TOML chart configs. A layout
// round-trips through JSON and renders identically on re-import.
//
// ## Rendering
//
// [render/chart/sink] - Output formats (SVG, PDF, PNG, JSON).
//
// [render/chart/styles] - Visual styles (simple, ink) and the text sizing
// rules shared between them.
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// ## Infrastructure
//
// [pipeline] - Complete chart pipeline (load → layout → render) used by the
// CLI and the HTTP API. Ensures consistent behavior across entry points.
//
// [cache] - Content-addressed result caching with file, Redis, and MongoDB
// backends, plus the key derivation for each pipeline stage.
//
// [errors] - Coded errors shared across the module.
//
// [observability] - Pluggable hooks for pipeline, cache, and HTTP events.
//
// [httputil] - JSON response and request helpers for the HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/pack/...     # Specific package
//	go test -run Example       # Examples only
//
// [pack]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/pack
// [geom]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/geom
// [dataset]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/dataset
// [chart]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/chart
// [render]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/render
// [render/chart]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/render/chart
// [render/chart/sink]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/render/chart/sink
// [render/chart/styles]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/render/chart/styles
// [pipeline]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/cache
// [errors]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/errors
// [observability]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/observability
// [httputil]: https://pkg.go.dev/github.com/jabulente/bubblechart/pkg/httputil
package pkg
