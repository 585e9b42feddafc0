package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/dataset"
	"github.com/jabulente/bubblechart/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"png", []string{"png"}},
		{"svg,png,pdf", []string{"svg", "png", "pdf"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derived from input", "", "data.csv", "data"},
		{"output with format ext", "chart.svg", "data.csv", "chart"},
		{"output without ext", "out/chart", "data.csv", "out/chart"},
		{"output with unknown ext", "chart.dat", "data.csv", "chart.dat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	cfg := chart.Config{
		Title:   "Revenue",
		Spacing: 0.8,
		Style:   "ink",
		Columns: chart.ColumnConfig{Areas: "revenue", Labels: "region"},
		Output:  chart.OutputConfig{Formats: []string{"png"}, Scale: 3, Path: "out"},
	}

	t.Run("fills zero values", func(t *testing.T) {
		opts := pipeline.Options{Formats: []string{pipeline.FormatSVG}}
		var output string
		applyConfig(&opts, cfg, &output, false)

		if opts.AreasColumn != "revenue" {
			t.Errorf("AreasColumn = %q, want %q", opts.AreasColumn, "revenue")
		}
		if opts.LabelsColumn != "region" {
			t.Errorf("LabelsColumn = %q, want %q", opts.LabelsColumn, "region")
		}
		if opts.Spacing != 0.8 {
			t.Errorf("Spacing = %v, want 0.8", opts.Spacing)
		}
		if opts.Style != "ink" {
			t.Errorf("Style = %q, want %q", opts.Style, "ink")
		}
		if opts.Scale != 3 {
			t.Errorf("Scale = %v, want 3", opts.Scale)
		}
		if len(opts.Formats) != 1 || opts.Formats[0] != "png" {
			t.Errorf("Formats = %v, want [png]", opts.Formats)
		}
		if output != "out" {
			t.Errorf("output = %q, want %q", output, "out")
		}
	})

	t.Run("flags win over config", func(t *testing.T) {
		opts := pipeline.Options{
			AreasColumn: "size",
			Spacing:     0.2,
			Style:       "simple",
			Formats:     []string{"pdf"},
		}
		output := "flag-out"
		applyConfig(&opts, cfg, &output, true)

		if opts.AreasColumn != "size" {
			t.Errorf("AreasColumn = %q, want flag value %q", opts.AreasColumn, "size")
		}
		if opts.Spacing != 0.2 {
			t.Errorf("Spacing = %v, want flag value 0.2", opts.Spacing)
		}
		if opts.Style != "simple" {
			t.Errorf("Style = %q, want flag value %q", opts.Style, "simple")
		}
		if len(opts.Formats) != 1 || opts.Formats[0] != "pdf" {
			t.Errorf("Formats = %v, want flag value [pdf]", opts.Formats)
		}
		if output != "flag-out" {
			t.Errorf("output = %q, want flag value %q", output, "flag-out")
		}
	})

	t.Run("explicit default format wins over config", func(t *testing.T) {
		// "-f svg" expands to the same list as an unset flag, so only the
		// flag-changed signal keeps it from losing to the config formats.
		opts := pipeline.Options{Formats: []string{pipeline.FormatSVG}}
		var output string
		applyConfig(&opts, cfg, &output, true)

		if len(opts.Formats) != 1 || opts.Formats[0] != pipeline.FormatSVG {
			t.Errorf("Formats = %v, want [svg]", opts.Formats)
		}
	})
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestInspectColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	csv := "region,revenue\nNorth,120.5\nSouth,45\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := dataset.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}

	columns := inspectColumns(tbl)
	if len(columns) != 2 {
		t.Fatalf("len(columns) = %d, want 2", len(columns))
	}

	if columns[0].Name != "region" || columns[0].Numeric {
		t.Errorf("columns[0] = %+v, want text column %q", columns[0], "region")
	}
	if columns[1].Name != "revenue" || !columns[1].Numeric {
		t.Errorf("columns[1] = %+v, want numeric column %q", columns[1], "revenue")
	}
	if columns[0].Sample != "North, South" {
		t.Errorf("columns[0].Sample = %q, want %q", columns[0].Sample, "North, South")
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()

	t.Run("single format with output", func(t *testing.T) {
		out := filepath.Join(dir, "chart.svg")
		err := writeArtifacts(artifactWriteParams{
			artifacts: map[string][]byte{"svg": []byte("<svg/>")},
			formats:   []string{"svg"},
			input:     "data.csv",
			output:    out,
			bubbles:   2,
		})
		if err != nil {
			t.Fatalf("writeArtifacts() error: %v", err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if string(data) != "<svg/>" {
			t.Errorf("output = %q, want %q", data, "<svg/>")
		}
	})

	t.Run("multiple formats use base path", func(t *testing.T) {
		base := filepath.Join(dir, "multi")
		err := writeArtifacts(artifactWriteParams{
			artifacts: map[string][]byte{
				"svg":  []byte("<svg/>"),
				"json": []byte("{}"),
			},
			formats: []string{"svg", "json"},
			input:   "data.csv",
			output:  base,
			bubbles: 2,
		})
		if err != nil {
			t.Fatalf("writeArtifacts() error: %v", err)
		}
		for _, ext := range []string{".svg", ".json"} {
			if _, err := os.Stat(base + ext); err != nil {
				t.Errorf("expected artifact %s: %v", base+ext, err)
			}
		}
	})
}
