package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
	bubbles   int
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// known format extension, that extension is stripped so per-format suffixes
// can be appended.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	switch strings.TrimPrefix(ext, ".") {
	case "svg", "png", "pdf", "json":
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each rendered artifact to disk and prints a summary.
// A single format goes to the output path as-is; multiple formats each get
// their own extension on the shared base path.
func writeArtifacts(p artifactWriteParams) error {
	printSuccess("Chart complete")

	single := len(p.formats) == 1 && p.output != ""
	base := basePath(p.output, p.input)

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + format
		if single {
			path = p.output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printStats(p.bubbles, p.cacheHit)
	return nil
}
