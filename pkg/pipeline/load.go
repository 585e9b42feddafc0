package pipeline

import (
	"context"
	"encoding/json"

	"github.com/jabulente/bubblechart/pkg/dataset"
	"github.com/jabulente/bubblechart/pkg/errors"
)

// Dataset holds the chart columns extracted from an input file.
// It is the serializable handoff between the load and layout stages.
type Dataset struct {
	Areas  []float64 `json:"areas"`
	Labels []string  `json:"labels,omitempty"`
	Values []string  `json:"values,omitempty"`
	Colors []string  `json:"colors,omitempty"`
}

// Load reads the input file and extracts the configured columns.
// Only the areas column is required; labels, values, and colors are
// attached when their columns are configured.
func Load(ctx context.Context, opts Options) (Dataset, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return Dataset{}, err
	}

	tbl, err := dataset.ReadFile(opts.Input)
	if err != nil {
		return Dataset{}, err
	}

	areas, err := tbl.Floats(opts.AreasColumn)
	if err != nil {
		return Dataset{}, err
	}

	ds := Dataset{Areas: areas}

	if opts.LabelsColumn != "" {
		if ds.Labels, err = tbl.Strings(opts.LabelsColumn); err != nil {
			return Dataset{}, err
		}
	}
	if opts.ValuesColumn != "" {
		if ds.Values, err = loadValues(tbl, opts.ValuesColumn); err != nil {
			return Dataset{}, err
		}
	}
	if opts.ColorsColumn != "" {
		if ds.Colors, err = tbl.Strings(opts.ColorsColumn); err != nil {
			return Dataset{}, err
		}
	}

	return ds, nil
}

// loadValues reads the values column, formatting numeric columns so that
// integral values print without decimals. Non-numeric columns pass through
// as raw strings.
func loadValues(tbl *dataset.Table, column string) ([]string, error) {
	if nums, err := tbl.Floats(column); err == nil {
		values := make([]string, len(nums))
		for i, v := range nums {
			values[i] = dataset.FormatValue(v)
		}
		return values, nil
	} else if errors.Is(err, errors.ErrCodeInvalidColumn) {
		return nil, err
	}
	return tbl.Strings(column)
}

// MarshalDataset serializes a Dataset for caching.
func MarshalDataset(ds Dataset) ([]byte, error) {
	return json.Marshal(ds)
}

// UnmarshalDataset deserializes a cached Dataset.
func UnmarshalDataset(data []byte) (Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return Dataset{}, err
	}
	if len(ds.Areas) == 0 {
		return Dataset{}, errors.New(errors.ErrCodeInvalidInput, "cached dataset has no areas")
	}
	return ds, nil
}
