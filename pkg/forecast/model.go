// Package forecast loads the price model used to predict future closes. A
// loaded Model is read-only and safe for concurrent use.
package forecast

import (
	"errors"
	"fmt"
)

// FeatureCount is the width of one feature row: open, high, low, volume.
const FeatureCount = 4

const (
	TypeLinear  = "linear"
	TypeXGBoost = "xgboost"
)

var ErrNoModel = errors.New("forecast model is not configured")

type Model interface {
	// Predict returns one predicted close per feature row.
	Predict(features [][]float64) ([]float64, error)
	Name() string
}

type Options struct {
	Type     string
	Path     string
	MaxDepth int
}

// Load builds the model once at start-up. An empty path yields ErrNoModel so
// callers can run without forecasting.
func Load(opts Options) (Model, error) {
	if opts.Path == "" {
		return nil, ErrNoModel
	}
	switch opts.Type {
	case TypeLinear, "":
		return LoadLinear(opts.Path)
	case TypeXGBoost:
		return LoadXGBoost(opts.Path, opts.MaxDepth)
	default:
		return nil, fmt.Errorf("unknown forecast model type %q", opts.Type)
	}
}

func checkRows(features [][]float64) error {
	if len(features) == 0 {
		return errors.New("no feature rows")
	}
	for i, row := range features {
		if len(row) != FeatureCount {
			return fmt.Errorf("feature row %d has %d values, want %d", i, len(row), FeatureCount)
		}
	}
	return nil
}
