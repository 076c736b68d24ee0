package forecast

import (
	"fmt"
	"math"

	xgb "github.com/Elvenson/xgboost-go"
	"github.com/Elvenson/xgboost-go/activation"
	"github.com/Elvenson/xgboost-go/mat"
)

type probaPredictor interface {
	PredictProba(features mat.SparseMatrix) (mat.Matrix, error)
}

// XGBoost wraps a regression ensemble dumped with `dump_model(..., dump_format="json")`.
type XGBoost struct {
	ensemble probaPredictor
}

func LoadXGBoost(path string, maxDepth int) (*XGBoost, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("xgboost max depth must be positive, got %d", maxDepth)
	}
	ensemble, err := xgb.LoadXGBoostFromJSON(path, "", 1, maxDepth, &activation.Raw{})
	if err != nil {
		return nil, fmt.Errorf("failed to load xgboost model: %w", err)
	}
	return &XGBoost{ensemble: ensemble}, nil
}

func (m *XGBoost) Name() string { return TypeXGBoost }

func (m *XGBoost) Predict(features [][]float64) ([]float64, error) {
	if err := checkRows(features); err != nil {
		return nil, err
	}

	input := mat.SparseMatrix{Vectors: make([]mat.SparseVector, len(features))}
	for i, row := range features {
		vec := make(mat.SparseVector, len(row))
		for j, x := range row {
			vec[j] = float32(x)
		}
		input.Vectors[i] = vec
	}

	predictions, err := m.ensemble.PredictProba(input)
	if err != nil {
		return nil, fmt.Errorf("xgboost prediction failed: %w", err)
	}
	if len(predictions.Vectors) != len(features) {
		return nil, fmt.Errorf("xgboost returned %d rows for %d inputs", len(predictions.Vectors), len(features))
	}

	out := make([]float64, len(features))
	for i, vec := range predictions.Vectors {
		if vec == nil || len(*vec) == 0 {
			return nil, fmt.Errorf("xgboost returned an empty row %d", i)
		}
		y := float64((*vec)[0])
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("prediction %d is not finite", i)
		}
		out[i] = y
	}
	return out, nil
}
