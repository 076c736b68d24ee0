package forecast

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Linear is an ordinary least squares fit exported as JSON:
//
//	{"intercept": 1.2, "coefficients": [0.4, 0.3, 0.3, 0.0000001]}
type Linear struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

func LoadLinear(path string) (*Linear, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read linear model: %w", err)
	}
	var m Linear
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode linear model: %w", err)
	}
	if len(m.Coefficients) != FeatureCount {
		return nil, fmt.Errorf("linear model has %d coefficients, want %d", len(m.Coefficients), FeatureCount)
	}
	return &m, nil
}

func (m *Linear) Name() string { return TypeLinear }

func (m *Linear) Predict(features [][]float64) ([]float64, error) {
	if err := checkRows(features); err != nil {
		return nil, err
	}
	out := make([]float64, len(features))
	for i, row := range features {
		y := m.Intercept
		for j, x := range row {
			y += m.Coefficients[j] * x
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("prediction %d is not finite", i)
		}
		out[i] = y
	}
	return out, nil
}
