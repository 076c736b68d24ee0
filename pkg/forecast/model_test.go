package forecast

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Elvenson/xgboost-go/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModel(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeModel(t, `{"intercept": 1, "coefficients": [0.5, 0.25, 0.25, 0]}`)

	tests := []struct {
		name    string
		opts    Options
		wantErr error
		want    string
	}{
		{name: "no path", opts: Options{Type: TypeLinear}, wantErr: ErrNoModel},
		{name: "linear", opts: Options{Type: TypeLinear, Path: path}, want: TypeLinear},
		{name: "default type is linear", opts: Options{Path: path}, want: TypeLinear},
		{name: "unknown type", opts: Options{Type: "lstm", Path: path}, wantErr: errors.New("unknown")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(tt.opts)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrNoModel) {
					assert.ErrorIs(t, err, ErrNoModel)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Name())
		})
	}
}

func TestLinear_Predict(t *testing.T) {
	m, err := LoadLinear(writeModel(t, `{"intercept": 1, "coefficients": [0.5, 0.25, 0.25, 0.000001]}`))
	require.NoError(t, err)

	got, err := m.Predict([][]float64{
		{100, 104, 96, 1_000_000},
		{10, 10, 10, 0},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 1+50+26+24+1, got[0], 1e-9)
	assert.InDelta(t, 11, got[1], 1e-9)

	_, err = m.Predict([][]float64{{1, 2, 3}})
	assert.Error(t, err)

	_, err = m.Predict(nil)
	assert.Error(t, err)
}

func TestLoadLinear_Invalid(t *testing.T) {
	_, err := LoadLinear(writeModel(t, `{"intercept": 1, "coefficients": [1, 2]}`))
	assert.Error(t, err)

	_, err = LoadLinear(writeModel(t, `not json`))
	assert.Error(t, err)

	_, err = LoadLinear(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

type fakeEnsemble struct {
	got mat.SparseMatrix
	out mat.Matrix
	err error
}

func (f *fakeEnsemble) PredictProba(features mat.SparseMatrix) (mat.Matrix, error) {
	f.got = features
	return f.out, f.err
}

func TestXGBoost_Predict(t *testing.T) {
	a, b := mat.Vector{101.5}, mat.Vector{99.25}
	fake := &fakeEnsemble{out: mat.Matrix{Vectors: []*mat.Vector{&a, &b}}}
	m := &XGBoost{ensemble: fake}

	got, err := m.Predict([][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})
	require.NoError(t, err)
	assert.Equal(t, []float64{101.5, 99.25}, got)
	require.Len(t, fake.got.Vectors, 2)
	assert.Equal(t, float32(7), fake.got.Vectors[1][2])

	fake.out = mat.Matrix{Vectors: []*mat.Vector{&a}}
	_, err = m.Predict([][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})
	assert.Error(t, err, "row count mismatch")

	fake.err = errors.New("boom")
	_, err = m.Predict([][]float64{{1, 2, 3, 4}})
	assert.Error(t, err)
}

func TestLoadXGBoost_BadDepth(t *testing.T) {
	_, err := LoadXGBoost("model.json", 0)
	assert.Error(t, err)
}
