package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/mocks"
	"stock-backtest/internal/model"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

type fakeSyncer struct {
	mu     sync.Mutex
	failOn map[string]bool
	seen   []string
}

func (f *fakeSyncer) Sync(_ context.Context, symbol string) (*dto.FetchStockResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, symbol)
	if f.failOn[symbol] {
		return nil, errors.New("provider throttled")
	}
	return &dto.FetchStockResponse{Symbol: symbol, Stored: 5}, nil
}

type fakePredictor struct{}

func (fakePredictor) Predict(_ context.Context, symbol string) (*dto.PredictionResponse, error) {
	return &dto.PredictionResponse{Symbol: symbol, Predictions: make([]dto.PredictionPoint, 30)}, nil
}

func job(t *testing.T, payload interface{}) *model.Job {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return &model.Job{ID: 1, Payload: datatypes.JSON(raw)}
}

func TestPriceSyncStrategy(t *testing.T) {
	tests := []struct {
		name     string
		symbols  []string
		failOn   map[string]bool
		wantCode int32
		wantErr  bool
	}{
		{name: "all synced", symbols: []string{"ibm", "AAPL", "IBM"}, wantCode: JOB_EXIT_CODE_SUCCESS},
		{name: "partial", symbols: []string{"IBM", "AAPL"}, failOn: map[string]bool{"AAPL": true}, wantCode: JOB_EXIT_CODE_PARTIAL_SUCCESS},
		{name: "all failed", symbols: []string{"IBM"}, failOn: map[string]bool{"IBM": true}, wantCode: JOB_EXIT_CODE_FAILED, wantErr: true},
		{name: "no symbols", symbols: nil, wantCode: JOB_EXIT_CODE_SKIPPED},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := &fakeSyncer{failOn: tt.failOn}
			s := NewPriceSyncStrategy(logger.Nop(), syncer)
			assert.Equal(t, JobTypePriceSync, s.GetType())

			res, err := s.Execute(context.Background(), job(t, SymbolsPayload{Symbols: tt.symbols}))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCode, res.ExitCode)
			assert.Len(t, syncer.seen, len(uniqueUpper(tt.symbols)))
		})
	}
}

func uniqueUpper(symbols []string) map[string]bool {
	out := map[string]bool{}
	for _, s := range symbols {
		out[utils.NormalizeSymbol(s)] = true
	}
	return out
}

func TestPriceSyncStrategy_BadPayload(t *testing.T) {
	s := NewPriceSyncStrategy(logger.Nop(), &fakeSyncer{})
	res, err := s.Execute(context.Background(), &model.Job{ID: 1, Payload: datatypes.JSON(`{"symbols": 5}`)})
	assert.Error(t, err)
	assert.Equal(t, int32(JOB_EXIT_CODE_FAILED), res.ExitCode)
}

func TestPriceSyncStrategy_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	syncer := &fakeSyncer{}
	s := NewPriceSyncStrategy(logger.Nop(), syncer)
	res, err := s.Execute(ctx, job(t, SymbolsPayload{Symbols: []string{"IBM", "AAPL"}, Concurrency: 1}))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(JOB_EXIT_CODE_FAILED), res.ExitCode)
	assert.Contains(t, res.Output, "symbol run interrupted")
	assert.Empty(t, syncer.seen)
}

func TestPredictionRefreshStrategy(t *testing.T) {
	s := NewPredictionRefreshStrategy(logger.Nop(), fakePredictor{})
	assert.Equal(t, JobTypePredictionRefresh, s.GetType())

	res, err := s.Execute(context.Background(), job(t, SymbolsPayload{Symbols: []string{"IBM"}, Concurrency: 1}))
	require.NoError(t, err)

	var out []SymbolResult
	require.NoError(t, json.Unmarshal([]byte(res.Output), &out))
	assert.Equal(t, []SymbolResult{{Symbol: "IBM", Count: 30}}, out)
}

func TestDataCleanUpStrategy(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	orig := utils.TimeNow
	utils.TimeNow = func() time.Time { return now }
	t.Cleanup(func() { utils.TimeNow = orig })

	ctrl := gomock.NewController(t)
	resultRepo := mocks.NewMockBacktestResultRepository(ctrl)
	jobRepo := mocks.NewMockJobRepository(ctrl)
	s := NewDataCleanUpStrategy(logger.Nop(), resultRepo, jobRepo)
	assert.Equal(t, JobTypeDataCleanUp, s.GetType())

	cutoff := now.AddDate(0, 0, -90)
	resultRepo.EXPECT().DeleteOlderThan(gomock.Any(), cutoff).Return(int64(12), nil)
	jobRepo.EXPECT().DeleteTaskHistoryOlderThan(gomock.Any(), cutoff).Return(int64(0), errors.New("lock timeout"))

	res, err := s.Execute(context.Background(), job(t, DataCleanUpPayload{RetentionDays: 90}))
	require.NoError(t, err)
	assert.Equal(t, int32(JOB_EXIT_CODE_PARTIAL_SUCCESS), res.ExitCode)

	var out []DataCleanUpResult
	require.NoError(t, json.Unmarshal([]byte(res.Output), &out))
	require.Len(t, out, 2)
	assert.Equal(t, DataCleanUpResult{Table: "backtest_results", Total: 12}, out[0])
	assert.NotEmpty(t, out[1].Error)

	_, err = s.Execute(context.Background(), job(t, DataCleanUpPayload{}))
	assert.Error(t, err)
}
