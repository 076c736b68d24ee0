package strategy

import (
	"context"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/model"
)

const (
	JOB_EXIT_CODE_SUCCESS         = 200
	JOB_EXIT_CODE_FAILED          = 500
	JOB_EXIT_CODE_SKIPPED         = 204
	JOB_EXIT_CODE_PARTIAL_SUCCESS = 206
)

type JobType string

const (
	JobTypePriceSync         JobType = "price_sync"
	JobTypePredictionRefresh JobType = "prediction_refresh"
	JobTypeDataCleanUp       JobType = "data_clean_up"
)

type JobResult struct {
	ExitCode int32  `json:"exit_code"`
	Output   string `json:"output"`
}

// JobExecutionStrategy defines the interface for different job execution strategies.
type JobExecutionStrategy interface {
	Execute(ctx context.Context, job *model.Job) (JobResult, error)
	GetType() JobType
}

// PriceSyncer fetches and stores the latest bars of one symbol.
type PriceSyncer interface {
	Sync(ctx context.Context, symbol string) (*dto.FetchStockResponse, error)
}

// Predictor regenerates the stored forecast of one symbol.
type Predictor interface {
	Predict(ctx context.Context, symbol string) (*dto.PredictionResponse, error)
}

// SymbolsPayload is the payload of jobs that fan out over symbols.
type SymbolsPayload struct {
	Symbols     []string `json:"symbols"`
	Concurrency int      `json:"concurrency"`
}

// SymbolResult is the per-symbol line of a job's output.
type SymbolResult struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}
