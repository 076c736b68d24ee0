package dto

import "time"

type ReportResponse struct {
	Symbol         string            `json:"symbol"`
	GeneratedAt    time.Time         `json:"generated_at"`
	Historical     []PricePoint      `json:"historical"`
	Predictions    []PredictionPoint `json:"predictions"`
	LatestBacktest *BacktestResponse `json:"latest_backtest"`
}
