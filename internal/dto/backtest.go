package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// BacktestRequest binds from the query string (GET) or a JSON body (POST).
// InitialInvestment stays textual until the service parses it as a decimal.
type BacktestRequest struct {
	Symbol            string      `json:"symbol" query:"symbol" validate:"required,max=16"`
	InitialInvestment json.Number `json:"initial_investment" query:"initial_investment" validate:"required"`
	ShortWindow       int         `json:"short_window,omitempty" query:"short_window" validate:"omitempty,min=1,max=500"`
	LongWindow        int         `json:"long_window,omitempty" query:"long_window" validate:"omitempty,min=1,max=1000"`
	WarmupPolicy      string      `json:"warmup_policy,omitempty" query:"warmup_policy"`
	StartDate         string      `json:"start_date,omitempty" query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate           string      `json:"end_date,omitempty" query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type TradeLog struct {
	Date   string          `json:"date"`
	Action string          `json:"action"`
	Price  decimal.Decimal `json:"price"`
	Shares decimal.Decimal `json:"shares"`
	Value  decimal.Decimal `json:"value"`
}

type BacktestResponse struct {
	RunID             string          `json:"run_id"`
	RunAt             time.Time       `json:"run_at"`
	Symbol            string          `json:"symbol"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
	FinalValue        decimal.Decimal `json:"final_value"`
	ROI               decimal.Decimal `json:"roi"`
	MaxDrawdown       decimal.Decimal `json:"max_drawdown"`
	TradesExecuted    int             `json:"trades_executed"`
	ShortWindow       int             `json:"short_window"`
	LongWindow        int             `json:"long_window"`
	WarmupPolicy      string          `json:"warmup_policy"`
	SkippedBars       int             `json:"skipped_bars"`
	Trades            []TradeLog      `json:"trades,omitempty"`
}

type BacktestBatchRequest struct {
	Requests []BacktestRequest `json:"requests" validate:"required,min=1,dive"`
}

// BacktestBatchItem carries either a result or the sanitized failure of one request.
type BacktestBatchItem struct {
	Index  int               `json:"index"`
	Symbol string            `json:"symbol"`
	Code   int               `json:"code"`
	Error  string            `json:"error,omitempty"`
	Result *BacktestResponse `json:"result,omitempty"`
}

type BacktestHistoryRequest struct {
	Symbol string `param:"symbol" validate:"required,max=16"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
}
