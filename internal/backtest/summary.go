package backtest

import (
	"stock-backtest/pkg/apperror"

	"github.com/shopspring/decimal"
)

// ResultPlaces is the number of decimal places of every money and percentage
// output. Rounding is half-even.
const ResultPlaces = 2

var hundred = decimal.NewFromInt(100)

type Result struct {
	Symbol            string          `json:"symbol"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
	FinalValue        decimal.Decimal `json:"final_value"`
	ROI               decimal.Decimal `json:"roi"`
	MaxDrawdown       decimal.Decimal `json:"max_drawdown"`
	TradesExecuted    int             `json:"trades_executed"`
}

// Summarize closes out a run. The open position is valued at lastClose but
// not sold, so the close-out is not counted as a trade. ROI is derived from
// the rounded final value so the reported figures agree with each other.
func Summarize(symbol string, initialInvestment decimal.Decimal, ledger Ledger, drawdown DrawdownState, lastClose decimal.Decimal) (Result, error) {
	if !initialInvestment.IsPositive() {
		return Result{}, apperror.Validation("initial investment must be greater than zero")
	}

	finalValue := ledger.Cash.Add(ledger.Position.Mul(lastClose)).RoundBank(ResultPlaces)
	roi := finalValue.Sub(initialInvestment).Div(initialInvestment).Mul(hundred)

	return Result{
		Symbol:            symbol,
		InitialInvestment: initialInvestment.RoundBank(ResultPlaces),
		FinalValue:        finalValue,
		ROI:               roi.RoundBank(ResultPlaces),
		MaxDrawdown:       drawdown.MaxDrawdown.Mul(hundred).RoundBank(ResultPlaces),
		TradesExecuted:    ledger.TradesExecuted,
	}, nil
}
