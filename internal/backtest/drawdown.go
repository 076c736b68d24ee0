package backtest

import (
	"stock-backtest/pkg/apperror"

	"github.com/shopspring/decimal"
)

type DrawdownState struct {
	PeakValue   decimal.Decimal
	MaxDrawdown decimal.Decimal // fraction in [0, 1]
}

type DrawdownTracker struct {
	state DrawdownState
}

// NewDrawdownTracker seeds the peak with the initial investment, which must be positive.
func NewDrawdownTracker(initialInvestment decimal.Decimal) (*DrawdownTracker, error) {
	if !initialInvestment.IsPositive() {
		return nil, apperror.Computation(nil, "drawdown peak must be positive, got %s", initialInvestment.String())
	}
	return &DrawdownTracker{state: DrawdownState{PeakValue: initialInvestment, MaxDrawdown: decimal.Zero}}, nil
}

// Update records the portfolio value entering a bar and returns that bar's drawdown.
func (d *DrawdownTracker) Update(value decimal.Decimal) decimal.Decimal {
	d.state.PeakValue = decimal.Max(d.state.PeakValue, value)
	drawdown := d.state.PeakValue.Sub(value).Div(d.state.PeakValue)
	d.state.MaxDrawdown = decimal.Max(d.state.MaxDrawdown, drawdown)
	return drawdown
}

func (d *DrawdownTracker) State() DrawdownState {
	return d.state
}
