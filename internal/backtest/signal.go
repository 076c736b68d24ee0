package backtest

import (
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

type PositionState string

const (
	StateFlat PositionState = "FLAT"
	StateLong PositionState = "LONG"
)

// SignalEngine is the FLAT/LONG state machine of the crossover strategy.
// It buys when a flat book closes under the long average and sells when a
// long book closes over the short average.
type SignalEngine struct {
	state PositionState
}

func NewSignalEngine() *SignalEngine {
	return &SignalEngine{state: StateFlat}
}

func (s *SignalEngine) State() PositionState {
	return s.state
}

// Next evaluates one bar and advances the state. A bar with either average
// undefined is a HOLD.
func (s *SignalEngine) Next(close decimal.Decimal, shortMA, longMA optional.Option[decimal.Decimal]) Action {
	if shortMA.IsNone() || longMA.IsNone() {
		return ActionHold
	}

	switch {
	case s.state == StateFlat && close.LessThan(longMA.Unwrap()):
		s.state = StateLong
		return ActionBuy
	case s.state == StateLong && close.GreaterThan(shortMA.Unwrap()):
		s.state = StateFlat
		return ActionSell
	default:
		return ActionHold
	}
}
