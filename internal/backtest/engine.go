package backtest

import (
	"strings"
	"time"

	"stock-backtest/pkg/apperror"

	"github.com/shopspring/decimal"
)

const (
	DefaultShortWindow = 20
	DefaultLongWindow  = 50
)

type Bar struct {
	Date  time.Time
	Close decimal.Decimal
}

type Input struct {
	Symbol            string
	InitialInvestment decimal.Decimal
	Bars              []Bar
	ShortWindow       int
	LongWindow        int
	WarmupPolicy      WarmupPolicy
}

// Trade is one executed BUY or SELL.
type Trade struct {
	Date   time.Time       `json:"date"`
	Action Action          `json:"action"`
	Price  decimal.Decimal `json:"price"`
	Shares decimal.Decimal `json:"shares"`
	Value  decimal.Decimal `json:"value"`
}

// EquityPoint is the state of the book entering a bar, before that bar's trade.
type EquityPoint struct {
	Date     time.Time
	Close    decimal.Decimal
	Value    decimal.Decimal
	Cash     decimal.Decimal
	Position decimal.Decimal
	Peak     decimal.Decimal
	Drawdown decimal.Decimal
	Action   Action
}

type Outcome struct {
	Result      Result
	Trades      []Trade
	Equity      []EquityPoint
	SkippedBars int
}

// Normalize fills default windows and policy and checks every precondition of a run.
func (in Input) Normalize() (Input, error) {
	in.Symbol = strings.TrimSpace(in.Symbol)
	if in.Symbol == "" {
		return in, apperror.Validation("stock symbol is required")
	}
	if !in.InitialInvestment.IsPositive() {
		return in, apperror.Validation("initial investment must be greater than zero")
	}

	if in.ShortWindow == 0 {
		in.ShortWindow = DefaultShortWindow
	}
	if in.LongWindow == 0 {
		in.LongWindow = DefaultLongWindow
	}
	if in.ShortWindow < 0 || in.LongWindow < 0 {
		return in, apperror.Validation("moving average windows must be positive")
	}
	if in.WarmupPolicy == "" {
		in.WarmupPolicy = DefaultWarmupPolicy
	}
	if !in.WarmupPolicy.Valid() {
		return in, apperror.Validation("unknown warmup policy %q", string(in.WarmupPolicy))
	}

	if len(in.Bars) == 0 {
		return in, apperror.EmptySeries("no price data available for %s", in.Symbol)
	}
	for i := 1; i < len(in.Bars); i++ {
		if !in.Bars[i].Date.After(in.Bars[i-1].Date) {
			return in, apperror.Validation("price series must be strictly ascending by date: %s follows %s",
				in.Bars[i].Date.Format(time.DateOnly), in.Bars[i-1].Date.Format(time.DateOnly))
		}
	}
	return in, nil
}

// Run replays the crossover strategy over in.Bars in one forward pass.
// Each call owns its ledger and drawdown state, so runs may execute concurrently.
func Run(in Input) (*Outcome, error) {
	in, err := in.Normalize()
	if err != nil {
		return nil, err
	}

	closes := make([]decimal.Decimal, len(in.Bars))
	for i, b := range in.Bars {
		closes[i] = b.Close
	}
	shortMA, err := ComputeMovingAverage(closes, in.ShortWindow, in.WarmupPolicy)
	if err != nil {
		return nil, err
	}
	longMA, err := ComputeMovingAverage(closes, in.LongWindow, in.WarmupPolicy)
	if err != nil {
		return nil, err
	}

	signals := NewSignalEngine()
	portfolio := NewPortfolio(in.InitialInvestment)
	drawdown, err := NewDrawdownTracker(in.InitialInvestment)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Equity: make([]EquityPoint, 0, len(in.Bars))}
	lastClose := decimal.Zero

	for i, bar := range in.Bars {
		// Bars with an unusable close are skipped whole; they carry no valuation.
		if !bar.Close.IsPositive() {
			out.SkippedBars++
			continue
		}
		lastClose = bar.Close

		value := portfolio.CurrentValue(bar.Close)
		dd := drawdown.Update(value)
		ledger := portfolio.Ledger()
		point := EquityPoint{
			Date:     bar.Date,
			Close:    bar.Close,
			Value:    value,
			Cash:     ledger.Cash,
			Position: ledger.Position,
			Peak:     drawdown.State().PeakValue,
			Drawdown: dd,
		}

		point.Action = signals.Next(bar.Close, shortMA[i], longMA[i])
		var applied bool
		switch point.Action {
		case ActionBuy:
			applied, err = portfolio.ApplyBuy(bar.Close)
		case ActionSell:
			applied, err = portfolio.ApplySell(bar.Close)
		}
		if err != nil {
			return nil, err
		}
		if applied {
			after := portfolio.Ledger()
			shares := after.Position
			if point.Action == ActionSell {
				shares = ledger.Position
			}
			out.Trades = append(out.Trades, Trade{
				Date:   bar.Date,
				Action: point.Action,
				Price:  bar.Close,
				Shares: shares,
				Value:  portfolio.CurrentValue(bar.Close),
			})
		}
		out.Equity = append(out.Equity, point)
	}

	result, err := Summarize(in.Symbol, in.InitialInvestment, portfolio.Ledger(), drawdown.State(), lastClose)
	if err != nil {
		return nil, err
	}
	out.Result = result
	return out, nil
}
