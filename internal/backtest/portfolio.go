package backtest

import (
	"stock-backtest/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Ledger is the cash/share book of a single-position strategy. After the
// first trade exactly one of Cash and Position is zero.
type Ledger struct {
	Cash           decimal.Decimal
	Position       decimal.Decimal
	TradesExecuted int
}

type Portfolio struct {
	ledger Ledger
}

func NewPortfolio(initialInvestment decimal.Decimal) *Portfolio {
	return &Portfolio{ledger: Ledger{Cash: initialInvestment, Position: decimal.Zero}}
}

func (p *Portfolio) Ledger() Ledger {
	return p.ledger
}

// ApplyBuy moves all cash into shares at price. It reports false without
// touching the ledger when there is no cash to invest.
func (p *Portfolio) ApplyBuy(price decimal.Decimal) (bool, error) {
	if !price.IsPositive() {
		return false, apperror.Computation(nil, "cannot buy at non-positive price %s", price.String())
	}
	if !p.ledger.Cash.IsPositive() {
		return false, nil
	}
	p.ledger.Position = p.ledger.Cash.Div(price)
	p.ledger.Cash = decimal.Zero
	p.ledger.TradesExecuted++
	return true, nil
}

// ApplySell liquidates the whole position at price.
func (p *Portfolio) ApplySell(price decimal.Decimal) (bool, error) {
	if !price.IsPositive() {
		return false, apperror.Computation(nil, "cannot sell at non-positive price %s", price.String())
	}
	if !p.ledger.Position.IsPositive() {
		return false, nil
	}
	p.ledger.Cash = p.ledger.Position.Mul(price)
	p.ledger.Position = decimal.Zero
	p.ledger.TradesExecuted++
	return true, nil
}

// CurrentValue marks the book to market at price.
func (p *Portfolio) CurrentValue(price decimal.Decimal) decimal.Decimal {
	return p.ledger.Cash.Add(p.ledger.Position.Mul(price))
}
