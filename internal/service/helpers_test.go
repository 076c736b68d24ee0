package service

import (
	"context"
	"time"

	"stock-backtest/config"
	"stock-backtest/internal/model"
	"stock-backtest/pkg/utils"

	"github.com/shopspring/decimal"
)

var baseDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// fakeUnitOfWork runs fn without a transaction and counts the calls.
type fakeUnitOfWork struct {
	runs int
}

func (u *fakeUnitOfWork) Run(_ context.Context, fn func(opts ...utils.DBOption) error) error {
	u.runs++
	return fn()
}

func testConfig() *config.Config {
	return &config.Config{
		Cache:      config.Cache{PriceSeriesTTL: time.Minute},
		MarketData: config.MarketData{LookbackDays: 730},
		Backtest: config.Backtest{
			ShortWindow:    20,
			LongWindow:     50,
			WarmupPolicy:   "BACKFILL",
			MaxBatchSize:   3,
			MaxConcurrency: 2,
			HistoryLimit:   5,
		},
		Forecast:  config.Forecast{HorizonDays: 30},
		Scheduler: config.Scheduler{MaxConcurrency: 1, TimeoutDuration: time.Minute},
	}
}

func pricesFromCloses(symbol string, closes ...string) []model.StockPrice {
	out := make([]model.StockPrice, len(closes))
	for i, c := range closes {
		d := decimal.RequireFromString(c)
		out[i] = model.StockPrice{
			Symbol: symbol,
			Date:   baseDate.AddDate(0, 0, i),
			Open:   d,
			High:   d,
			Low:    d,
			Close:  d,
			Volume: 1000,
		}
	}
	return out
}

func repeatClose(value string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// singleCycle buys at 90 on bar 50 and sells at 110 on bar 52 under the default 20/50 windows.
func singleCycle() []string {
	closes := repeatClose("100", 50)
	closes = append(closes, "90", "90", "110")
	return append(closes, repeatClose("110", 7)...)
}
