package service

import (
	"context"
	"fmt"
	"time"

	"stock-backtest/internal/model"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/cache"
)

const archiveSource = "archive"

func priceCacheKey(symbol string) string {
	return "prices:" + symbol
}

// PriceSeries serves a symbol's full stored series, oldest first, from the
// in-memory cache when possible. Symbols with no rows in the database fall
// back to the parquet archive when one is attached.
type PriceSeries struct {
	cache   cache.Cache
	repo    repository.StockPriceRepository
	archive repository.PriceArchiveRepository
	ttl     time.Duration
}

func NewPriceSeries(c cache.Cache, repo repository.StockPriceRepository, ttl time.Duration) *PriceSeries {
	return &PriceSeries{cache: c, repo: repo, ttl: ttl}
}

func (p *PriceSeries) WithArchive(archive repository.PriceArchiveRepository) *PriceSeries {
	p.archive = archive
	return p
}

func (p *PriceSeries) Load(ctx context.Context, symbol string) ([]model.StockPrice, error) {
	key := priceCacheKey(symbol)
	if p.cache != nil {
		if prices, ok := cache.GetAs[[]model.StockPrice](p.cache, key); ok {
			return prices, nil
		}
	}

	prices, err := p.repo.Get(ctx, model.GetStockPriceParam{Symbol: symbol})
	if err != nil {
		return nil, fmt.Errorf("failed to load stock prices: %w", err)
	}
	if len(prices) == 0 && p.archive != nil && p.archive.Enabled() {
		if prices, err = p.loadArchive(ctx, symbol); err != nil {
			return nil, err
		}
	}
	if p.cache != nil && len(prices) > 0 {
		p.cache.Set(key, prices, p.ttl)
	}
	return prices, nil
}

func (p *PriceSeries) loadArchive(ctx context.Context, symbol string) ([]model.StockPrice, error) {
	bars, err := p.archive.Read(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to read archived prices: %w", err)
	}
	prices := make([]model.StockPrice, len(bars))
	for i, b := range bars {
		prices[i] = model.StockPrice{
			Symbol: symbol,
			Date:   b.Date,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
			Source: archiveSource,
		}
	}
	return prices, nil
}

func (p *PriceSeries) Invalidate(symbol string) {
	if p.cache != nil {
		p.cache.Delete(priceCacheKey(symbol))
	}
}

// filterByDate keeps prices within [from, to]; nil bounds are open.
func filterByDate(prices []model.StockPrice, from, to *time.Time) []model.StockPrice {
	if from == nil && to == nil {
		return prices
	}
	out := make([]model.StockPrice, 0, len(prices))
	for _, p := range prices {
		if from != nil && p.Date.Before(*from) {
			continue
		}
		if to != nil && p.Date.After(*to) {
			continue
		}
		out = append(out, p)
	}
	return out
}
