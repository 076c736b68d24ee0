package repository

import (
	"context"
	"fmt"

	"stock-backtest/config"
	"stock-backtest/internal/dto"
)

// MarketDataRepository picks the configured provider.
type MarketDataRepository interface {
	Get(ctx context.Context, symbol string) ([]dto.StockOHLCV, error)
	Provider() string
}

type marketDataRepository struct {
	active MarketDataProvider
}

func NewMarketDataRepository(provider string, providers ...MarketDataProvider) (MarketDataRepository, error) {
	if provider == "" {
		provider = config.ProviderAlphaVantage
	}
	for _, p := range providers {
		if p.Name() == provider {
			return &marketDataRepository{active: p}, nil
		}
	}
	return nil, fmt.Errorf("market data provider %q is not available", provider)
}

func (r *marketDataRepository) Get(ctx context.Context, symbol string) ([]dto.StockOHLCV, error) {
	return r.active.Get(ctx, symbol)
}

func (r *marketDataRepository) Provider() string {
	return r.active.Name()
}
