package service

import (
	"context"
	"fmt"
	"time"

	"stock-backtest/config"
	"stock-backtest/internal/dto"
	"stock-backtest/internal/model"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"
)

type MarketDataService interface {
	Sync(ctx context.Context, symbol string) (*dto.FetchStockResponse, error)
}

type marketDataService struct {
	cfg            *config.Config
	log            *logger.Logger
	marketDataRepo repository.MarketDataRepository
	stockPriceRepo repository.StockPriceRepository
	archiveRepo    repository.PriceArchiveRepository
	series         *PriceSeries
}

func NewMarketDataService(
	cfg *config.Config,
	log *logger.Logger,
	marketDataRepo repository.MarketDataRepository,
	stockPriceRepo repository.StockPriceRepository,
	archiveRepo repository.PriceArchiveRepository,
	series *PriceSeries,
) MarketDataService {
	return &marketDataService{
		cfg:            cfg,
		log:            log,
		marketDataRepo: marketDataRepo,
		stockPriceRepo: stockPriceRepo,
		archiveRepo:    archiveRepo,
		series:         series,
	}
}

// Sync fetches daily bars for symbol, keeps the configured lookback window and
// upserts them. Re-running it for the same day is idempotent.
func (s *marketDataService) Sync(ctx context.Context, symbol string) (*dto.FetchStockResponse, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, apperror.Validation("stock symbol is required")
	}

	bars, err := s.marketDataRepo.Get(ctx, symbol)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch market data",
			logger.StringField("symbol", symbol),
			logger.StringField("provider", s.marketDataRepo.Provider()),
			logger.ErrorField(err))
		return nil, err
	}

	received := len(bars)
	bars = withinLookback(bars, s.cfg.MarketData.LookbackDays, utils.TimeNow())
	if len(bars) == 0 {
		return nil, apperror.NotFound("no historical data found for %s", symbol)
	}

	provider := s.marketDataRepo.Provider()
	prices := make([]model.StockPrice, 0, len(bars))
	for _, b := range bars {
		prices = append(prices, model.StockPrice{
			Symbol: symbol,
			Date:   utils.DateOnly(b.Date),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
			Source: provider,
		})
	}

	stored, err := s.stockPriceRepo.Upsert(ctx, prices)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to upsert stock prices", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to store stock prices: %w", err)
	}
	s.series.Invalidate(symbol)

	archived := false
	if s.archiveRepo != nil && s.archiveRepo.Enabled() {
		if err := s.archiveRepo.Write(ctx, symbol, bars); err != nil {
			s.log.WarnContext(ctx, "Failed to archive bars", logger.StringField("symbol", symbol), logger.ErrorField(err))
		} else {
			archived = true
		}
	}

	s.log.InfoContext(ctx, "Stock data synced",
		logger.StringField("symbol", symbol),
		logger.StringField("provider", provider),
		logger.IntField("received", received),
		logger.IntField("stored", int(stored)),
	)

	return &dto.FetchStockResponse{
		Symbol:   symbol,
		Provider: provider,
		Received: received,
		Stored:   int(stored),
		From:     bars[0].Date.Format(time.DateOnly),
		To:       bars[len(bars)-1].Date.Format(time.DateOnly),
		Archived: archived,
	}, nil
}

// withinLookback drops bars older than days before now. days <= 0 keeps everything.
func withinLookback(bars []dto.StockOHLCV, days int, now time.Time) []dto.StockOHLCV {
	if days <= 0 {
		return bars
	}
	cutoff := utils.DateOnly(now).AddDate(0, 0, -days)
	out := make([]dto.StockOHLCV, 0, len(bars))
	for _, b := range bars {
		if !b.Date.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out
}
