package repository

import (
	"stock-backtest/config"
	"stock-backtest/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	JobRepo             JobRepository
	StockPriceRepo      StockPriceRepository
	StockPredictionRepo StockPredictionRepository
	BacktestResultRepo  BacktestResultRepository
	MarketDataRepo      MarketDataRepository
	PriceArchiveRepo    PriceArchiveRepository
	UnitOfWork          UnitOfWork
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	marketDataRepo, err := NewMarketDataRepository(cfg.MarketData.Provider,
		NewAlphaVantageRepository(cfg.MarketData.AlphaVantage, log),
		NewAlpacaRepository(cfg.MarketData, log),
	)
	if err != nil {
		return nil, err
	}

	return &Repository{
		JobRepo:             NewJobRepository(db),
		StockPriceRepo:      NewStockPriceRepository(db),
		StockPredictionRepo: NewStockPredictionRepository(db),
		BacktestResultRepo:  NewBacktestResultRepository(db),
		MarketDataRepo:      marketDataRepo,
		PriceArchiveRepo:    NewPriceArchiveRepository(cfg.MarketData.ArchiveDir),
		UnitOfWork:          NewUnitOfWork(db),
	}, nil
}
