package service

import (
	"stock-backtest/config"
	"stock-backtest/internal/repository"
	"stock-backtest/internal/strategy"
	"stock-backtest/pkg/cache"
	"stock-backtest/pkg/forecast"
	"stock-backtest/pkg/logger"
)

type Service struct {
	BacktestService    BacktestService
	MarketDataService  MarketDataService
	PredictionService  PredictionService
	ReportService      ReportService
	SchedulerService   SchedulerService
	TaskExecutor       TaskExecutor
	TelegramBotService TelegramBotService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	forecaster forecast.Model,
) *Service {
	series := NewPriceSeries(inmemoryCache, repo.StockPriceRepo, cfg.Cache.PriceSeriesTTL).WithArchive(repo.PriceArchiveRepo)

	backtestService := NewBacktestService(cfg, log, series, repo.BacktestResultRepo)
	marketDataService := NewMarketDataService(cfg, log, repo.MarketDataRepo, repo.StockPriceRepo, repo.PriceArchiveRepo, series)
	predictionService := NewPredictionService(cfg, log, forecaster, repo.StockPriceRepo, repo.StockPredictionRepo, repo.UnitOfWork)
	reportService := NewReportService(log, series, repo.StockPredictionRepo, repo.BacktestResultRepo)

	taskExecutor := NewTaskExecutor(log, repo.JobRepo,
		strategy.NewPriceSyncStrategy(log, marketDataService),
		strategy.NewPredictionRefreshStrategy(log, predictionService),
		strategy.NewDataCleanUpStrategy(log, repo.BacktestResultRepo, repo.JobRepo),
	)
	schedulerService := NewSchedulerService(cfg, log, repo.JobRepo, taskExecutor)

	telegramBotService := NewTelegramBotService(log, backtestService, predictionService)

	return &Service{
		BacktestService:    backtestService,
		MarketDataService:  marketDataService,
		PredictionService:  predictionService,
		ReportService:      reportService,
		SchedulerService:   schedulerService,
		TaskExecutor:       taskExecutor,
		TelegramBotService: telegramBotService,
	}
}
