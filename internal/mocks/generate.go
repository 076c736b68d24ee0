package mocks

//go:generate mockgen -destination=./mock_repository.go -package=mocks stock-backtest/internal/repository BacktestResultRepository,JobRepository,MarketDataRepository,PriceArchiveRepository,StockPredictionRepository,StockPriceRepository
//go:generate mockgen -destination=./mock_service.go -package=mocks stock-backtest/internal/service BacktestService,MarketDataService,PredictionService,ReportService,SchedulerService,TaskExecutor,TelegramBotService
