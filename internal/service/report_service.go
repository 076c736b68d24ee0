package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"
)

type ReportService interface {
	Generate(ctx context.Context, symbol string) (*dto.ReportResponse, error)
}

type reportService struct {
	log                 *logger.Logger
	series              *PriceSeries
	stockPredictionRepo repository.StockPredictionRepository
	backtestResultRepo  repository.BacktestResultRepository
}

func NewReportService(
	log *logger.Logger,
	series *PriceSeries,
	stockPredictionRepo repository.StockPredictionRepository,
	backtestResultRepo repository.BacktestResultRepository,
) ReportService {
	return &reportService{
		log:                 log,
		series:              series,
		stockPredictionRepo: stockPredictionRepo,
		backtestResultRepo:  backtestResultRepo,
	}
}

// Generate gathers historical closes, stored predictions and the latest
// backtest for symbol.
func (s *reportService) Generate(ctx context.Context, symbol string) (*dto.ReportResponse, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, apperror.Validation("stock symbol is required")
	}

	prices, err := s.series.Load(ctx, symbol)
	if err != nil {
		return nil, err
	}
	predictions, err := s.stockPredictionRepo.GetBySymbol(ctx, symbol)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load predictions", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}
	if len(prices) == 0 || len(predictions) == 0 {
		return nil, apperror.NotFound("no data found for the report")
	}

	latest, err := s.backtestResultRepo.GetLatest(ctx, symbol)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load latest backtest", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to load latest backtest: %w", err)
	}
	if latest == nil {
		return nil, apperror.NotFound("no backtest results found")
	}

	report := &dto.ReportResponse{
		Symbol:      symbol,
		GeneratedAt: utils.TimeNow(),
		Historical:  make([]dto.PricePoint, 0, len(prices)),
		Predictions: make([]dto.PredictionPoint, 0, len(predictions)),
	}
	for _, p := range prices {
		report.Historical = append(report.Historical, dto.PricePoint{Date: p.Date.Format(time.DateOnly), Close: p.Close})
	}
	for _, p := range predictions {
		report.Predictions = append(report.Predictions, dto.PredictionPoint{Date: p.Date.Format(time.DateOnly), PredictedClose: p.PredictedClose})
	}

	bt := toBacktestResponse(latest)
	if len(latest.Trades) > 0 {
		_ = json.Unmarshal(latest.Trades, &bt.Trades)
	}
	report.LatestBacktest = &bt
	return report, nil
}
