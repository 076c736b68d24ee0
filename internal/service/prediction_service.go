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
	"stock-backtest/pkg/forecast"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"

	"github.com/shopspring/decimal"
)

const predictionPlaces = 2

type PredictionService interface {
	Predict(ctx context.Context, symbol string) (*dto.PredictionResponse, error)
}

type predictionService struct {
	cfg                 *config.Config
	log                 *logger.Logger
	model               forecast.Model
	stockPriceRepo      repository.StockPriceRepository
	stockPredictionRepo repository.StockPredictionRepository
	unitOfWork          repository.UnitOfWork
}

// NewPredictionService shares one loaded model across requests; forecaster may be
// nil when none is configured, in which case Predict always fails.
func NewPredictionService(
	cfg *config.Config,
	log *logger.Logger,
	forecaster forecast.Model,
	stockPriceRepo repository.StockPriceRepository,
	stockPredictionRepo repository.StockPredictionRepository,
	unitOfWork repository.UnitOfWork,
) PredictionService {
	return &predictionService{
		cfg:                 cfg,
		log:                 log,
		model:               forecaster,
		stockPriceRepo:      stockPriceRepo,
		stockPredictionRepo: stockPredictionRepo,
		unitOfWork:          unitOfWork,
	}
}

func (s *predictionService) Predict(ctx context.Context, symbol string) (*dto.PredictionResponse, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, apperror.Validation("stock symbol is required")
	}
	if s.model == nil {
		return nil, apperror.Computation(forecast.ErrNoModel, "prediction model is not available")
	}

	horizon := s.cfg.Forecast.HorizonDays
	if horizon <= 0 {
		horizon = 30
	}
	prices, err := s.stockPriceRepo.Get(ctx, model.GetStockPriceParam{Symbol: symbol, Latest: horizon})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load stock prices", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to load stock prices: %w", err)
	}
	if len(prices) == 0 {
		return nil, apperror.NotFound("no historical data found for %s", symbol)
	}

	features := make([][]float64, len(prices))
	for i, p := range prices {
		features[i] = []float64{
			p.Open.InexactFloat64(),
			p.High.InexactFloat64(),
			p.Low.InexactFloat64(),
			float64(p.Volume),
		}
	}

	predicted, err := s.model.Predict(features)
	if err != nil {
		s.log.ErrorContext(ctx, "Model prediction failed",
			logger.StringField("symbol", symbol),
			logger.StringField("model", s.model.Name()),
			logger.ErrorField(err))
		return nil, apperror.Computation(err, "failed to predict prices for %s", symbol)
	}

	lastDate := utils.DateOnly(prices[len(prices)-1].Date)
	records := make([]model.StockPrediction, len(predicted))
	points := make([]dto.PredictionPoint, len(predicted))
	for i, v := range predicted {
		date := lastDate.AddDate(0, 0, i+1)
		value := decimal.NewFromFloat(v).RoundBank(predictionPlaces)
		records[i] = model.StockPrediction{
			Symbol:         symbol,
			Date:           date,
			PredictedClose: value,
			ModelName:      s.model.Name(),
		}
		points[i] = dto.PredictionPoint{Date: date.Format(time.DateOnly), PredictedClose: value}
	}

	// The stored forecast is replaced as a whole so a shorter horizon leaves no stale days.
	err = s.unitOfWork.Run(ctx, func(opts ...utils.DBOption) error {
		if _, err := s.stockPredictionRepo.DeleteAfter(ctx, symbol, lastDate, opts...); err != nil {
			return err
		}
		return s.stockPredictionRepo.Upsert(ctx, records, opts...)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to store predictions", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to store predictions: %w", err)
	}

	s.log.InfoContext(ctx, "Predictions generated",
		logger.StringField("symbol", symbol),
		logger.StringField("model", s.model.Name()),
		logger.IntField("count", len(points)))

	return &dto.PredictionResponse{
		Symbol:      symbol,
		Model:       s.model.Name(),
		BasedOn:     len(prices),
		Predictions: points,
	}, nil
}
