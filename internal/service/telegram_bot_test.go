package service

import (
	"context"
	"encoding/json"
	"testing"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/mocks"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTelegramBotService_Backtest(t *testing.T) {
	ctrl := gomock.NewController(t)
	backtestSvc := mocks.NewMockBacktestService(ctrl)
	svc := NewTelegramBotService(logger.Nop(), backtestSvc, mocks.NewMockPredictionService(ctrl))

	backtestSvc.EXPECT().
		Run(gomock.Any(), dto.BacktestRequest{Symbol: "IBM", InitialInvestment: json.Number("5000")}).
		Return(&dto.BacktestResponse{Symbol: "IBM", ShortWindow: 20, LongWindow: 50, WarmupPolicy: "BACKFILL", ROI: decimal.RequireFromString("12.5"), TradesExecuted: 4}, nil)

	msg, err := svc.Backtest(context.Background(), "IBM 5000")
	require.NoError(t, err)
	assert.Contains(t, msg, "Backtest IBM")
	assert.Contains(t, msg, "12\\.50%")
	assert.Contains(t, msg, "Trades: `4`")

	backtestSvc.EXPECT().
		Run(gomock.Any(), dto.BacktestRequest{Symbol: "MSFT", InitialInvestment: json.Number(defaultChatInvestment)}).
		Return(nil, apperror.NotFound("no historical data found for MSFT"))
	_, err = svc.Backtest(context.Background(), "MSFT")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Backtest(context.Background(), "   ")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestTelegramBotService_Predict(t *testing.T) {
	ctrl := gomock.NewController(t)
	predictionSvc := mocks.NewMockPredictionService(ctrl)
	svc := NewTelegramBotService(logger.Nop(), mocks.NewMockBacktestService(ctrl), predictionSvc)

	points := make([]dto.PredictionPoint, 12)
	for i := range points {
		points[i] = dto.PredictionPoint{Date: "2024-01-01", PredictedClose: decimal.NewFromInt(100)}
	}
	predictionSvc.EXPECT().Predict(gomock.Any(), "IBM").
		Return(&dto.PredictionResponse{Symbol: "IBM", Model: "linear", Predictions: points}, nil)

	msg, err := svc.Predict(context.Background(), "IBM")
	require.NoError(t, err)
	assert.Contains(t, msg, "Forecast IBM")
	assert.Contains(t, msg, "and 2 more days")

	_, err = svc.Predict(context.Background(), "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
