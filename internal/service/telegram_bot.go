package service

import (
	"context"
	"encoding/json"
	"strings"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/telegram"
)

// defaultChatInvestment is used when /backtest is sent without an amount.
const defaultChatInvestment = "10000"

// TelegramBotService turns chat command payloads into formatted replies.
type TelegramBotService interface {
	Backtest(ctx context.Context, payload string) (string, error)
	Predict(ctx context.Context, payload string) (string, error)
}

type telegramBotService struct {
	log               *logger.Logger
	backtestService   BacktestService
	predictionService PredictionService
}

func NewTelegramBotService(
	log *logger.Logger,
	backtestService BacktestService,
	predictionService PredictionService,
) TelegramBotService {
	return &telegramBotService{
		log:               log,
		backtestService:   backtestService,
		predictionService: predictionService,
	}
}

// Backtest handles "SYMBOL [INVESTMENT]".
func (s *telegramBotService) Backtest(ctx context.Context, payload string) (string, error) {
	args := strings.Fields(payload)
	if len(args) == 0 {
		return "", apperror.Validation("usage: /backtest SYMBOL [INVESTMENT]")
	}
	investment := defaultChatInvestment
	if len(args) > 1 {
		investment = args[1]
	}

	resp, err := s.backtestService.Run(ctx, dto.BacktestRequest{
		Symbol:            args[0],
		InitialInvestment: json.Number(investment),
	})
	if err != nil {
		s.log.WarnContext(ctx, "Chat backtest failed", logger.StringField("payload", payload), logger.ErrorField(err))
		return "", err
	}
	return telegram.FormatBacktestResult(resp), nil
}

// Predict handles "SYMBOL".
func (s *telegramBotService) Predict(ctx context.Context, payload string) (string, error) {
	args := strings.Fields(payload)
	if len(args) == 0 {
		return "", apperror.Validation("usage: /predict SYMBOL")
	}
	resp, err := s.predictionService.Predict(ctx, args[0])
	if err != nil {
		s.log.WarnContext(ctx, "Chat prediction failed", logger.StringField("payload", payload), logger.ErrorField(err))
		return "", err
	}
	return telegram.FormatPrediction(resp), nil
}
