package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"stock-backtest/config"
	"stock-backtest/internal/backtest"
	"stock-backtest/internal/dto"
	"stock-backtest/internal/model"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

const (
	internalErrorMessage = "internal server error"

	// Bounds mirror the request DTO validation tags.
	maxSymbolLength = 16
	maxShortWindow  = 500
	maxLongWindow   = 1000
)

// BacktestService runs the moving-average crossover strategy over stored bars.
type BacktestService interface {
	Run(ctx context.Context, req dto.BacktestRequest) (*dto.BacktestResponse, error)
	RunBatch(ctx context.Context, reqs []dto.BacktestRequest) ([]dto.BacktestBatchItem, error)
	History(ctx context.Context, symbol string, limit int) ([]dto.BacktestResponse, error)
}

type backtestService struct {
	cfg        *config.Config
	log        *logger.Logger
	series     *PriceSeries
	resultRepo repository.BacktestResultRepository
}

func NewBacktestService(
	cfg *config.Config,
	log *logger.Logger,
	series *PriceSeries,
	resultRepo repository.BacktestResultRepository,
) BacktestService {
	return &backtestService{
		cfg:        cfg,
		log:        log,
		series:     series,
		resultRepo: resultRepo,
	}
}

func (s *backtestService) Run(ctx context.Context, req dto.BacktestRequest) (*dto.BacktestResponse, error) {
	in, from, to, err := s.buildInput(req)
	if err != nil {
		return nil, err
	}

	prices, err := s.series.Load(ctx, in.Symbol)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load price series", logger.StringField("symbol", in.Symbol), logger.ErrorField(err))
		return nil, err
	}
	prices = filterByDate(prices, from, to)
	if len(prices) == 0 {
		return nil, apperror.NotFound("no historical data found for %s", in.Symbol)
	}

	in.Bars = make([]backtest.Bar, len(prices))
	for i, p := range prices {
		in.Bars[i] = backtest.Bar{Date: p.Date, Close: p.Close}
	}

	outcome, err := backtest.Run(in)
	if err != nil {
		s.log.WarnContext(ctx, "Backtest rejected", logger.StringField("symbol", in.Symbol), logger.ErrorField(err))
		return nil, err
	}

	trades := toTradeLogs(outcome.Trades)
	tradesJSON, err := json.Marshal(trades)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trade log: %w", err)
	}

	record := &model.BacktestResult{
		RunID:             uuid.New(),
		Symbol:            in.Symbol,
		RunAt:             utils.TimeNow(),
		InitialInvestment: outcome.Result.InitialInvestment,
		FinalValue:        outcome.Result.FinalValue,
		ROI:               outcome.Result.ROI,
		MaxDrawdown:       outcome.Result.MaxDrawdown,
		TradesExecuted:    outcome.Result.TradesExecuted,
		ShortWindow:       in.ShortWindow,
		LongWindow:        in.LongWindow,
		WarmupPolicy:      string(in.WarmupPolicy),
		SkippedBars:       outcome.SkippedBars,
		Trades:            datatypes.JSON(tradesJSON),
	}
	if err := s.resultRepo.Create(ctx, record); err != nil {
		s.log.ErrorContext(ctx, "Failed to store backtest result", logger.StringField("symbol", in.Symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to store backtest result: %w", err)
	}

	s.log.InfoContext(ctx, "Backtest completed",
		logger.StringField("symbol", in.Symbol),
		logger.StringField("run_id", record.RunID.String()),
		logger.IntField("bars", len(in.Bars)),
		logger.IntField("trades", outcome.Result.TradesExecuted),
		logger.DecimalField("roi", outcome.Result.ROI),
	)

	resp := toBacktestResponse(record)
	resp.Trades = trades
	return &resp, nil
}

// buildInput validates req and fills defaults from config. The series itself
// is loaded afterwards.
func (s *backtestService) buildInput(req dto.BacktestRequest) (backtest.Input, *time.Time, *time.Time, error) {
	var in backtest.Input

	in.Symbol = utils.NormalizeSymbol(req.Symbol)
	if in.Symbol == "" {
		return in, nil, nil, apperror.Validation("stock symbol is required")
	}
	if len(in.Symbol) > maxSymbolLength {
		return in, nil, nil, apperror.Validation("symbol must be at most %d characters", maxSymbolLength)
	}

	raw := strings.TrimSpace(req.InitialInvestment.String())
	if raw == "" {
		return in, nil, nil, apperror.Validation("initial investment is required")
	}
	investment, err := decimal.NewFromString(raw)
	if err != nil || !investment.IsPositive() {
		return in, nil, nil, apperror.Validation("invalid initial investment value")
	}
	in.InitialInvestment = investment

	if in.ShortWindow, err = requestedWindow("short_window", req.ShortWindow, maxShortWindow,
		s.cfg.Backtest.ShortWindow, backtest.DefaultShortWindow); err != nil {
		return in, nil, nil, err
	}
	if in.LongWindow, err = requestedWindow("long_window", req.LongWindow, maxLongWindow,
		s.cfg.Backtest.LongWindow, backtest.DefaultLongWindow); err != nil {
		return in, nil, nil, err
	}

	policy := req.WarmupPolicy
	if strings.TrimSpace(policy) == "" {
		policy = s.cfg.Backtest.WarmupPolicy
	}
	in.WarmupPolicy, err = backtest.ParseWarmupPolicy(policy)
	if err != nil {
		return in, nil, nil, err
	}

	from, err := parseOptionalDate(req.StartDate, "start_date")
	if err != nil {
		return in, nil, nil, err
	}
	to, err := parseOptionalDate(req.EndDate, "end_date")
	if err != nil {
		return in, nil, nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return in, nil, nil, apperror.Validation("start_date must not be after end_date")
	}
	return in, from, to, nil
}

// RunBatch runs every request independently; one failure never aborts the others.
func (s *backtestService) RunBatch(ctx context.Context, reqs []dto.BacktestRequest) ([]dto.BacktestBatchItem, error) {
	if len(reqs) == 0 {
		return nil, apperror.Validation("at least one backtest request is required")
	}
	if limit := s.cfg.Backtest.MaxBatchSize; limit > 0 && len(reqs) > limit {
		return nil, apperror.Validation("batch size %d exceeds the maximum of %d", len(reqs), limit)
	}

	items := make([]dto.BacktestBatchItem, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	if s.cfg.Backtest.MaxConcurrency > 0 {
		g.SetLimit(s.cfg.Backtest.MaxConcurrency)
	}

	for i, req := range reqs {
		g.Go(func() error {
			item := dto.BacktestBatchItem{Index: i, Symbol: utils.NormalizeSymbol(req.Symbol)}
			resp, err := s.Run(gctx, req)
			if err != nil {
				item.Code = apperror.StatusCode(err)
				item.Error = apperror.PublicMessage(err, internalErrorMessage)
			} else {
				item.Code = http.StatusOK
				item.Result = resp
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Backtest batch completed", logger.IntField("requests", len(reqs)))
	return items, nil
}

func (s *backtestService) History(ctx context.Context, symbol string, limit int) ([]dto.BacktestResponse, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, apperror.Validation("stock symbol is required")
	}
	if limit <= 0 {
		limit = s.cfg.Backtest.HistoryLimit
	}

	records, err := s.resultRepo.GetBySymbol(ctx, symbol, limit)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to get backtest history", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to get backtest history: %w", err)
	}
	if len(records) == 0 {
		return nil, apperror.NotFound("no backtest results found")
	}

	out := make([]dto.BacktestResponse, 0, len(records))
	for i := range records {
		resp := toBacktestResponse(&records[i])
		if len(records[i].Trades) > 0 {
			if err := json.Unmarshal(records[i].Trades, &resp.Trades); err != nil {
				s.log.WarnContext(ctx, "Stored trade log is unreadable",
					logger.StringField("run_id", records[i].RunID.String()), logger.ErrorField(err))
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

func toTradeLogs(trades []backtest.Trade) []dto.TradeLog {
	out := make([]dto.TradeLog, 0, len(trades))
	for _, t := range trades {
		out = append(out, dto.TradeLog{
			Date:   t.Date.Format(time.DateOnly),
			Action: string(t.Action),
			Price:  t.Price,
			Shares: t.Shares.RoundBank(6),
			Value:  t.Value.RoundBank(backtest.ResultPlaces),
		})
	}
	return out
}

func toBacktestResponse(r *model.BacktestResult) dto.BacktestResponse {
	return dto.BacktestResponse{
		RunID:             r.RunID.String(),
		RunAt:             r.RunAt,
		Symbol:            r.Symbol,
		InitialInvestment: r.InitialInvestment,
		FinalValue:        r.FinalValue,
		ROI:               r.ROI,
		MaxDrawdown:       r.MaxDrawdown,
		TradesExecuted:    r.TradesExecuted,
		ShortWindow:       r.ShortWindow,
		LongWindow:        r.LongWindow,
		WarmupPolicy:      r.WarmupPolicy,
		SkippedBars:       r.SkippedBars,
	}
}

// requestedWindow keeps an explicit window and falls back to the defaults only
// when the request leaves it unset (zero).
func requestedWindow(field string, requested, limit int, defaults ...int) (int, error) {
	switch {
	case requested < 0:
		return 0, apperror.Validation("%s must be positive", field)
	case requested > limit:
		return 0, apperror.Validation("%s must be at most %d", field, limit)
	case requested > 0:
		return requested, nil
	}
	return firstPositive(defaults...), nil
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func parseOptionalDate(s, field string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := utils.ParseDate(s)
	if err != nil {
		return nil, apperror.Validation("%s must be formatted as YYYY-MM-DD", field)
	}
	return &d, nil
}
