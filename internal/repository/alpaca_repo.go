package repository

import (
	"context"
	"fmt"

	"stock-backtest/config"
	"stock-backtest/internal/dto"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

type alpacaBarsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

type alpacaRepository struct {
	client       alpacaBarsClient
	cfg          config.Alpaca
	lookbackDays int
	logger       *logger.Logger
}

func NewAlpacaRepository(cfg config.MarketData, log *logger.Logger) MarketDataProvider {
	opts := marketdata.ClientOpts{
		APIKey:    cfg.Alpaca.APIKey,
		APISecret: cfg.Alpaca.APISecret,
	}
	if cfg.Alpaca.BaseURL != "" {
		opts.BaseURL = cfg.Alpaca.BaseURL
	}
	return &alpacaRepository{
		client:       marketdata.NewClient(opts),
		cfg:          cfg.Alpaca,
		lookbackDays: cfg.LookbackDays,
		logger:       log,
	}
}

func (r *alpacaRepository) Name() string {
	return config.ProviderAlpaca
}

func (r *alpacaRepository) Get(ctx context.Context, symbol string) ([]dto.StockOHLCV, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	end := utils.TimeNow()
	start := utils.DateOnly(end).AddDate(0, 0, -r.lookbackDays)
	req := marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     start,
		End:       end,
	}
	if r.cfg.Feed != "" {
		req.Feed = marketdata.Feed(r.cfg.Feed)
	}

	bars, err := r.client.GetBars(symbol, req)
	if err != nil {
		return nil, apperror.Upstream(fmt.Errorf("GetBars: %w", err), "failed to fetch data from alpaca")
	}
	if len(bars) == 0 {
		return nil, apperror.NotFound("no data found for symbol %s", symbol)
	}

	out := make([]dto.StockOHLCV, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.StockOHLCV{
			Date:   utils.DateOnly(b.Timestamp),
			Open:   decimal.NewFromFloat(b.Open),
			High:   decimal.NewFromFloat(b.High),
			Low:    decimal.NewFromFloat(b.Low),
			Close:  decimal.NewFromFloat(b.Close),
			Volume: int64(b.Volume),
		})
	}
	r.logger.DebugContext(ctx, "Fetched bars from alpaca", logger.StringField("symbol", symbol), logger.IntField("count", len(out)))
	return out, nil
}
