package repository

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"stock-backtest/config"
	"stock-backtest/internal/dto"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/httpclient"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// MarketDataProvider returns the daily bars a provider has for symbol,
// oldest first.
type MarketDataProvider interface {
	Get(ctx context.Context, symbol string) ([]dto.StockOHLCV, error)
	Name() string
}

type alphaVantageRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            config.AlphaVantage
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewAlphaVantageRepository(cfg config.AlphaVantage, log *logger.Logger) MarketDataProvider {
	return newAlphaVantageRepository(cfg, log, httpclient.New(httpclient.Options{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		RetryCount: 2,
		RetryWait:  time.Second,
	}))
}

func newAlphaVantageRepository(cfg config.AlphaVantage, log *logger.Logger, client httpclient.HTTPClient) *alphaVantageRepository {
	limit := rate.Inf
	if cfg.MaxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.MaxRequestPerMinute))
	}
	return &alphaVantageRepository{
		httpClient:     client,
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(limit, 1),
	}
}

func (r *alphaVantageRepository) Name() string {
	return config.ProviderAlphaVantage
}

func (r *alphaVantageRepository) Get(ctx context.Context, symbol string) ([]dto.StockOHLCV, error) {
	if !r.requestLimiter.Allow() {
		r.logger.WarnContext(ctx, "Alpha Vantage request limit reached, waiting",
			logger.IntField("max_request_per_minute", r.cfg.MaxRequestPerMinute),
			logger.StringField("symbol", symbol),
		)
		if err := r.requestLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	queryParams := map[string]string{
		"function": "TIME_SERIES_DAILY",
		"symbol":   symbol,
		"apikey":   r.cfg.APIKey,
	}
	if r.cfg.OutputSize != "" {
		queryParams["outputsize"] = r.cfg.OutputSize
	}

	var avResp dto.AlphaVantageDailyResponse
	resp, err := r.httpClient.Get(ctx, "/query", queryParams, nil, &avResp)
	if err != nil {
		return nil, apperror.Upstream(err, "failed to fetch data from alpha vantage")
	}
	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Alpha Vantage API returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, apperror.Upstream(fmt.Errorf("status %d", resp.StatusCode), "alpha vantage returned an error status")
	}

	switch {
	case avResp.ErrorMessage != "":
		// Unknown symbols are reported this way.
		if strings.Contains(avResp.ErrorMessage, "Invalid API call") {
			return nil, apperror.NotFound("no data found for symbol %s", symbol)
		}
		return nil, apperror.Upstream(fmt.Errorf("%s", avResp.ErrorMessage), "alpha vantage rejected the request")
	case avResp.Note != "":
		return nil, apperror.Upstream(fmt.Errorf("%s", avResp.Note), "alpha vantage request limit reached")
	case avResp.Information != "":
		return nil, apperror.Upstream(fmt.Errorf("%s", avResp.Information), "alpha vantage request limit reached")
	}

	bars := parseAlphaVantageSeries(avResp.TimeSeries, func(date string, err error) {
		r.logger.WarnContext(ctx, "Skipping malformed Alpha Vantage bar",
			logger.StringField("symbol", symbol),
			logger.StringField("date", date),
			logger.ErrorField(err))
	})
	if len(bars) == 0 {
		return nil, apperror.NotFound("no data found for symbol %s", symbol)
	}
	return bars, nil
}

// parseAlphaVantageSeries converts the keyed series to ascending bars, skipping
// rows that fail to parse.
func parseAlphaVantageSeries(series map[string]dto.AlphaVantageBar, onSkip func(date string, err error)) []dto.StockOHLCV {
	bars := make([]dto.StockOHLCV, 0, len(series))
	for date, raw := range series {
		bar, err := parseAlphaVantageBar(date, raw)
		if err != nil {
			if onSkip != nil {
				onSkip(date, err)
			}
			continue
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Date.Before(bars[j].Date)
	})
	return bars
}

func parseAlphaVantageBar(date string, raw dto.AlphaVantageBar) (dto.StockOHLCV, error) {
	d, err := utils.ParseDate(date)
	if err != nil {
		return dto.StockOHLCV{}, fmt.Errorf("invalid date: %w", err)
	}
	fields := [4]string{raw.Open, raw.High, raw.Low, raw.Close}
	var prices [4]decimal.Decimal
	for i, f := range fields {
		prices[i], err = decimal.NewFromString(strings.TrimSpace(f))
		if err != nil {
			return dto.StockOHLCV{}, fmt.Errorf("invalid price %q: %w", f, err)
		}
	}
	volume, err := strconv.ParseInt(strings.TrimSpace(raw.Volume), 10, 64)
	if err != nil {
		return dto.StockOHLCV{}, fmt.Errorf("invalid volume %q: %w", raw.Volume, err)
	}
	return dto.StockOHLCV{
		Date:   d,
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: volume,
	}, nil
}
