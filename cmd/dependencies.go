package cmd

import (
	"context"
	"errors"

	"stock-backtest/config"
	"stock-backtest/internal/delivery/http"
	"stock-backtest/internal/repository"
	"stock-backtest/internal/service"
	"stock-backtest/pkg/cache"
	"stock-backtest/pkg/forecast"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/postgres"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AppDependency struct {
	db        *postgres.DB
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	services  *service.Service
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	db, err := postgres.NewDB(cfg.DB, log)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return nil, err
	}

	forecaster, err := forecast.Load(forecast.Options{
		Type:     cfg.Forecast.ModelType,
		Path:     cfg.Forecast.ModelPath,
		MaxDepth: cfg.Forecast.MaxDepth,
	})
	switch {
	case errors.Is(err, forecast.ErrNoModel):
		log.InfoContext(ctx, "Forecast model not configured, predictions are disabled")
	case err != nil:
		_ = db.Close()
		log.Error("Failed to load forecast model", zap.Error(err))
		return nil, err
	default:
		log.InfoContext(ctx, "Forecast model loaded", logger.StringField("model", forecaster.Name()))
	}

	repo, err := repository.NewRepository(cfg, db.DB, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	inmemoryCache := cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval)
	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: http.NewValidator(),
		db:        db,
		echo:      echo.New(),
		services:  service.NewService(cfg, log, repo, inmemoryCache, forecaster),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	defer func() { _ = d.log.Sync() }()
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
