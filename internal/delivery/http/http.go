package http

import (
	"context"

	"stock-backtest/config"
	"stock-backtest/internal/service"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HttpAPIHandler struct {
	cfg       *config.Config
	log       *logger.Logger
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	db        Pinger
}

func NewHttpAPIHandler(
	cfg *config.Config,
	log *logger.Logger,
	echo *echo.Echo,
	validator *goValidator.Validate,
	service *service.Service,
	db Pinger,
) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		log:       log,
		echo:      echo,
		validator: validator,
		service:   service,
		db:        db,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api", middleware.NewRateLimiterMiddleware(middleware.RateLimitConfig{
		PerSecond: h.cfg.API.RateLimitPerSec,
		Burst:     h.cfg.API.RateLimitBurst,
		ExpiresIn: h.cfg.API.RateLimitExpireIn,
	}))
	h.SetupHealth(base)
	h.SetupBacktest(base)
	h.SetupStocks(base)
	h.SetupJobs(base)
}
