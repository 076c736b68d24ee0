package http

import (
	"net/http"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupHealth(base *echo.Group) {
	base.GET("/v1/health", h.health)
}

func (h *HttpAPIHandler) health(c echo.Context) error {
	if h.db != nil {
		if err := h.db.Ping(c.Request().Context()); err != nil {
			h.log.WarnContext(c.Request().Context(), "Health check failed", logger.ErrorField(err))
			return c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "database unavailable"))
		}
	}
	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "ok", nil))
}
