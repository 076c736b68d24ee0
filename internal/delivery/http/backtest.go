package http

import (
	"net/http"

	"stock-backtest/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupBacktest(base *echo.Group) {
	backtestGroup := base.Group("/v1/backtest")
	backtestGroup.GET("", h.runBacktest)
	backtestGroup.POST("", h.runBacktest)
	backtestGroup.POST("/batch", h.runBacktestBatch)
	backtestGroup.GET("/:symbol/history", h.backtestHistory)
}

func (h *HttpAPIHandler) runBacktest(c echo.Context) error {
	req := new(dto.BacktestRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return h.respondError(c, err)
	}

	result, err := h.service.BacktestService.Run(c.Request().Context(), *req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("backtest completed", result))
}

func (h *HttpAPIHandler) runBacktestBatch(c echo.Context) error {
	req := new(dto.BacktestBatchRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if len(req.Requests) == 0 {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("at least one backtest request is required"))
	}

	// The service validates each item so a bad item does not reject the batch.
	items, err := h.service.BacktestService.RunBatch(c.Request().Context(), req.Requests)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("batch completed", items))
}

func (h *HttpAPIHandler) backtestHistory(c echo.Context) error {
	req := new(dto.BacktestHistoryRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return h.respondError(c, err)
	}

	history, err := h.service.BacktestService.History(c.Request().Context(), req.Symbol, req.Limit)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", history))
}
