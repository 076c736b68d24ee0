package http

import (
	"net/http"

	"stock-backtest/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStocks(base *echo.Group) {
	stocks := base.Group("/v1/stocks")
	stocks.POST("/:symbol/fetch", h.fetchStock)
	stocks.POST("/:symbol/predict", h.predictStock)
	stocks.GET("/:symbol/report", h.stockReport)
}

func (h *HttpAPIHandler) fetchStock(c echo.Context) error {
	req := new(dto.SymbolParam)
	if err := h.bindAndValidate(c, req); err != nil {
		return h.respondError(c, err)
	}

	resp, err := h.service.MarketDataService.Sync(c.Request().Context(), req.Symbol)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("stock data fetched and stored", resp))
}

func (h *HttpAPIHandler) predictStock(c echo.Context) error {
	req := new(dto.SymbolParam)
	if err := h.bindAndValidate(c, req); err != nil {
		return h.respondError(c, err)
	}

	resp, err := h.service.PredictionService.Predict(c.Request().Context(), req.Symbol)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("predictions generated", resp))
}

func (h *HttpAPIHandler) stockReport(c echo.Context) error {
	req := new(dto.SymbolParam)
	if err := h.bindAndValidate(c, req); err != nil {
		return h.respondError(c, err)
	}

	resp, err := h.service.ReportService.Generate(c.Request().Context(), req.Symbol)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", resp))
}
