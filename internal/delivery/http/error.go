package http

import (
	"net/http"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// respondError maps err to a status and a sanitized message. Internal causes
// are logged, never returned.
func (h *HttpAPIHandler) respondError(c echo.Context, err error) error {
	code := apperror.StatusCode(err)
	if code >= http.StatusInternalServerError {
		h.log.ErrorContext(c.Request().Context(), "Request failed",
			logger.StringField("path", c.Path()),
			logger.ErrorField(err))
	}
	return c.JSON(code, dto.NewErrorResponse(code, apperror.PublicMessage(err, internalErrorMessage)))
}

func (h *HttpAPIHandler) bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return apperror.Validation("%s", validationMessage(err))
	}
	return nil
}
