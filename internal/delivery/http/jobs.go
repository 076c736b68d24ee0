package http

import (
	"net/http"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/model"
	"stock-backtest/pkg/utils"

	"github.com/labstack/echo/v4"
)

const jobHistoryLimit = 5

func (h *HttpAPIHandler) SetupJobs(base *echo.Group) {
	v1 := base.Group("/v1/jobs")
	{
		v1.GET("", h.ListJobs)
		v1.POST("/run", h.RunJobs)
		v1.POST("/:id/run", h.RunJob)
	}
}

// RunJobs dispatches every due schedule.
func (h *HttpAPIHandler) RunJobs(c echo.Context) error {
	if err := h.service.SchedulerService.Execute(c.Request().Context()); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "Start running jobs", nil))
}

func (h *HttpAPIHandler) RunJob(c echo.Context) error {
	req := new(dto.JobIDParam)
	if err := h.bindAndValidate(c, req); err != nil {
		return h.respondError(c, err)
	}
	if err := h.service.SchedulerService.RunJobTask(c.Request().Context(), req.ID); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "Job started", nil))
}

func (h *HttpAPIHandler) ListJobs(c echo.Context) error {
	jobs, err := h.service.SchedulerService.GetJobSchedule(c.Request().Context(), model.GetJobParam{
		WithTaskHistory: &model.GetTaskExecutionHistoryParam{Limit: utils.ToPointer(jobHistoryLimit)},
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", jobs))
}
