package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stock-backtest/internal/model"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"
)

type DataCleanUpPayload struct {
	RetentionDays int `json:"retention_days"`
}

type DataCleanUpResult struct {
	Table string `json:"table"`
	Total int64  `json:"total"`
	Error string `json:"error,omitempty"`
}

// DataCleanUpStrategy prunes stored backtest runs and job history past the retention window.
type DataCleanUpStrategy struct {
	log                *logger.Logger
	backtestResultRepo repository.BacktestResultRepository
	jobRepo            repository.JobRepository
}

func NewDataCleanUpStrategy(log *logger.Logger, backtestResultRepo repository.BacktestResultRepository, jobRepo repository.JobRepository) JobExecutionStrategy {
	return &DataCleanUpStrategy{
		log:                log,
		backtestResultRepo: backtestResultRepo,
		jobRepo:            jobRepo,
	}
}

func (s *DataCleanUpStrategy) GetType() JobType {
	return JobTypeDataCleanUp
}

func (s *DataCleanUpStrategy) Execute(ctx context.Context, job *model.Job) (JobResult, error) {
	s.log.InfoContext(ctx, "Starting data clean up", logger.IntField("job_id", int(job.ID)))

	var payload DataCleanUpPayload
	if err := job.DecodePayload(&payload); err != nil {
		s.log.ErrorContext(ctx, "Failed to unmarshal job payload", logger.ErrorField(err), logger.IntField("job_id", int(job.ID)))
		return JobResult{ExitCode: JOB_EXIT_CODE_FAILED, Output: err.Error()}, err
	}
	if payload.RetentionDays <= 0 {
		err := fmt.Errorf("retention_days must be positive, got %d", payload.RetentionDays)
		return JobResult{ExitCode: JOB_EXIT_CODE_FAILED, Output: err.Error()}, err
	}

	date := utils.TimeNow().AddDate(0, 0, -payload.RetentionDays)
	steps := []struct {
		table string
		fn    func(context.Context, time.Time) (int64, error)
	}{
		{table: "backtest_results", fn: func(ctx context.Context, d time.Time) (int64, error) {
			return s.backtestResultRepo.DeleteOlderThan(ctx, d)
		}},
		{table: "task_execution_history", fn: func(ctx context.Context, d time.Time) (int64, error) {
			return s.jobRepo.DeleteTaskHistoryOlderThan(ctx, d)
		}},
	}

	outputMsg := make([]DataCleanUpResult, 0, len(steps))
	failed := 0
	for _, step := range steps {
		total, err := step.fn(ctx, date)
		res := DataCleanUpResult{Table: step.table, Total: total}
		if err != nil {
			failed++
			s.log.ErrorContext(ctx, "Failed to delete old rows", logger.StringField("table", step.table), logger.ErrorField(err), logger.IntField("job_id", int(job.ID)))
			res.Error = fmt.Sprintf("failed to delete %s older than %s: %v", step.table, date.Format(time.DateOnly), err)
		}
		outputMsg = append(outputMsg, res)
	}

	res, err := json.Marshal(outputMsg)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to marshal output message", logger.ErrorField(err), logger.IntField("job_id", int(job.ID)))
		return JobResult{ExitCode: JOB_EXIT_CODE_FAILED, Output: fmt.Sprintf("failed to marshal output message: %v", err)}, fmt.Errorf("failed to marshal output message: %w", err)
	}
	switch {
	case failed == 0:
		return JobResult{ExitCode: JOB_EXIT_CODE_SUCCESS, Output: string(res)}, nil
	case failed < len(steps):
		return JobResult{ExitCode: JOB_EXIT_CODE_PARTIAL_SUCCESS, Output: string(res)}, nil
	default:
		return JobResult{ExitCode: JOB_EXIT_CODE_FAILED, Output: string(res)}, fmt.Errorf("data clean up failed for every table")
	}
}
