package service

import (
	"context"
	"errors"
	"fmt"

	"stock-backtest/internal/model"
	"stock-backtest/internal/repository"
	"stock-backtest/internal/strategy"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"
)

type TaskExecutor interface {
	Execute(ctx context.Context, taskHistory *model.TaskExecutionHistory) error
}

type taskExecutor struct {
	log                *logger.Logger
	jobRepo            repository.JobRepository
	executorStrategies map[strategy.JobType]strategy.JobExecutionStrategy
}

func NewTaskExecutor(log *logger.Logger, jobRepo repository.JobRepository, strategies ...strategy.JobExecutionStrategy) TaskExecutor {
	executorStrategies := make(map[strategy.JobType]strategy.JobExecutionStrategy, len(strategies))
	for _, s := range strategies {
		executorStrategies[s.GetType()] = s
	}
	return &taskExecutor{
		log:                log,
		jobRepo:            jobRepo,
		executorStrategies: executorStrategies,
	}
}

// Execute runs the job behind taskHistory and records its terminal state.
// A failing job is recorded, not returned; only bookkeeping errors are.
func (t *taskExecutor) Execute(ctx context.Context, taskHistory *model.TaskExecutionHistory) error {
	t.log.InfoContext(ctx, "Processing job", logger.IntField("job_id", int(taskHistory.JobID)), logger.IntField("history_id", int(taskHistory.ID)))

	job, err := t.jobRepo.FindByID(ctx, taskHistory.JobID)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to find job", logger.ErrorField(err), logger.IntField("job_id", int(taskHistory.JobID)))
		return fmt.Errorf("failed to find job: %w", err)
	}

	executor := t.executorStrategies[strategy.JobType(job.Type)]
	if executor == nil {
		t.log.ErrorContext(ctx, "Job type not found", logger.IntField("job_id", int(taskHistory.JobID)), logger.StringField("job_type", job.Type))
		taskHistory.Finish(utils.TimeNow(), model.StatusFailed, strategy.JOB_EXIT_CODE_FAILED, "", fmt.Errorf("job type %q not found", job.Type))
	} else {
		result, err := executor.Execute(ctx, job)
		status := model.StatusCompleted
		if err != nil {
			t.log.ErrorContext(ctx, "Failed to execute job", logger.ErrorField(err), logger.IntField("job_id", int(taskHistory.JobID)))
			status = model.StatusFailed
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				status = model.StatusTimeout
			}
		}
		taskHistory.Finish(utils.TimeNow(), status, result.ExitCode, result.Output, err)
	}

	// The job context may already be past its deadline.
	if err := t.jobRepo.UpdateTaskExecutionHistory(context.WithoutCancel(ctx), taskHistory); err != nil {
		t.log.ErrorContext(ctx, "Failed to update task execution history", logger.ErrorField(err), logger.IntField("job_id", int(taskHistory.JobID)))
		return fmt.Errorf("failed to update task execution history: %w", err)
	}

	t.log.InfoContext(ctx, "Job finished",
		logger.IntField("job_id", int(taskHistory.JobID)),
		logger.StringField("status", string(taskHistory.Status)),
		logger.DurationField("elapsed", utils.TimeNow().Sub(taskHistory.StartedAt)))
	return nil
}
