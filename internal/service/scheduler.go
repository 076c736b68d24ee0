package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stock-backtest/config"
	"stock-backtest/internal/model"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"

	"github.com/robfig/cron/v3"
)

type SchedulerService interface {
	Execute(ctx context.Context) error
	GetJobSchedule(ctx context.Context, param model.GetJobParam) ([]model.Job, error)
	RunJobTask(ctx context.Context, jobID uint) error
}

type schedulerService struct {
	cfg          *config.Config
	log          *logger.Logger
	cronParser   cron.Parser
	jobRepo      repository.JobRepository
	taskExecutor TaskExecutor
	semaphore    chan struct{}
}

func NewSchedulerService(
	cfg *config.Config,
	log *logger.Logger,
	jobRepo repository.JobRepository,
	taskExecutor TaskExecutor,
) SchedulerService {
	concurrency := cfg.Scheduler.MaxConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &schedulerService{
		cfg:          cfg,
		log:          log,
		jobRepo:      jobRepo,
		cronParser:   cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		taskExecutor: taskExecutor,
		semaphore:    make(chan struct{}, concurrency),
	}
}

// Execute starts every due schedule. Each job runs in the background under
// its own timeout; Execute returns once all of them have been dispatched.
func (s *schedulerService) Execute(ctx context.Context) error {
	jobs, err := s.jobRepo.FindJobsToSchedule(ctx, utils.WithPreload("Job"))
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to find jobs to schedule", logger.ErrorField(err))
		return fmt.Errorf("failed to find jobs to schedule: %w", err)
	}

	if len(jobs) == 0 {
		s.log.InfoContext(ctx, "No jobs to schedule")
		return nil
	}
	s.log.InfoContext(ctx, "Start running jobs",
		logger.IntField("job_count", len(jobs)),
		logger.IntField("max_concurrency", cap(s.semaphore)),
	)

	for _, job := range jobs {
		if !utils.ShouldContinue(ctx, s.log) {
			return nil
		}

		if err := s.executeJob(ctx, job); err != nil {
			s.log.ErrorContext(ctx, "Failed to execute job",
				logger.ErrorField(err),
				logger.IntField("job_id", int(job.JobID)),
				logger.IntField("schedule_id", int(job.ID)),
				logger.StringField("job_name", job.Job.Name),
				logger.StringField("job_type", job.Job.Type),
			)
			continue
		}

		s.log.InfoContext(ctx, "Job dispatched",
			logger.IntField("job_id", int(job.JobID)),
			logger.IntField("schedule_id", int(job.ID)),
			logger.StringField("job_name", job.Job.Name),
		)
	}

	return nil
}

func (s *schedulerService) jobTimeout(task model.TaskSchedule) time.Duration {
	if task.Job.Timeout > 0 {
		return time.Duration(task.Job.Timeout) * time.Second
	}
	if s.cfg.Scheduler.TimeoutDuration > 0 {
		return s.cfg.Scheduler.TimeoutDuration
	}
	return time.Minute
}

func (s *schedulerService) executeJob(ctx context.Context, task model.TaskSchedule) error {
	cronSchedule, err := s.cronParser.Parse(task.CronExpression)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to parse cron expression", logger.ErrorField(err), logger.IntField("schedule_id", int(task.ID)))
		return fmt.Errorf("failed to parse cron expression: %w", err)
	}

	s.log.DebugContext(ctx, "Executing job",
		logger.IntField("job_id", int(task.JobID)),
		logger.IntField("schedule_id", int(task.ID)),
		logger.IntField("active_concurrency", len(s.semaphore)),
		logger.IntField("max_concurrency", cap(s.semaphore)),
	)

	now := utils.TimeNow()
	history := &model.TaskExecutionHistory{
		JobID:      task.JobID,
		ScheduleID: task.ID,
		Status:     model.StatusRunning,
		StartedAt:  now,
	}

	if err := s.jobRepo.CreateTaskExecutionHistory(ctx, history); err != nil {
		s.log.ErrorContext(ctx, "Failed to create task history", logger.ErrorField(err), logger.IntField("schedule_id", int(task.ID)))
		return fmt.Errorf("failed to create task history: %w", err)
	}

	timeout := s.jobTimeout(task)
	s.semaphore <- struct{}{}
	utils.GoSafe(func() {
		defer func() {
			<-s.semaphore
		}()

		newCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		if err := s.taskExecutor.Execute(newCtx, history); err != nil {
			s.log.ErrorContext(newCtx, "Failed to execute task", logger.ErrorField(err), logger.IntField("schedule_id", int(task.ID)))
		}
	})

	task.LastExecution = sql.NullTime{Time: now, Valid: true}
	task.NextExecution = sql.NullTime{Time: cronSchedule.Next(now), Valid: true}

	if err := s.jobRepo.UpdateTaskSchedule(ctx, &task); err != nil {
		s.log.ErrorContext(ctx, "Failed to update task schedule", logger.ErrorField(err), logger.IntField("schedule_id", int(task.ID)))
		return fmt.Errorf("failed to update task schedule: %w", err)
	}
	return nil
}

func (s *schedulerService) GetJobSchedule(ctx context.Context, param model.GetJobParam) ([]model.Job, error) {
	return s.jobRepo.Get(ctx, &param)
}

func (s *schedulerService) RunJobTask(ctx context.Context, jobID uint) error {
	s.log.InfoContext(ctx, "Running job task", logger.IntField("job_id", int(jobID)))
	jobs, err := s.jobRepo.Get(ctx, &model.GetJobParam{IDs: []uint{jobID}})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to find job", logger.ErrorField(err), logger.IntField("job_id", int(jobID)))
		return fmt.Errorf("failed to find job: %w", err)
	}
	if len(jobs) == 0 {
		return apperror.NotFound("job %d not found", jobID)
	}
	if len(jobs[0].Schedules) == 0 {
		return apperror.NotFound("job %d has no schedule", jobID)
	}

	return s.executeJob(ctx, jobs[0].Schedules[0])
}
