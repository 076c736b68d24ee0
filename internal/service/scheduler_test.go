package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-backtest/internal/mocks"
	"stock-backtest/internal/model"
	"stock-backtest/pkg/apperror"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSchedulerService_Execute(t *testing.T) {
	now := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	freezeTime(t, now)

	ctrl := gomock.NewController(t)
	jobRepo := mocks.NewMockJobRepository(ctrl)
	executor := mocks.NewMockTaskExecutor(ctrl)
	svc := NewSchedulerService(testConfig(), logger.Nop(), jobRepo, executor)

	schedule := model.TaskSchedule{ID: 4, JobID: 2, CronExpression: "0 22 * * 1-5", Job: model.Job{ID: 2, Name: "price sync", Timeout: 30}}
	jobRepo.EXPECT().FindJobsToSchedule(gomock.Any(), gomock.Any()).Return([]model.TaskSchedule{schedule}, nil)
	jobRepo.EXPECT().CreateTaskExecutionHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *model.TaskExecutionHistory, _ ...utils.DBOption) error {
			assert.Equal(t, model.StatusRunning, h.Status)
			assert.Equal(t, uint(4), h.ScheduleID)
			return nil
		})

	done := make(chan struct{})
	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *model.TaskExecutionHistory) error {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(30*time.Second), deadline, 5*time.Second)
			close(done)
			return nil
		})

	var updated *model.TaskSchedule
	jobRepo.EXPECT().UpdateTaskSchedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *model.TaskSchedule, _ ...utils.DBOption) error {
			updated = s
			return nil
		})

	require.NoError(t, svc.Execute(context.Background()))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task was not executed")
	}

	require.NotNil(t, updated)
	assert.Equal(t, now, updated.LastExecution.Time)
	assert.Equal(t, time.Date(2024, 6, 3, 22, 0, 0, 0, time.UTC), updated.NextExecution.Time)
}

func TestSchedulerService_ExecuteSkipsBadCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobRepo := mocks.NewMockJobRepository(ctrl)
	executor := mocks.NewMockTaskExecutor(ctrl)
	svc := NewSchedulerService(testConfig(), logger.Nop(), jobRepo, executor)

	jobRepo.EXPECT().FindJobsToSchedule(gomock.Any(), gomock.Any()).
		Return([]model.TaskSchedule{{ID: 1, JobID: 1, CronExpression: "every day"}}, nil)

	assert.NoError(t, svc.Execute(context.Background()))
}

func TestSchedulerService_ExecuteRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobRepo := mocks.NewMockJobRepository(ctrl)
	svc := NewSchedulerService(testConfig(), logger.Nop(), jobRepo, mocks.NewMockTaskExecutor(ctrl))

	jobRepo.EXPECT().FindJobsToSchedule(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	assert.Error(t, svc.Execute(context.Background()))
}

func TestSchedulerService_RunJobTaskNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobRepo := mocks.NewMockJobRepository(ctrl)
	svc := NewSchedulerService(testConfig(), logger.Nop(), jobRepo, mocks.NewMockTaskExecutor(ctrl))

	jobRepo.EXPECT().Get(gomock.Any(), &model.GetJobParam{IDs: []uint{7}}).Return(nil, nil)
	err := svc.RunJobTask(context.Background(), 7)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	jobRepo.EXPECT().Get(gomock.Any(), &model.GetJobParam{IDs: []uint{8}}).Return([]model.Job{{ID: 8}}, nil)
	err = svc.RunJobTask(context.Background(), 8)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
