package service

import (
	"context"
	"errors"
	"testing"

	"stock-backtest/internal/mocks"
	"stock-backtest/internal/model"
	"stock-backtest/internal/strategy"
	"stock-backtest/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubStrategy struct {
	jobType strategy.JobType
	result  strategy.JobResult
	err     error
	calls   int
}

func (s *stubStrategy) GetType() strategy.JobType { return s.jobType }

func (s *stubStrategy) Execute(context.Context, *model.Job) (strategy.JobResult, error) {
	s.calls++
	return s.result, s.err
}

func TestTaskExecutor_Execute(t *testing.T) {
	tests := []struct {
		name       string
		jobType    string
		stub       *stubStrategy
		wantStatus model.TaskExecutionStatus
		wantCode   int32
		wantErrMsg bool
	}{
		{
			name:       "completed",
			jobType:    "price_sync",
			stub:       &stubStrategy{jobType: strategy.JobTypePriceSync, result: strategy.JobResult{ExitCode: strategy.JOB_EXIT_CODE_SUCCESS, Output: "[]"}},
			wantStatus: model.StatusCompleted,
			wantCode:   strategy.JOB_EXIT_CODE_SUCCESS,
		},
		{
			name:       "strategy failure is recorded",
			jobType:    "price_sync",
			stub:       &stubStrategy{jobType: strategy.JobTypePriceSync, result: strategy.JobResult{ExitCode: strategy.JOB_EXIT_CODE_FAILED}, err: errors.New("all symbols failed")},
			wantStatus: model.StatusFailed,
			wantCode:   strategy.JOB_EXIT_CODE_FAILED,
			wantErrMsg: true,
		},
		{
			name:       "unknown job type",
			jobType:    "http_request",
			stub:       &stubStrategy{jobType: strategy.JobTypePriceSync},
			wantStatus: model.StatusFailed,
			wantCode:   strategy.JOB_EXIT_CODE_FAILED,
			wantErrMsg: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jobRepo := mocks.NewMockJobRepository(ctrl)
			executor := NewTaskExecutor(logger.Nop(), jobRepo, tt.stub)

			history := &model.TaskExecutionHistory{ID: 9, JobID: 3, Status: model.StatusRunning}
			jobRepo.EXPECT().FindByID(gomock.Any(), uint(3)).Return(&model.Job{ID: 3, Type: tt.jobType}, nil)
			jobRepo.EXPECT().UpdateTaskExecutionHistory(gomock.Any(), history).Return(nil)

			require.NoError(t, executor.Execute(context.Background(), history))
			assert.Equal(t, tt.wantStatus, history.Status)
			assert.True(t, history.CompletedAt.Valid)
			assert.Equal(t, tt.wantCode, history.ExitCode.Int32)
			assert.Equal(t, tt.wantErrMsg, history.ErrorMessage.Valid)
		})
	}
}

func TestTaskExecutor_ExecuteMissingJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobRepo := mocks.NewMockJobRepository(ctrl)
	executor := NewTaskExecutor(logger.Nop(), jobRepo)

	jobRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(nil, errors.New("record not found"))
	assert.Error(t, executor.Execute(context.Background(), &model.TaskExecutionHistory{JobID: 1}))
}
