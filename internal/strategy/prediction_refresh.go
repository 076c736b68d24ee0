package strategy

import (
	"context"

	"stock-backtest/internal/model"
	"stock-backtest/pkg/logger"
)

type PredictionRefreshStrategy struct {
	log       *logger.Logger
	predictor Predictor
}

func NewPredictionRefreshStrategy(log *logger.Logger, predictor Predictor) JobExecutionStrategy {
	return &PredictionRefreshStrategy{log: log, predictor: predictor}
}

func (s *PredictionRefreshStrategy) GetType() JobType {
	return JobTypePredictionRefresh
}

func (s *PredictionRefreshStrategy) Execute(ctx context.Context, job *model.Job) (JobResult, error) {
	s.log.InfoContext(ctx, "Starting prediction refresh", logger.IntField("job_id", int(job.ID)))
	return runForSymbols(ctx, s.log, job, func(ctx context.Context, symbol string) (int, error) {
		resp, err := s.predictor.Predict(ctx, symbol)
		if err != nil {
			return 0, err
		}
		return len(resp.Predictions), nil
	})
}
