package strategy

import (
	"context"

	"stock-backtest/internal/model"
	"stock-backtest/pkg/logger"
)

// PriceSyncStrategy refreshes stored bars for the symbols in the job payload.
type PriceSyncStrategy struct {
	log    *logger.Logger
	syncer PriceSyncer
}

func NewPriceSyncStrategy(log *logger.Logger, syncer PriceSyncer) JobExecutionStrategy {
	return &PriceSyncStrategy{log: log, syncer: syncer}
}

func (s *PriceSyncStrategy) GetType() JobType {
	return JobTypePriceSync
}

func (s *PriceSyncStrategy) Execute(ctx context.Context, job *model.Job) (JobResult, error) {
	s.log.InfoContext(ctx, "Starting price sync", logger.IntField("job_id", int(job.ID)))
	return runForSymbols(ctx, s.log, job, func(ctx context.Context, symbol string) (int, error) {
		resp, err := s.syncer.Sync(ctx, symbol)
		if err != nil {
			return 0, err
		}
		return resp.Stored, nil
	})
}
