package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"stock-backtest/internal/model"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const defaultSymbolConcurrency = 2

// runForSymbols decodes a SymbolsPayload from job and calls fn once per
// symbol. Per-symbol failures are collected into the output, not returned.
// Cancellation stops the remaining symbols and fails the job.
func runForSymbols(
	ctx context.Context,
	log *logger.Logger,
	job *model.Job,
	fn func(ctx context.Context, symbol string) (int, error),
) (JobResult, error) {
	var payload SymbolsPayload
	if err := job.DecodePayload(&payload); err != nil {
		log.ErrorContext(ctx, "Failed to unmarshal job payload", logger.ErrorField(err), logger.IntField("job_id", int(job.ID)))
		return JobResult{ExitCode: JOB_EXIT_CODE_FAILED, Output: err.Error()}, err
	}

	symbols := make([]string, 0, len(payload.Symbols))
	seen := make(map[string]bool, len(payload.Symbols))
	for _, s := range payload.Symbols {
		s = utils.NormalizeSymbol(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		symbols = append(symbols, s)
	}
	if len(symbols) == 0 {
		return JobResult{ExitCode: JOB_EXIT_CODE_SKIPPED, Output: "no symbols configured"}, nil
	}

	concurrency := payload.Concurrency
	if concurrency <= 0 {
		concurrency = defaultSymbolConcurrency
	}

	results := make([]SymbolResult, len(symbols))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, symbol := range symbols {
		g.Go(func() error {
			res := SymbolResult{Symbol: symbol}
			if !utils.ShouldContinue(gctx, log) {
				res.Error = gctx.Err().Error()
				results[i] = res
				return gctx.Err()
			}
			count, err := fn(gctx, symbol)
			res.Count = count
			if err != nil {
				log.WarnContext(gctx, "Symbol failed in job",
					logger.StringField("symbol", symbol),
					logger.IntField("job_id", int(job.ID)),
					logger.ErrorField(err))
				res.Error = err.Error()
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return JobResult{ExitCode: JOB_EXIT_CODE_FAILED, Output: fmt.Sprintf("symbol run interrupted: %v", err)}, err
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	out, err := json.Marshal(results)
	if err != nil {
		return JobResult{ExitCode: JOB_EXIT_CODE_FAILED, Output: fmt.Sprintf("failed to marshal output message: %v", err)}, fmt.Errorf("failed to marshal output message: %w", err)
	}

	switch {
	case failed == 0:
		return JobResult{ExitCode: JOB_EXIT_CODE_SUCCESS, Output: string(out)}, nil
	case failed < len(results):
		return JobResult{ExitCode: JOB_EXIT_CODE_PARTIAL_SUCCESS, Output: string(out)}, nil
	default:
		return JobResult{ExitCode: JOB_EXIT_CODE_FAILED, Output: string(out)}, fmt.Errorf("all %d symbols failed", failed)
	}
}
