package backtest

import (
	"strings"

	"stock-backtest/pkg/apperror"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// WarmupPolicy decides what happens to the leading bars of a moving average
// that do not yet have a full window of history.
type WarmupPolicy string

const (
	// WarmupBackfill copies the first defined average backward onto the warm-up bars.
	// Those bars see a mean computed from later closes.
	WarmupBackfill WarmupPolicy = "BACKFILL"
	// WarmupSkip leaves warm-up bars undefined so the signal engine holds on them.
	WarmupSkip WarmupPolicy = "SKIP_WARMUP_BARS"
	// WarmupZeroFill sets warm-up bars to zero.
	WarmupZeroFill WarmupPolicy = "ZERO_FILL"
)

const DefaultWarmupPolicy = WarmupBackfill

func (p WarmupPolicy) Valid() bool {
	switch p {
	case WarmupBackfill, WarmupSkip, WarmupZeroFill:
		return true
	}
	return false
}

// ParseWarmupPolicy accepts the policy name in any case. Empty input selects the default.
func ParseWarmupPolicy(s string) (WarmupPolicy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultWarmupPolicy, nil
	}
	p := WarmupPolicy(strings.ToUpper(s))
	if !p.Valid() {
		return "", apperror.Validation("unknown warmup policy %q", s)
	}
	return p, nil
}

// MovingAverage is aligned 1:1 with the close series it was computed from.
// None marks a bar without a usable average.
type MovingAverage []optional.Option[decimal.Decimal]

// ComputeMovingAverage returns the trailing simple moving average of closes.
// A window that contains a non-positive close is undefined; the warm-up policy
// only resolves the undefined elements before the first defined one.
func ComputeMovingAverage(closes []decimal.Decimal, window int, policy WarmupPolicy) (MovingAverage, error) {
	if window <= 0 {
		return nil, apperror.Validation("moving average window must be positive, got %d", window)
	}
	if !policy.Valid() {
		return nil, apperror.Validation("unknown warmup policy %q", string(policy))
	}

	series := make(MovingAverage, len(closes))
	divisor := decimal.NewFromInt(int64(window))
	sum := decimal.Zero
	invalid := 0

	for i, c := range closes {
		sum = sum.Add(c)
		if !c.IsPositive() {
			invalid++
		}
		if i >= window {
			dropped := closes[i-window]
			sum = sum.Sub(dropped)
			if !dropped.IsPositive() {
				invalid--
			}
		}

		if i < window-1 || invalid > 0 {
			series[i] = optional.None[decimal.Decimal]()
			continue
		}
		series[i] = optional.Some(sum.Div(divisor))
	}

	applyWarmup(series, policy)
	return series, nil
}

func applyWarmup(series MovingAverage, policy WarmupPolicy) {
	first := -1
	for i, v := range series {
		if v.IsSome() {
			first = i
			break
		}
	}

	switch policy {
	case WarmupBackfill:
		if first < 0 {
			return
		}
		for i := 0; i < first; i++ {
			series[i] = series[first]
		}
	case WarmupZeroFill:
		end := first
		if end < 0 {
			end = len(series)
		}
		for i := 0; i < end; i++ {
			series[i] = optional.Some(decimal.Zero)
		}
	case WarmupSkip:
	}
}
