package backtest

import (
	"testing"

	"stock-backtest/pkg/apperror"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func some(s string) optional.Option[decimal.Decimal] {
	return optional.Some(dec(s))
}

func none() optional.Option[decimal.Decimal] {
	return optional.None[decimal.Decimal]()
}

func assertSeries(t *testing.T, want, got MovingAverage) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, want[i].IsSome(), got[i].IsSome(), "definedness at %d", i)
		if want[i].IsSome() {
			assert.True(t, want[i].Unwrap().Equal(got[i].Unwrap()), "value at %d: want %s got %s", i, want[i].Unwrap(), got[i].Unwrap())
		}
	}
}

func TestComputeMovingAverage(t *testing.T) {
	tests := []struct {
		name   string
		closes []decimal.Decimal
		window int
		policy WarmupPolicy
		want   MovingAverage
	}{
		{
			name:   "backfill copies first defined mean",
			closes: decs("1", "2", "3", "4", "5"),
			window: 3,
			policy: WarmupBackfill,
			want:   MovingAverage{some("2"), some("2"), some("2"), some("3"), some("4")},
		},
		{
			name:   "skip leaves warm-up undefined",
			closes: decs("1", "2", "3", "4", "5"),
			window: 3,
			policy: WarmupSkip,
			want:   MovingAverage{none(), none(), some("2"), some("3"), some("4")},
		},
		{
			name:   "zero fill",
			closes: decs("1", "2", "3", "4", "5"),
			window: 3,
			policy: WarmupZeroFill,
			want:   MovingAverage{some("0"), some("0"), some("2"), some("3"), some("4")},
		},
		{
			name:   "window of one is the close itself",
			closes: decs("10.5", "11", "9.25"),
			window: 1,
			policy: WarmupBackfill,
			want:   MovingAverage{some("10.5"), some("11"), some("9.25")},
		},
		{
			name:   "series shorter than window stays undefined under backfill",
			closes: decs("1", "2"),
			window: 3,
			policy: WarmupBackfill,
			want:   MovingAverage{none(), none()},
		},
		{
			name:   "invalid close poisons the windows that contain it",
			closes: decs("2", "4", "0", "6", "8", "10"),
			window: 2,
			policy: WarmupBackfill,
			want:   MovingAverage{some("3"), some("3"), none(), none(), some("7"), some("9")},
		},
		{
			name:   "empty input",
			closes: nil,
			window: 5,
			policy: WarmupBackfill,
			want:   MovingAverage{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeMovingAverage(tt.closes, tt.window, tt.policy)
			require.NoError(t, err)
			assertSeries(t, tt.want, got)
		})
	}
}

func TestComputeMovingAverage_IndependentWindows(t *testing.T) {
	closes := zigzagCloses(80)
	snapshot := make([]decimal.Decimal, len(closes))
	copy(snapshot, closes)

	short, err := ComputeMovingAverage(closes, 20, WarmupBackfill)
	require.NoError(t, err)
	long, err := ComputeMovingAverage(closes, 50, WarmupBackfill)
	require.NoError(t, err)
	shortAgain, err := ComputeMovingAverage(closes, 20, WarmupBackfill)
	require.NoError(t, err)

	assertSeries(t, short, shortAgain)
	assert.Len(t, long, len(closes))
	for i := range closes {
		assert.True(t, snapshot[i].Equal(closes[i]), "input mutated at %d", i)
	}
}

func TestComputeMovingAverage_InvalidArguments(t *testing.T) {
	_, err := ComputeMovingAverage(decs("1"), 0, WarmupBackfill)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = ComputeMovingAverage(decs("1"), 2, WarmupPolicy("FORWARD"))
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestParseWarmupPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    WarmupPolicy
		wantErr bool
	}{
		{in: "", want: WarmupBackfill},
		{in: "backfill", want: WarmupBackfill},
		{in: "SKIP_WARMUP_BARS", want: WarmupSkip},
		{in: " zero_fill ", want: WarmupZeroFill},
		{in: "ffill", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWarmupPolicy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
