package backtest

import (
	"time"

	"github.com/shopspring/decimal"
)

var baseDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decs(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = dec(v)
	}
	return out
}

func barsFromCloses(closes []decimal.Decimal) []Bar {
	bars := make([]Bar, len(closes))
	for i, c := range closes {
		bars[i] = Bar{Date: baseDate.AddDate(0, 0, i), Close: c}
	}
	return bars
}

func repeat(value string, n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = dec(value)
	}
	return out
}

// zigzagCloses mirrors a fluctuating daily series: even days close above the
// open, odd days below.
func zigzagCloses(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = decimal.NewFromInt(int64(105 + i))
		} else {
			out[i] = decimal.NewFromInt(int64(95 + i))
		}
	}
	return out
}
