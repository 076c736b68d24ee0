package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/utils"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"
)

// ArchivedBar is the on-disk parquet row. Prices are kept as their exact
// decimal strings.
type ArchivedBar struct {
	Symbol string `parquet:"symbol"`
	Date   int64  `parquet:"date,timestamp(millisecond)"`
	Open   string `parquet:"open"`
	High   string `parquet:"high"`
	Low    string `parquet:"low"`
	Close  string `parquet:"close"`
	Volume int64  `parquet:"volume"`
}

// PriceArchiveRepository keeps one parquet file per symbol with every bar ever fetched.
type PriceArchiveRepository interface {
	Write(ctx context.Context, symbol string, bars []dto.StockOHLCV) error
	Read(ctx context.Context, symbol string) ([]dto.StockOHLCV, error)
	Enabled() bool
}

type parquetPriceArchive struct {
	dir string
}

// NewPriceArchiveRepository archives under dir; an empty dir disables archiving.
func NewPriceArchiveRepository(dir string) PriceArchiveRepository {
	return &parquetPriceArchive{dir: dir}
}

func (a *parquetPriceArchive) Enabled() bool {
	return a.dir != ""
}

func (a *parquetPriceArchive) path(symbol string) string {
	return filepath.Join(a.dir, "daily", strings.ToUpper(symbol)+".parquet")
}

// Write merges bars into the symbol's archive; incoming rows win on the same date.
func (a *parquetPriceArchive) Write(ctx context.Context, symbol string, bars []dto.StockOHLCV) error {
	if !a.Enabled() || len(bars) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	existing, err := a.readRecords(symbol)
	if err != nil {
		return err
	}

	byDate := make(map[int64]ArchivedBar, len(existing)+len(bars))
	for _, rec := range existing {
		byDate[rec.Date] = rec
	}
	for _, b := range bars {
		rec := toArchivedBar(symbol, b)
		byDate[rec.Date] = rec
	}

	merged := make([]ArchivedBar, 0, len(byDate))
	for _, rec := range byDate {
		merged = append(merged, rec)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })

	path := a.path(symbol)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	if err := parquet.WriteFile(path, merged); err != nil {
		return fmt.Errorf("write archive %s: %w", path, err)
	}
	return nil
}

func (a *parquetPriceArchive) Read(ctx context.Context, symbol string) ([]dto.StockOHLCV, error) {
	if !a.Enabled() {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := a.readRecords(symbol)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockOHLCV, 0, len(records))
	for _, rec := range records {
		bar, err := fromArchivedBar(rec)
		if err != nil {
			return nil, fmt.Errorf("corrupt archive row for %s: %w", symbol, err)
		}
		out = append(out, bar)
	}
	return out, nil
}

func (a *parquetPriceArchive) readRecords(symbol string) ([]ArchivedBar, error) {
	path := a.path(symbol)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	records, err := parquet.ReadFile[ArchivedBar](path)
	if err != nil {
		return nil, fmt.Errorf("read archive %s: %w", path, err)
	}
	return records, nil
}

func toArchivedBar(symbol string, b dto.StockOHLCV) ArchivedBar {
	return ArchivedBar{
		Symbol: strings.ToUpper(symbol),
		Date:   utils.DateOnly(b.Date).UnixMilli(),
		Open:   b.Open.String(),
		High:   b.High.String(),
		Low:    b.Low.String(),
		Close:  b.Close.String(),
		Volume: b.Volume,
	}
}

func fromArchivedBar(rec ArchivedBar) (dto.StockOHLCV, error) {
	var prices [4]decimal.Decimal
	for i, s := range [4]string{rec.Open, rec.High, rec.Low, rec.Close} {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return dto.StockOHLCV{}, err
		}
		prices[i] = d
	}
	return dto.StockOHLCV{
		Date:   utils.DateOnly(time.UnixMilli(rec.Date).UTC()),
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: rec.Volume,
	}, nil
}
