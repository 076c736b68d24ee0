package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPrice is one daily OHLCV bar, unique per (symbol, date).
type StockPrice struct {
	ID        uint            `gorm:"primaryKey"`
	Symbol    string          `gorm:"type:varchar(16);not null;uniqueIndex:idx_stock_prices_symbol_date"`
	Date      time.Time       `gorm:"type:date;not null;uniqueIndex:idx_stock_prices_symbol_date"`
	Open      decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	High      decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Low       decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Close     decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Volume    int64           `gorm:"not null"`
	Source    string          `gorm:"type:varchar(32)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (StockPrice) TableName() string {
	return "stock_prices"
}

type GetStockPriceParam struct {
	Symbol    string
	StartDate *time.Time
	EndDate   *time.Time
	// Latest keeps only the newest N bars; results are still returned oldest first.
	Latest int
}
