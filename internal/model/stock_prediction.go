package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockPrediction struct {
	ID             uint            `gorm:"primaryKey"`
	Symbol         string          `gorm:"type:varchar(16);not null;uniqueIndex:idx_stock_predictions_symbol_date"`
	Date           time.Time       `gorm:"type:date;not null;uniqueIndex:idx_stock_predictions_symbol_date"`
	PredictedClose decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	ModelName      string          `gorm:"type:varchar(32);not null"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (StockPrediction) TableName() string {
	return "stock_predictions"
}
