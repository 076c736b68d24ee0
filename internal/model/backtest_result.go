package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BacktestResult is one stored run. Runs are never overwritten.
type BacktestResult struct {
	ID                uint            `gorm:"primaryKey"`
	RunID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Symbol            string          `gorm:"type:varchar(16);not null;index:idx_backtest_results_symbol_run_at"`
	RunAt             time.Time       `gorm:"not null;index:idx_backtest_results_symbol_run_at"`
	InitialInvestment decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	FinalValue        decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	ROI               decimal.Decimal `gorm:"column:roi;type:numeric(12,2);not null"`
	MaxDrawdown       decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	TradesExecuted    int             `gorm:"not null"`
	ShortWindow       int             `gorm:"not null"`
	LongWindow        int             `gorm:"not null"`
	WarmupPolicy      string          `gorm:"type:varchar(32);not null"`
	SkippedBars       int             `gorm:"not null;default:0"`
	Trades            datatypes.JSON  `gorm:"type:jsonb"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
}

func (BacktestResult) TableName() string {
	return "backtest_results"
}
