package repository

import (
	"context"
	"errors"
	"time"

	"stock-backtest/internal/model"
	"stock-backtest/pkg/utils"

	"gorm.io/gorm"
)

type BacktestResultRepository interface {
	Create(ctx context.Context, result *model.BacktestResult, opts ...utils.DBOption) error
	// GetBySymbol returns stored runs newest first.
	GetBySymbol(ctx context.Context, symbol string, limit int, opts ...utils.DBOption) ([]model.BacktestResult, error)
	// GetLatest returns nil, nil when the symbol has no runs.
	GetLatest(ctx context.Context, symbol string, opts ...utils.DBOption) (*model.BacktestResult, error)
	DeleteOlderThan(ctx context.Context, date time.Time, opts ...utils.DBOption) (int64, error)
}

type backtestResultRepository struct {
	db *gorm.DB
}

func NewBacktestResultRepository(db *gorm.DB) BacktestResultRepository {
	return &backtestResultRepository{db: db}
}

func (r *backtestResultRepository) Create(ctx context.Context, result *model.BacktestResult, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Create(result).Error
}

func (r *backtestResultRepository) GetBySymbol(ctx context.Context, symbol string, limit int, opts ...utils.DBOption) ([]model.BacktestResult, error) {
	var results []model.BacktestResult
	opts = append(opts, utils.WithLimit(limit))
	err := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("symbol = ?", symbol).
		Order("run_at DESC, id DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *backtestResultRepository) GetLatest(ctx context.Context, symbol string, opts ...utils.DBOption) (*model.BacktestResult, error) {
	var result model.BacktestResult
	err := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("symbol = ?", symbol).
		Order("run_at DESC, id DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *backtestResultRepository) DeleteOlderThan(ctx context.Context, date time.Time, opts ...utils.DBOption) (int64, error) {
	result := utils.ApplyOptions(r.db.WithContext(ctx), opts...).Where("run_at < ?", date).Delete(&model.BacktestResult{})
	return result.RowsAffected, result.Error
}
