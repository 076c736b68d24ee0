package repository

import (
	"context"
	"time"

	"stock-backtest/internal/model"
	"stock-backtest/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockPredictionRepository interface {
	Upsert(ctx context.Context, predictions []model.StockPrediction, opts ...utils.DBOption) error
	GetBySymbol(ctx context.Context, symbol string, opts ...utils.DBOption) ([]model.StockPrediction, error)
	// DeleteAfter removes the symbol's predictions dated after date.
	DeleteAfter(ctx context.Context, symbol string, date time.Time, opts ...utils.DBOption) (int64, error)
}

type stockPredictionRepository struct {
	db *gorm.DB
}

func NewStockPredictionRepository(db *gorm.DB) StockPredictionRepository {
	return &stockPredictionRepository{db: db}
}

func (r *stockPredictionRepository) Upsert(ctx context.Context, predictions []model.StockPrediction, opts ...utils.DBOption) error {
	if len(predictions) == 0 {
		return nil
	}
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"predicted_close", "model_name", "updated_at"}),
		}).
		Create(&predictions).Error
}

func (r *stockPredictionRepository) GetBySymbol(ctx context.Context, symbol string, opts ...utils.DBOption) ([]model.StockPrediction, error) {
	var predictions []model.StockPrediction
	err := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("symbol = ?", symbol).
		Order("date ASC").
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *stockPredictionRepository) DeleteAfter(ctx context.Context, symbol string, date time.Time, opts ...utils.DBOption) (int64, error) {
	result := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("symbol = ? AND date > ?", symbol, date).
		Delete(&model.StockPrediction{})
	return result.RowsAffected, result.Error
}
