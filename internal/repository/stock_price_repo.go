package repository

import (
	"context"

	"stock-backtest/internal/model"
	"stock-backtest/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockPriceRepository interface {
	Upsert(ctx context.Context, prices []model.StockPrice, opts ...utils.DBOption) (int64, error)
	// Get returns bars for a symbol ordered by date ascending.
	Get(ctx context.Context, param model.GetStockPriceParam, opts ...utils.DBOption) ([]model.StockPrice, error)
}

type stockPriceRepository struct {
	db *gorm.DB
}

func NewStockPriceRepository(db *gorm.DB) StockPriceRepository {
	return &stockPriceRepository{db: db}
}

// Upsert inserts bars, replacing OHLCV of existing (symbol, date) rows.
func (r *stockPriceRepository) Upsert(ctx context.Context, prices []model.StockPrice, opts ...utils.DBOption) (int64, error) {
	if len(prices) == 0 {
		return 0, nil
	}
	result := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume", "source", "updated_at"}),
		}).
		CreateInBatches(prices, 200)
	return result.RowsAffected, result.Error
}

func (r *stockPriceRepository) Get(ctx context.Context, param model.GetStockPriceParam, opts ...utils.DBOption) ([]model.StockPrice, error) {
	db := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Model(&model.StockPrice{}).
		Where("symbol = ?", param.Symbol)
	if param.StartDate != nil {
		db = db.Where("date >= ?", *param.StartDate)
	}
	if param.EndDate != nil {
		db = db.Where("date <= ?", *param.EndDate)
	}

	var prices []model.StockPrice
	if param.Latest > 0 {
		if err := db.Order("date DESC").Limit(param.Latest).Find(&prices).Error; err != nil {
			return nil, err
		}
		for i, j := 0, len(prices)-1; i < j; i, j = i+1, j-1 {
			prices[i], prices[j] = prices[j], prices[i]
		}
		return prices, nil
	}

	if err := db.Order("date ASC").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}
