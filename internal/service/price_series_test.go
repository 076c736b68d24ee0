package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/mocks"
	"stock-backtest/internal/model"
	"stock-backtest/pkg/cache"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPriceSeries_Load(t *testing.T) {
	archived := []dto.StockOHLCV{{
		Date:   baseDate,
		Open:   decimal.NewFromInt(10),
		High:   decimal.NewFromInt(11),
		Low:    decimal.NewFromInt(9),
		Close:  decimal.NewFromInt(10),
		Volume: 500,
	}}

	tests := []struct {
		name       string
		mock       func(price *mocks.MockStockPriceRepository, archive *mocks.MockPriceArchiveRepository)
		wantLen    int
		wantSource string
		wantErr    bool
		wantCached bool
	}{
		{
			name: "database rows are cached",
			mock: func(price *mocks.MockStockPriceRepository, _ *mocks.MockPriceArchiveRepository) {
				price.EXPECT().Get(gomock.Any(), model.GetStockPriceParam{Symbol: "IBM"}).Return(pricesFromCloses("IBM", "1", "2"), nil)
			},
			wantLen:    2,
			wantCached: true,
		},
		{
			name: "archive fills an empty database",
			mock: func(price *mocks.MockStockPriceRepository, archive *mocks.MockPriceArchiveRepository) {
				price.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
				archive.EXPECT().Enabled().Return(true)
				archive.EXPECT().Read(gomock.Any(), "IBM").Return(archived, nil)
			},
			wantLen:    1,
			wantSource: archiveSource,
			wantCached: true,
		},
		{
			name: "disabled archive is skipped",
			mock: func(price *mocks.MockStockPriceRepository, archive *mocks.MockPriceArchiveRepository) {
				price.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
				archive.EXPECT().Enabled().Return(false)
			},
		},
		{
			name: "archive failure",
			mock: func(price *mocks.MockStockPriceRepository, archive *mocks.MockPriceArchiveRepository) {
				price.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
				archive.EXPECT().Enabled().Return(true)
				archive.EXPECT().Read(gomock.Any(), "IBM").Return(nil, errors.New("corrupt footer"))
			},
			wantErr: true,
		},
		{
			name: "database failure",
			mock: func(price *mocks.MockStockPriceRepository, _ *mocks.MockPriceArchiveRepository) {
				price.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			priceRepo := mocks.NewMockStockPriceRepository(ctrl)
			archiveRepo := mocks.NewMockPriceArchiveRepository(ctrl)
			tt.mock(priceRepo, archiveRepo)

			c := cache.NewCache(time.Minute, time.Minute)
			series := NewPriceSeries(c, priceRepo, time.Minute).WithArchive(archiveRepo)

			got, err := series.Load(context.Background(), "IBM")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			if tt.wantSource != "" {
				assert.Equal(t, tt.wantSource, got[0].Source)
				assert.Equal(t, "IBM", got[0].Symbol)
			}

			_, cached := cache.GetAs[[]model.StockPrice](c, priceCacheKey("IBM"))
			assert.Equal(t, tt.wantCached, cached)
			if cached {
				again, err := series.Load(context.Background(), "IBM")
				require.NoError(t, err)
				assert.Equal(t, got, again, "second load is served from the cache")
			}
		})
	}
}

func TestFilterByDate(t *testing.T) {
	prices := pricesFromCloses("IBM", "1", "2", "3", "4")
	from := baseDate.AddDate(0, 0, 1)
	to := baseDate.AddDate(0, 0, 2)

	assert.Len(t, filterByDate(prices, nil, nil), 4)
	assert.Len(t, filterByDate(prices, &from, nil), 3)
	assert.Len(t, filterByDate(prices, nil, &to), 3)

	got := filterByDate(prices, &from, &to)
	require.Len(t, got, 2)
	assert.Equal(t, from, got[0].Date)
}
