package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/mocks"
	"stock-backtest/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCommand() (*cobra.Command, *bytes.Buffer) {
	out := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	return cmd, out
}

func TestRootCommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"start", "migrate", "sync", "backtest"})

	sub := make([]string, 0)
	for _, c := range migrateCmd.Commands() {
		sub = append(sub, c.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down"}, sub)
}

func TestUniqueSymbols(t *testing.T) {
	assert.Equal(t, []string{"IBM", "AAPL"}, uniqueSymbols([]string{"ibm", " AAPL ", "IBM", ""}))
}

func TestSyncSymbols(t *testing.T) {
	marketData := mocks.NewMockMarketDataService(gomock.NewController(t))
	marketData.EXPECT().Sync(gomock.Any(), "IBM").Return(&dto.FetchStockResponse{
		Symbol: "IBM", Provider: "alpha_vantage", Received: 3, Stored: 3, From: "2024-01-02", To: "2024-01-04",
	}, nil)
	marketData.EXPECT().Sync(gomock.Any(), "NOPE").Return(nil, apperror.NotFound("no historical data found for NOPE"))

	cmd, out := testCommand()
	failed := syncSymbols(cmd, marketData, []string{"IBM", "NOPE"})

	assert.Equal(t, 1, failed)
	assert.Equal(t,
		"IBM: stored 3 bars from alpha_vantage (2024-01-02 to 2024-01-04)\nNOPE: no historical data found for NOPE\n",
		out.String())
}

func TestPrintBacktest(t *testing.T) {
	backtest := mocks.NewMockBacktestService(gomock.NewController(t))
	backtest.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.BacktestRequest) (*dto.BacktestResponse, error) {
			assert.Equal(t, "IBM", req.Symbol)
			assert.Equal(t, json.Number("10000"), req.InitialInvestment)
			return &dto.BacktestResponse{Symbol: "IBM", FinalValue: decimal.RequireFromString("12222.22")}, nil
		})

	cmd, out := testCommand()
	require.NoError(t, printBacktest(cmd, backtest, dto.BacktestRequest{Symbol: "IBM", InitialInvestment: "10000"}))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "IBM", got["symbol"])
	assert.Equal(t, "12222.22", got["final_value"])

	backtest.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	assert.EqualError(t, printBacktest(cmd, backtest, dto.BacktestRequest{Symbol: "IBM"}), "boom")
}
