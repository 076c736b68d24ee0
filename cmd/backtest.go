package cmd

import (
	"encoding/json"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/service"

	"github.com/spf13/cobra"
)

var backtestFlags struct {
	investment   string
	shortWindow  int
	longWindow   int
	warmupPolicy string
	startDate    string
	endDate      string
}

var backtestCmd = &cobra.Command{
	Use:   "backtest SYMBOL",
	Short: "Backtest a symbol over its stored prices and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runBacktest,
}

func init() {
	f := backtestCmd.Flags()
	f.StringVar(&backtestFlags.investment, "investment", "10000", "initial investment")
	f.IntVar(&backtestFlags.shortWindow, "short", 0, "short moving-average window (default from config)")
	f.IntVar(&backtestFlags.longWindow, "long", 0, "long moving-average window (default from config)")
	f.StringVar(&backtestFlags.warmupPolicy, "warmup", "", "warm-up policy: BACKFILL, SKIP_WARMUP_BARS or ZERO_FILL")
	f.StringVar(&backtestFlags.startDate, "from", "", "first date to include (YYYY-MM-DD)")
	f.StringVar(&backtestFlags.endDate, "to", "", "last date to include (YYYY-MM-DD)")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	appDep, err := NewAppDependency(cmd.Context())
	if err != nil {
		return err
	}
	defer appDep.Close()

	return printBacktest(cmd, appDep.services.BacktestService, backtestRequest(args[0]))
}

func backtestRequest(symbol string) dto.BacktestRequest {
	return dto.BacktestRequest{
		Symbol:            symbol,
		InitialInvestment: json.Number(backtestFlags.investment),
		ShortWindow:       backtestFlags.shortWindow,
		LongWindow:        backtestFlags.longWindow,
		WarmupPolicy:      backtestFlags.warmupPolicy,
		StartDate:         backtestFlags.startDate,
		EndDate:           backtestFlags.endDate,
	}
}

func printBacktest(cmd *cobra.Command, backtest service.BacktestService, req dto.BacktestRequest) error {
	result, err := backtest.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
