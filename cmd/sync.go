package cmd

import (
	"fmt"
	"strings"

	"stock-backtest/internal/service"
	"stock-backtest/pkg/apperror"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync SYMBOL...",
	Short: "Fetch daily prices for each symbol and store them",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	appDep, err := NewAppDependency(cmd.Context())
	if err != nil {
		return err
	}
	defer appDep.Close()

	failed := syncSymbols(cmd, appDep.services.MarketDataService, uniqueSymbols(args))
	if failed > 0 {
		return fmt.Errorf("%d of %d symbols failed to sync", failed, len(args))
	}
	return nil
}

func syncSymbols(cmd *cobra.Command, marketData service.MarketDataService, symbols []string) int {
	bar := progressbar.NewOptions(len(symbols),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Syncing"),
		progressbar.OptionShowCount(),
	)

	failed := 0
	var report strings.Builder
	for _, symbol := range symbols {
		bar.Describe(fmt.Sprintf("Syncing %s", symbol))
		resp, err := marketData.Sync(cmd.Context(), symbol)
		if err != nil {
			failed++
			fmt.Fprintf(&report, "%s: %s\n", symbol, apperror.PublicMessage(err, err.Error()))
		} else {
			fmt.Fprintf(&report, "%s: stored %d bars from %s (%s to %s)\n", resp.Symbol, resp.Stored, resp.Provider, resp.From, resp.To)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Fprintln(cmd.ErrOrStderr())
	fmt.Fprint(cmd.OutOrStdout(), report.String())
	return failed
}

func uniqueSymbols(args []string) []string {
	seen := make(map[string]struct{}, len(args))
	symbols := make([]string, 0, len(args))
	for _, arg := range args {
		symbol := strings.ToUpper(strings.TrimSpace(arg))
		if symbol == "" {
			continue
		}
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		symbols = append(symbols, symbol)
	}
	return symbols
}
