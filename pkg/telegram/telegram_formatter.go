package telegram

import (
	"fmt"
	"strings"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/utils"
)

// maxPredictionLines caps how many forecast days fit in one chat message.
const maxPredictionLines = 10

// FormatBacktestResult renders a run as a MarkdownV2 message.
func FormatBacktestResult(r *dto.BacktestResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 *Backtest %s*\n", utils.EscapeMarkdownV2(r.Symbol)))
	b.WriteString(utils.EscapeMarkdownV2(fmt.Sprintf("MA %d/%d, warm-up %s", r.ShortWindow, r.LongWindow, r.WarmupPolicy)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("💵 Initial: `%s`\n", utils.EscapeMarkdownV2(r.InitialInvestment.StringFixed(2))))
	b.WriteString(fmt.Sprintf("💰 Final: `%s`\n", utils.EscapeMarkdownV2(r.FinalValue.StringFixed(2))))
	b.WriteString(fmt.Sprintf("📈 ROI: `%s%%`\n", utils.EscapeMarkdownV2(r.ROI.StringFixed(2))))
	b.WriteString(fmt.Sprintf("📉 Max drawdown: `%s%%`\n", utils.EscapeMarkdownV2(r.MaxDrawdown.StringFixed(2))))
	b.WriteString(fmt.Sprintf("🔁 Trades: `%d`", r.TradesExecuted))
	if r.SkippedBars > 0 {
		b.WriteString(fmt.Sprintf("\n⚠️ Skipped bars: `%d`", r.SkippedBars))
	}
	return b.String()
}

// FormatPrediction renders the first days of a forecast as a MarkdownV2 message.
func FormatPrediction(p *dto.PredictionResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔮 *Forecast %s* \\(%s\\)\n", utils.EscapeMarkdownV2(p.Symbol), utils.EscapeMarkdownV2(p.Model)))
	for i, pt := range p.Predictions {
		if i == maxPredictionLines {
			b.WriteString(utils.EscapeMarkdownV2(fmt.Sprintf("... and %d more days", len(p.Predictions)-maxPredictionLines)))
			b.WriteString("\n")
			break
		}
		b.WriteString(fmt.Sprintf("%s: `%s`\n", utils.EscapeMarkdownV2(pt.Date), utils.EscapeMarkdownV2(pt.PredictedClose.StringFixed(2))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatError renders a failed command as plain text.
func FormatError(command, message string) string {
	return fmt.Sprintf("❌ %s failed: %s", command, message)
}
