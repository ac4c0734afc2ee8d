package reporting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// RenderMarkdown renders a report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Trade Expectancy Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	if r.RunID != "" {
		sb.WriteString(fmt.Sprintf("Run: `%s` (seed %d)\n\n", r.RunID, r.Seed))
	}

	// Parameters
	sb.WriteString("## Parameters\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Account Balance | $%.2f |\n", r.Params.AccountBalance))
	sb.WriteString(fmt.Sprintf("| Win Rate | %.1f%% |\n", r.Params.WinRate*100))
	sb.WriteString(fmt.Sprintf("| Reward:Risk | %.2f |\n", r.Params.RewardRisk))
	sb.WriteString(fmt.Sprintf("| Risk Per Trade | %.1f%% |\n", r.Params.RiskPercent*100))
	sb.WriteString(fmt.Sprintf("| Trades | %d |\n", r.Params.TradeCount))
	sb.WriteString("\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	if r.Summary != nil {
		s := r.Summary
		sb.WriteString("| Metric | Value |\n")
		sb.WriteString("|--------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Final Balance | $%.2f |\n", s.FinalBalance))
		sb.WriteString(fmt.Sprintf("| Profit/Loss | $%.2f |\n", s.Profit))
		sb.WriteString(fmt.Sprintf("| Return | %.2f%% |\n", s.ReturnPct))
		sb.WriteString(fmt.Sprintf("| Max Drawdown | %.2f%% |\n", s.MaxDrawdownPct))
		sb.WriteString(fmt.Sprintf("| Expectancy | $%.2f |\n", s.Expectancy))
		sb.WriteString(fmt.Sprintf("| Expectancy R | %.2f |\n", s.ExpectancyR))
		sb.WriteString(fmt.Sprintf("| Actual Win Rate | %.2f%% |\n", s.ActualWinRate*100))
		sb.WriteString(fmt.Sprintf("| Minimum Win Rate | %.2f%% |\n", s.MinWinRate*100))
	} else {
		sb.WriteString("No summary available.\n")
	}
	sb.WriteString("\n")

	// Insights
	if len(r.Insights) > 0 {
		sb.WriteString("## Insights\n\n")
		for _, insight := range r.Insights {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", insight.Level, insight.Message))
		}
		sb.WriteString("\n")
	}

	// Trade ledger
	sb.WriteString("## Trade Ledger\n\n")
	if len(r.Trades) > 0 {
		sb.WriteString("| # | Outcome | Pre-Balance | Risk | P&L | Post-Balance | Drawdown | Peak |\n")
		sb.WriteString("|---|---------|-------------|------|-----|--------------|----------|------|\n")
		for _, t := range r.Trades {
			sb.WriteString(fmt.Sprintf("| %d | %s | $%.2f | $%.2f | $%.2f | $%.2f | %.2f%% | $%.2f |\n",
				t.Index, t.Outcome, t.PreBalance, t.RiskAmount, t.PnL, t.PostBalance, t.DrawdownPct, t.PeakBalance))
		}
	} else {
		sb.WriteString("No trades recorded.\n")
	}
	sb.WriteString("\n")

	// Losing streak table
	if len(r.StreakTable) > 0 {
		sb.WriteString(fmt.Sprintf("## Expected Losing Streaks (%d trades)\n\n", r.Params.TradeCount))
		sb.WriteString("| Win Rate | Expected Max Streak |\n")
		sb.WriteString("|----------|---------------------|\n")
		for _, row := range r.StreakTable {
			sb.WriteString(fmt.Sprintf("| %.0f%% | %s |\n", row.WinRate*100, formatStreak(row.ExpectedMaxStreak)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatStreak renders a streak value, mapping the win_rate=0 infinity
// artifact to a readable token.
func formatStreak(v float64) string {
	if math.IsInf(v, 1) {
		return "Inf"
	}
	return fmt.Sprintf("%.2f", v)
}

// RenderText renders a compact plain-text summary for CLI output.
func RenderText(params domain.StrategyParams, s *domain.SimulationSummary, insights []domain.Insight) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Simulated %d trades (win rate %.0f%%, RR %.2f, risk %.1f%%)\n",
		s.Trades, params.WinRate*100, params.RewardRisk, params.RiskPercent*100))
	sb.WriteString(fmt.Sprintf("  Final Balance:    $%.2f\n", s.FinalBalance))
	sb.WriteString(fmt.Sprintf("  Profit/Loss:      $%.2f (%.2f%%)\n", s.Profit, s.ReturnPct))
	sb.WriteString(fmt.Sprintf("  Max Drawdown:     %.2f%%\n", s.MaxDrawdownPct))
	sb.WriteString(fmt.Sprintf("  Expectancy:       $%.2f (%.2fR)\n", s.Expectancy, s.ExpectancyR))
	sb.WriteString(fmt.Sprintf("  Actual Win Rate:  %.2f%%\n", s.ActualWinRate*100))
	sb.WriteString(fmt.Sprintf("  Minimum Win Rate: %.2f%%\n", s.MinWinRate*100))
	for _, insight := range insights {
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", insight.Level, insight.Message))
	}

	return sb.String()
}
