package reporting

import (
	"fmt"
	"math"
	"strings"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// RenderTradesCSV renders a trade ledger as a CSV string.
func RenderTradesCSV(trades []*domain.TradeRecord) string {
	var sb strings.Builder

	// Header
	sb.WriteString("trade,outcome,pre_balance,risk_amount,pnl,post_balance,drawdown_pct,peak_balance\n")

	// Rows
	for _, t := range trades {
		sb.WriteString(fmt.Sprintf("%d,%s,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f\n",
			t.Index,
			t.Outcome,
			t.PreBalance,
			t.RiskAmount,
			t.PnL,
			t.PostBalance,
			t.DrawdownPct,
			t.PeakBalance,
		))
	}

	return sb.String()
}

// RenderStreakCSV renders a losing-streak table as a CSV string. The
// win_rate=0 infinity artifact is written as "inf".
func RenderStreakCSV(rows []domain.StreakRow) string {
	var sb strings.Builder

	sb.WriteString("win_rate,expected_max_streak\n")

	for _, row := range rows {
		if math.IsInf(row.ExpectedMaxStreak, 1) {
			sb.WriteString(fmt.Sprintf("%.2f,inf\n", row.WinRate))
			continue
		}
		sb.WriteString(fmt.Sprintf("%.2f,%.6f\n", row.WinRate, row.ExpectedMaxStreak))
	}

	return sb.String()
}
