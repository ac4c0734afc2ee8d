// Package stats derives aggregate performance metrics from trade ledgers.
package stats

import (
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// Summarize computes aggregate metrics from a completed trade ledger.
// Expectancy deliberately uses the configured win rate, not the realized
// one: it answers what the strategy's edge predicts, decoupled from the
// particular random draw. Inputs are assumed validated upstream; the only
// guards here are the documented divide-by-zero cases.
func Summarize(params domain.StrategyParams, records []*domain.TradeRecord) *domain.SimulationSummary {
	n := len(records)
	if n == 0 {
		return &domain.SimulationSummary{
			FinalBalance: params.AccountBalance,
			MinWinRate:   MinWinRate(params.RewardRisk),
		}
	}

	wins := 0
	winSum := 0.0
	lossSum := 0.0 // absolute
	maxDrawdown := 0.0

	for _, r := range records {
		if r.Outcome == domain.OutcomeWin {
			wins++
			winSum += r.PnL
		} else {
			lossSum += -r.PnL
		}
		if r.DrawdownPct > maxDrawdown {
			maxDrawdown = r.DrawdownPct
		}
	}
	losses := n - wins

	avgWin := 0.0
	if wins > 0 {
		avgWin = winSum / float64(wins)
	}
	avgLoss := 0.0
	if losses > 0 {
		avgLoss = lossSum / float64(losses)
	}

	expectancy := params.WinRate*avgWin - (1-params.WinRate)*avgLoss
	expectancyR := 0.0
	if avgLoss > 0 {
		expectancyR = expectancy / avgLoss
	}

	finalBalance := records[n-1].PostBalance
	profit := finalBalance - params.AccountBalance

	return &domain.SimulationSummary{
		FinalBalance:   finalBalance,
		Profit:         profit,
		ReturnPct:      profit / params.AccountBalance * 100,
		MaxDrawdownPct: maxDrawdown,
		AvgWin:         avgWin,
		AvgLoss:        avgLoss,
		Expectancy:     expectancy,
		ExpectancyR:    expectancyR,
		ActualWinRate:  float64(wins) / float64(n),
		MinWinRate:     MinWinRate(params.RewardRisk),
		Trades:         n,
	}
}

// MinWinRate returns the break-even win rate for a reward:risk ratio,
// independent of any simulation run.
func MinWinRate(rewardRisk float64) float64 {
	return 1 / (1 + rewardRisk)
}
