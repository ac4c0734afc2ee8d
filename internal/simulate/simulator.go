// Package simulate runs trade-sequence simulations over Bernoulli outcomes.
package simulate

import (
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/outcome"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/stats"
)

// Run executes one trade sequence and returns the ordered ledger.
// Position sizing is re-based on the current balance at the time of each
// trade (compounding sizing), so equity grows and decays geometrically.
// State is carried forward trade to trade, never re-derived; the loop is
// purely data-driven by params.TradeCount with no early termination.
// Parameters are assumed validated by the caller.
func Run(params domain.StrategyParams, src outcome.Source) []*domain.TradeRecord {
	records := make([]*domain.TradeRecord, 0, params.TradeCount)

	balance := params.AccountBalance
	peak := params.AccountBalance

	for i := 1; i <= params.TradeCount; i++ {
		pre := balance
		risk := balance * params.RiskPercent

		var out domain.Outcome
		var pnl float64
		if src.Draw() {
			out = domain.OutcomeWin
			pnl = risk * params.RewardRisk
		} else {
			out = domain.OutcomeLoss
			pnl = -risk
		}

		balance += pnl
		if balance > peak {
			peak = balance
		}

		// Peak starts at the account balance and never decreases, so a
		// non-positive peak can only come from a non-positive starting
		// balance; guard it rather than divide through.
		drawdown := 0.0
		if peak > 0 {
			drawdown = (peak - balance) / peak * 100
		}

		records = append(records, &domain.TradeRecord{
			Index:       i,
			Outcome:     out,
			PreBalance:  pre,
			RiskAmount:  risk,
			PnL:         pnl,
			PostBalance: balance,
			DrawdownPct: drawdown,
			PeakBalance: peak,
		})
	}

	return records
}

// RunWithOutcomes executes one trade sequence over a pre-drawn outcome
// sequence instead of a live random source.
func RunWithOutcomes(params domain.StrategyParams, outcomes []domain.Outcome) []*domain.TradeRecord {
	return Run(params, outcome.NewScripted(outcomes))
}

// Simulate runs one simulation end to end: ledger plus summary.
func Simulate(params domain.StrategyParams, src outcome.Source) ([]*domain.TradeRecord, *domain.SimulationSummary) {
	records := Run(params, src)
	return records, stats.Summarize(params, records)
}

// SimulateSeeded runs one simulation with a seeded Bernoulli source.
// Same seed and parameters reproduce the exact same run.
func SimulateSeeded(params domain.StrategyParams, seed uint64) ([]*domain.TradeRecord, *domain.SimulationSummary) {
	return Simulate(params, outcome.NewBernoulli(params.WinRate, seed))
}
