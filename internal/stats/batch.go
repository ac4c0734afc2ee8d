package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// AggregateBatch describes the distribution of outcomes across many
// independent runs of the same strategy. Percentiles use the empirical
// quantile over sorted final balances.
func AggregateBatch(summaries []*domain.SimulationSummary) *domain.BatchSummary {
	n := len(summaries)
	if n == 0 {
		return &domain.BatchSummary{}
	}

	finals := make([]float64, n)
	drawdowns := make([]float64, n)
	profitable := 0
	for i, s := range summaries {
		finals[i] = s.FinalBalance
		drawdowns[i] = s.MaxDrawdownPct
		if s.Profit > 0 {
			profitable++
		}
	}

	sortedFinals := make([]float64, n)
	copy(sortedFinals, finals)
	sort.Float64s(sortedFinals)

	worstDrawdown := 0.0
	for _, d := range drawdowns {
		if d > worstDrawdown {
			worstDrawdown = d
		}
	}

	return &domain.BatchSummary{
		Runs:               n,
		FinalBalanceMean:   stat.Mean(finals, nil),
		FinalBalanceP10:    stat.Quantile(0.10, stat.Empirical, sortedFinals, nil),
		FinalBalanceMedian: stat.Quantile(0.50, stat.Empirical, sortedFinals, nil),
		FinalBalanceP90:    stat.Quantile(0.90, stat.Empirical, sortedFinals, nil),
		FinalBalanceWorst:  sortedFinals[0],
		FinalBalanceBest:   sortedFinals[n-1],
		MaxDrawdownMean:    stat.Mean(drawdowns, nil),
		MaxDrawdownWorst:   worstDrawdown,
		ProfitableFraction: float64(profitable) / float64(n),
	}
}
