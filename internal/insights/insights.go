// Package insights turns a simulation summary into reviewer-facing findings.
package insights

import (
	"fmt"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// HighDrawdownThresholdPct marks the max drawdown above which position
// sizing deserves a second look.
const HighDrawdownThresholdPct = 30.0

// Evaluate derives structured insights from a summary. The order is
// fixed: profitability, win rate vs break-even, drawdown, expectancy.
func Evaluate(s *domain.SimulationSummary) []domain.Insight {
	insights := make([]domain.Insight, 0, 4)

	if s.Profit > 0 {
		insights = append(insights, domain.Insight{
			Level:   domain.InsightGood,
			Message: "The system was profitable in this simulation.",
		})
	} else {
		insights = append(insights, domain.Insight{
			Level:   domain.InsightBad,
			Message: "The system was not profitable in this simulation.",
		})
	}

	actualPct := s.ActualWinRate * 100
	minPct := s.MinWinRate * 100
	if s.ActualWinRate >= s.MinWinRate {
		insights = append(insights, domain.Insight{
			Level: domain.InsightGood,
			Message: fmt.Sprintf("The actual win rate (%.1f%%) was above the minimum required win rate (%.1f%%).",
				actualPct, minPct),
		})
	} else {
		insights = append(insights, domain.Insight{
			Level: domain.InsightWarning,
			Message: fmt.Sprintf("The actual win rate (%.1f%%) was below the minimum required win rate (%.1f%%).",
				actualPct, minPct),
		})
	}

	if s.MaxDrawdownPct > HighDrawdownThresholdPct {
		insights = append(insights, domain.Insight{
			Level: domain.InsightWarning,
			Message: fmt.Sprintf("The maximum drawdown (%.1f%%) was significant. Consider reducing position size.",
				s.MaxDrawdownPct),
		})
	} else {
		insights = append(insights, domain.Insight{
			Level: domain.InsightGood,
			Message: fmt.Sprintf("The maximum drawdown (%.1f%%) was within reasonable limits.",
				s.MaxDrawdownPct),
		})
	}

	if s.Expectancy > 0 {
		insights = append(insights, domain.Insight{
			Level:   domain.InsightGood,
			Message: "The system has a positive expectancy. It's expected to be profitable in the long run.",
		})
	} else {
		insights = append(insights, domain.Insight{
			Level:   domain.InsightBad,
			Message: "The system has a negative expectancy. It's not expected to be profitable in the long run.",
		})
	}

	return insights
}
