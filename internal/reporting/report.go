package reporting

import (
	"time"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// Report is the renderable result of one simulation run, with the
// losing-streak table for the same sample size attached.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	RunID       string
	Seed        uint64

	// Inputs
	Params domain.StrategyParams

	// Results
	Summary  *domain.SimulationSummary
	Insights []domain.Insight
	Trades   []*domain.TradeRecord

	// Losing streak table for Params.TradeCount trades
	StreakTable []domain.StreakRow
}
