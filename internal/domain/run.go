package domain

import "time"

// SimulationRun bundles everything a finished run produced: the parameters,
// the seed that makes it reproducible, the full ledger and its summary.
// Runs are immutable result values held by the caller; the engine keeps
// no state between invocations.
type SimulationRun struct {
	RunID     string             `json:"run_id"` // deterministic hash, see runid package
	Params    StrategyParams     `json:"params"`
	Seed      uint64             `json:"seed"`
	Trades    []*TradeRecord     `json:"trades"`
	Summary   *SimulationSummary `json:"summary"`
	CreatedAt time.Time          `json:"created_at"`
}
