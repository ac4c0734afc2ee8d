package domain

// SimulationSummary holds aggregate metrics derived from a completed trade
// ledger. Computed once after the full ledger exists and never mutated;
// any parameter change means a fresh simulation and a fresh summary.
type SimulationSummary struct {
	FinalBalance   float64 `json:"final_balance"`
	Profit         float64 `json:"profit"`           // final_balance - account_balance, signed
	ReturnPct      float64 `json:"return_pct"`       // profit / account_balance * 100
	MaxDrawdownPct float64 `json:"max_drawdown_pct"` // worst drawdown observed, percent
	AvgWin         float64 `json:"avg_win"`          // mean pnl over winning trades, 0 if none
	AvgLoss        float64 `json:"avg_loss"`         // mean absolute pnl over losing trades, 0 if none
	Expectancy     float64 `json:"expectancy"`       // currency per trade, from the configured win rate
	ExpectancyR    float64 `json:"expectancy_r"`     // expectancy / avg_loss, 0 when no losses
	ActualWinRate  float64 `json:"actual_win_rate"`  // realized fraction of wins
	MinWinRate     float64 `json:"min_win_rate"`     // break-even win rate, 1 / (1 + reward_risk)
	Trades         int     `json:"trades"`
}

// BatchSummary describes the distribution of outcomes across many
// independent simulation runs of the same strategy specification.
type BatchSummary struct {
	Runs int `json:"runs"`

	FinalBalanceMean   float64 `json:"final_balance_mean"`
	FinalBalanceP10    float64 `json:"final_balance_p10"`
	FinalBalanceMedian float64 `json:"final_balance_median"`
	FinalBalanceP90    float64 `json:"final_balance_p90"`
	FinalBalanceWorst  float64 `json:"final_balance_worst"`
	FinalBalanceBest   float64 `json:"final_balance_best"`

	MaxDrawdownMean  float64 `json:"max_drawdown_mean"`  // percent
	MaxDrawdownWorst float64 `json:"max_drawdown_worst"` // percent

	ProfitableFraction float64 `json:"profitable_fraction"` // runs with profit > 0 / runs
}
