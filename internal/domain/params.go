package domain

import "errors"

// Parameter validation errors. The engine itself assumes validated input;
// these are for the collaborators (CLI flags, HTTP handlers) to surface
// before any simulation is started.
var (
	ErrInvalidBalance    = errors.New("account balance must be positive")
	ErrInvalidWinRate    = errors.New("win rate must be in (0, 1]")
	ErrInvalidRewardRisk = errors.New("reward:risk ratio must be positive")
	ErrInvalidRiskPct    = errors.New("risk percent must be in (0, 1]")
	ErrInvalidTradeCount = errors.New("trade count must be at least 1")
)

// StrategyParams describes one strategy specification to simulate.
// All five fields are required together; rates are fractions, not percentages.
type StrategyParams struct {
	AccountBalance float64 `json:"account_balance"` // starting balance in currency units
	WinRate        float64 `json:"win_rate"`        // probability of a winning trade, (0, 1]
	RewardRisk     float64 `json:"reward_risk"`     // average win size / average loss size
	RiskPercent    float64 `json:"risk_percent"`    // fraction of current balance risked per trade, (0, 1]
	TradeCount     int     `json:"trade_count"`     // number of trades to simulate, >= 1
}

// Validate checks parameter ranges. Returns the first violation found.
func (p StrategyParams) Validate() error {
	if p.AccountBalance <= 0 {
		return ErrInvalidBalance
	}
	if p.WinRate <= 0 || p.WinRate > 1 {
		return ErrInvalidWinRate
	}
	if p.RewardRisk <= 0 {
		return ErrInvalidRewardRisk
	}
	if p.RiskPercent <= 0 || p.RiskPercent > 1 {
		return ErrInvalidRiskPct
	}
	if p.TradeCount < 1 {
		return ErrInvalidTradeCount
	}
	return nil
}
