package domain

// Outcome classifies a single trade.
type Outcome string

// Outcome constants.
const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
)

// TradeRecord is one row of the simulated trade ledger. Records are
// produced in strict index order and are immutable once produced; the
// ordered sequence is the simulator's sole output artifact.
type TradeRecord struct {
	Index       int     `json:"index"`        // 1-based, contiguous
	Outcome     Outcome `json:"outcome"`      // WIN | LOSS
	PreBalance  float64 `json:"pre_balance"`  // balance before the trade
	RiskAmount  float64 `json:"risk_amount"`  // pre_balance * risk_percent
	PnL         float64 `json:"pnl"`          // signed profit/loss
	PostBalance float64 `json:"post_balance"` // pre_balance + pnl
	DrawdownPct float64 `json:"drawdown_pct"` // decline from peak, percent, >= 0
	PeakBalance float64 `json:"peak_balance"` // running peak as of this trade, non-decreasing
}
