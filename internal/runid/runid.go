package runid

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// Compute derives a deterministic run_id using SHA256.
// Formula: SHA256(balance|win_rate|reward_risk|risk_percent|trade_count|seed|created_at_ns)
// Returns hex-encoded hash (64 characters).
func Compute(params domain.StrategyParams, seed uint64, createdAt time.Time) string {
	data := fmt.Sprintf("%.10g|%.10g|%.10g|%.10g|%d|%d|%d",
		params.AccountBalance,
		params.WinRate,
		params.RewardRisk,
		params.RiskPercent,
		params.TradeCount,
		seed,
		createdAt.UnixNano(),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
