package domain

import (
	"encoding/json"
	"math"
)

// StreakRow is one row of a losing-streak table: the expected maximum
// consecutive-loss run length for a probed win rate at a given sample size.
type StreakRow struct {
	WinRate           float64 `json:"win_rate"`
	ExpectedMaxStreak float64 `json:"expected_max_streak"`
}

// MarshalJSON encodes the row, mapping a +Inf streak (the win_rate=0
// formula artifact) to the string "Infinity", since IEEE infinities are
// not representable in JSON.
func (r StreakRow) MarshalJSON() ([]byte, error) {
	streak := any(r.ExpectedMaxStreak)
	if math.IsInf(r.ExpectedMaxStreak, 1) {
		streak = "Infinity"
	}
	return json.Marshal(struct {
		WinRate           float64 `json:"win_rate"`
		ExpectedMaxStreak any     `json:"expected_max_streak"`
	}{r.WinRate, streak})
}
