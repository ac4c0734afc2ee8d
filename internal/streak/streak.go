// Package streak estimates expected maximum losing-streak lengths.
package streak

import (
	"math"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// DefaultWinRates is the fixed grid of win rates probed when building a
// losing-streak table: 5% through 100% in 5% steps.
var DefaultWinRates = []float64{
	0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50,
	0.55, 0.60, 0.65, 0.70, 0.75, 0.80, 0.85, 0.90, 0.95, 1.00,
}

// Estimate returns the expected maximum consecutive-loss run length within
// sampleSize trades, using the closed-form run-length approximation
// log(N) / log(1/(1-p)). It is fully deterministic; no simulation involved.
//
// Edge policy: a win rate at or above 1 has no losing streaks and returns 0.
// A win rate of 0 makes the denominator log(1) = 0 and returns +Inf; the
// formula reports infinity rather than sampleSize, a known approximation
// artifact that is kept as-is. Callers must pass sampleSize >= 1.
func Estimate(winRate float64, sampleSize int) float64 {
	if winRate >= 1.0 {
		return 0
	}

	denominator := math.Log(1 / (1 - winRate))
	if denominator == 0 {
		return math.Inf(1)
	}

	return math.Log(float64(sampleSize)) / denominator
}

// BuildTable computes a losing-streak table over DefaultWinRates for the
// given sample size. The table is rebuilt in full on every call; rows
// carry no identity across recomputations.
func BuildTable(sampleSize int) []domain.StreakRow {
	rows := make([]domain.StreakRow, 0, len(DefaultWinRates))
	for _, winRate := range DefaultWinRates {
		rows = append(rows, domain.StreakRow{
			WinRate:           winRate,
			ExpectedMaxStreak: Estimate(winRate, sampleSize),
		})
	}
	return rows
}
