package streak

import (
	"math"
	"testing"
)

func TestEstimate_CertainWinner(t *testing.T) {
	for _, n := range []int{1, 10, 100, 10000} {
		if got := Estimate(1.0, n); got != 0 {
			t.Errorf("Estimate(1.0, %d): got %f, want 0", n, got)
		}
	}
}

func TestEstimate_CertainLoser(t *testing.T) {
	// log(1/(1-0)) = 0, the formula reports +Inf rather than the sample
	// size. Deliberately preserved behavior.
	for _, n := range []int{1, 50, 1000} {
		if got := Estimate(0.0, n); !math.IsInf(got, 1) {
			t.Errorf("Estimate(0.0, %d): got %f, want +Inf", n, got)
		}
	}
}

func TestEstimate_CoinFlipHundredTrades(t *testing.T) {
	// log(100)/log(2) = 6.6439...
	got := Estimate(0.5, 100)
	if math.Abs(got-6.6439) > 1e-3 {
		t.Errorf("Estimate(0.5, 100): got %f, want ~6.6439", got)
	}
}

func TestEstimate_DecreasesWithWinRate(t *testing.T) {
	prev := math.Inf(1)
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		got := Estimate(p, 500)
		if got >= prev {
			t.Errorf("Estimate(%f, 500) = %f, not below %f", p, got, prev)
		}
		prev = got
	}
}

func TestEstimate_GrowsWithSampleSize(t *testing.T) {
	if Estimate(0.5, 1000) <= Estimate(0.5, 100) {
		t.Error("larger samples should allow longer expected streaks")
	}
}

func TestBuildTable_Shape(t *testing.T) {
	rows := BuildTable(100)

	if len(rows) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(rows))
	}
	if rows[0].WinRate != 0.05 {
		t.Errorf("first row win rate: got %f, want 0.05", rows[0].WinRate)
	}
	last := rows[len(rows)-1]
	if last.WinRate != 1.0 || last.ExpectedMaxStreak != 0 {
		t.Errorf("last row: got (%f, %f), want (1.0, 0)", last.WinRate, last.ExpectedMaxStreak)
	}

	// Streaks are non-increasing as the win rate grows.
	for i := 1; i < len(rows); i++ {
		if rows[i].ExpectedMaxStreak > rows[i-1].ExpectedMaxStreak {
			t.Errorf("row %d: streak %f above previous %f", i, rows[i].ExpectedMaxStreak, rows[i-1].ExpectedMaxStreak)
		}
	}
}
