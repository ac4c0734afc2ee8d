package insights

import (
	"strings"
	"testing"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

func TestEvaluate_HealthyRun(t *testing.T) {
	s := &domain.SimulationSummary{
		Profit:         1200,
		ActualWinRate:  0.45,
		MinWinRate:     1.0 / 3.0,
		MaxDrawdownPct: 12.5,
		Expectancy:     32.0,
	}

	got := Evaluate(s)

	if len(got) != 4 {
		t.Fatalf("expected 4 insights, got %d", len(got))
	}
	for i, insight := range got {
		if insight.Level != domain.InsightGood {
			t.Errorf("insight %d: level %s, want good (%s)", i, insight.Level, insight.Message)
		}
	}
	if !strings.Contains(got[1].Message, "45.0%") || !strings.Contains(got[1].Message, "33.3%") {
		t.Errorf("win rate insight should quote both rates: %s", got[1].Message)
	}
}

func TestEvaluate_FailingRun(t *testing.T) {
	s := &domain.SimulationSummary{
		Profit:         -3000,
		ActualWinRate:  0.25,
		MinWinRate:     1.0 / 3.0,
		MaxDrawdownPct: 41.0,
		Expectancy:     -8.5,
	}

	got := Evaluate(s)

	wantLevels := []domain.InsightLevel{
		domain.InsightBad,     // not profitable
		domain.InsightWarning, // win rate below break-even
		domain.InsightWarning, // high drawdown
		domain.InsightBad,     // negative expectancy
	}
	for i, want := range wantLevels {
		if got[i].Level != want {
			t.Errorf("insight %d: level %s, want %s (%s)", i, got[i].Level, want, got[i].Message)
		}
	}
	if !strings.Contains(got[2].Message, "reducing position size") {
		t.Errorf("drawdown insight should suggest smaller positions: %s", got[2].Message)
	}
}

func TestEvaluate_DrawdownThresholdBoundary(t *testing.T) {
	s := &domain.SimulationSummary{
		Profit:         1,
		ActualWinRate:  0.5,
		MinWinRate:     0.5,
		MaxDrawdownPct: HighDrawdownThresholdPct, // exactly at threshold: not significant
		Expectancy:     1,
	}

	got := Evaluate(s)
	if got[2].Level != domain.InsightGood {
		t.Errorf("drawdown exactly at %v%% should not warn, got %s", HighDrawdownThresholdPct, got[2].Level)
	}
}

func TestEvaluate_ZeroProfitIsBad(t *testing.T) {
	s := &domain.SimulationSummary{Profit: 0, Expectancy: 0}

	got := Evaluate(s)
	if got[0].Level != domain.InsightBad {
		t.Errorf("zero profit should read as not profitable, got %s", got[0].Level)
	}
	if got[3].Level != domain.InsightBad {
		t.Errorf("zero expectancy should read as negative, got %s", got[3].Level)
	}
}
