package reporting

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

func fixtureRun() *domain.SimulationRun {
	return &domain.SimulationRun{
		RunID: "abc123",
		Params: domain.StrategyParams{
			AccountBalance: 10000,
			WinRate:        0.4,
			RewardRisk:     2.0,
			RiskPercent:    0.01,
			TradeCount:     2,
		},
		Seed: 42,
		Trades: []*domain.TradeRecord{
			{Index: 1, Outcome: domain.OutcomeWin, PreBalance: 10000, RiskAmount: 100, PnL: 200, PostBalance: 10200, DrawdownPct: 0, PeakBalance: 10200},
			{Index: 2, Outcome: domain.OutcomeLoss, PreBalance: 10200, RiskAmount: 102, PnL: -102, PostBalance: 10098, DrawdownPct: 1, PeakBalance: 10200},
		},
		Summary: &domain.SimulationSummary{
			FinalBalance:   10098,
			Profit:         98,
			ReturnPct:      0.98,
			MaxDrawdownPct: 1,
			AvgWin:         200,
			AvgLoss:        102,
			Expectancy:     18.8,
			ExpectancyR:    0.184,
			ActualWinRate:  0.5,
			MinWinRate:     1.0 / 3.0,
			Trades:         2,
		},
		CreatedAt: time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerator_BuildPopulatesAllSections(t *testing.T) {
	fixedTime := time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(t.TempDir()).WithClock(func() time.Time { return fixedTime })

	r := g.Build(fixtureRun())

	if !r.GeneratedAt.Equal(fixedTime) {
		t.Errorf("GeneratedAt: got %v, want %v", r.GeneratedAt, fixedTime)
	}
	if len(r.Insights) != 4 {
		t.Errorf("insights: got %d, want 4", len(r.Insights))
	}
	if len(r.StreakTable) != 20 {
		t.Errorf("streak table rows: got %d, want 20", len(r.StreakTable))
	}
}

func TestRenderMarkdown_Sections(t *testing.T) {
	g := NewGenerator(t.TempDir())
	md := RenderMarkdown(g.Build(fixtureRun()))

	for _, section := range []string{
		"# Trade Expectancy Report",
		"## Parameters",
		"## Summary",
		"## Insights",
		"## Trade Ledger",
		"## Expected Losing Streaks (2 trades)",
	} {
		if !strings.Contains(md, section) {
			t.Errorf("markdown missing section %q", section)
		}
	}
	if !strings.Contains(md, "| Final Balance | $10098.00 |") {
		t.Error("markdown missing final balance row")
	}
	if !strings.Contains(md, "| 2 | LOSS |") {
		t.Error("markdown missing second ledger row")
	}
}

func TestRenderTradesCSV_RowsAndHeader(t *testing.T) {
	run := fixtureRun()
	csv := RenderTradesCSV(run.Trades)

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv lines: got %d, want 3 (header + 2 rows)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "trade,outcome,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,WIN,") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
}

func TestRenderStreakCSV_InfinityArtifact(t *testing.T) {
	rows := []domain.StreakRow{
		{WinRate: 0, ExpectedMaxStreak: math.Inf(1)},
		{WinRate: 0.5, ExpectedMaxStreak: 6.6439},
	}

	csv := RenderStreakCSV(rows)

	if !strings.Contains(csv, "0.00,inf\n") {
		t.Errorf("infinity row not rendered as inf:\n%s", csv)
	}
	if !strings.Contains(csv, "0.50,6.643900\n") {
		t.Errorf("finite row missing:\n%s", csv)
	}
}

func TestGenerator_WriteCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(filepath.Join(dir, "out"))

	if err := g.Write(g.Build(fixtureRun())); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	for _, name := range []string{ReportFileName, TradesCSVFileName, StreaksFileName} {
		data, err := os.ReadFile(filepath.Join(dir, "out", name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
