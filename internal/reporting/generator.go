// Package reporting renders simulation results as Markdown and CSV files.
package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/insights"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/observability"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/streak"
)

// Output file names written by the generator.
const (
	ReportFileName    = "REPORT.md"
	TradesCSVFileName = "trades.csv"
	StreaksFileName   = "streaks.csv"
)

// Generator produces report files from finished runs.
type Generator struct {
	outputDir string
	now       func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a report generator writing into outputDir.
func NewGenerator(outputDir string) *Generator {
	return &Generator{
		outputDir: outputDir,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Build assembles the report for a finished run: insights are derived
// from the summary and the streak table is computed for the run's trade
// count.
func (g *Generator) Build(run *domain.SimulationRun) *Report {
	return &Report{
		GeneratedAt: g.now(),
		RunID:       run.RunID,
		Seed:        run.Seed,
		Params:      run.Params,
		Summary:     run.Summary,
		Insights:    insights.Evaluate(run.Summary),
		Trades:      run.Trades,
		StreakTable: streak.BuildTable(run.Params.TradeCount),
	}
}

// Write renders the report and writes REPORT.md, trades.csv and
// streaks.csv into the output directory.
func (g *Generator) Write(r *Report) error {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	files := map[string]string{
		ReportFileName:    RenderMarkdown(r),
		TradesCSVFileName: RenderTradesCSV(r.Trades),
		StreaksFileName:   RenderStreakCSV(r.StreakTable),
	}

	for name, content := range files {
		path := filepath.Join(g.outputDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	observability.RecordReport()
	return nil
}
