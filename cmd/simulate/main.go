// Package main runs a single strategy simulation from the command line
// and prints the result as text or JSON, optionally writing a full
// report bundle to disk.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/insights"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/logger"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/reporting"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/runid"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/simulate"
)

// runBatch executes many independent runs and prints the distribution
// of final balances instead of a single ledger.
func runBatch(log zerolog.Logger, params domain.StrategyParams, runs int, seed uint64, asJSON bool) {
	result, err := simulate.RunBatch(context.Background(), params, runs, seed)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}
	b := result.Summary

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			log.Fatal().Err(err).Msg("failed to encode result")
		}
		return
	}

	fmt.Printf("Batch of %d runs (%d trades each, seed %d)\n\n", b.Runs, params.TradeCount, seed)
	fmt.Printf("Final balance  mean $%.2f  p10 $%.2f  median $%.2f  p90 $%.2f\n",
		b.FinalBalanceMean, b.FinalBalanceP10, b.FinalBalanceMedian, b.FinalBalanceP90)
	fmt.Printf("               worst $%.2f  best $%.2f\n", b.FinalBalanceWorst, b.FinalBalanceBest)
	fmt.Printf("Max drawdown   mean %.2f%%  worst %.2f%%\n", b.MaxDrawdownMean, b.MaxDrawdownWorst)
	fmt.Printf("Profitable     %.1f%% of runs\n", b.ProfitableFraction*100)
}

func main() {
	// Strategy parameters
	balance := flag.Float64("balance", 50000, "Starting account balance")
	winRate := flag.Float64("win-rate", 0.40, "Win rate as a fraction, (0, 1]")
	rewardRisk := flag.Float64("reward-risk", 3.0, "Reward to risk ratio")
	riskPct := flag.Float64("risk-pct", 0.01, "Fraction of balance risked per trade, (0, 1]")
	trades := flag.Int("trades", 30, "Number of trades to simulate")
	runs := flag.Int("runs", 1, "Number of independent runs (>1 prints the outcome distribution)")
	seed := flag.Uint64("seed", 0, "PRNG seed (0 picks a random seed)")

	// Output
	outputJSON := flag.Bool("json", false, "Output as JSON")
	showLedger := flag.Bool("ledger", false, "Print the trade-by-trade ledger")
	reportDir := flag.String("report-dir", "", "Write REPORT.md and CSVs to this directory")
	logLevel := flag.String("log-level", "warn", "Log level: trace, debug, info, warn, error")

	flag.Parse()

	log := logger.New(logger.Config{Level: *logLevel, Pretty: true})

	params := domain.StrategyParams{
		AccountBalance: *balance,
		WinRate:        *winRate,
		RewardRisk:     *rewardRisk,
		RiskPercent:    *riskPct,
		TradeCount:     *trades,
	}
	if err := params.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid parameters")
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	if *runs > 1 {
		runBatch(log, params, *runs, *seed, *outputJSON)
		return
	}

	records, summary := simulate.SimulateSeeded(params, *seed)
	found := insights.Evaluate(summary)

	createdAt := time.Now().UTC()
	run := &domain.SimulationRun{
		RunID:     runid.Compute(params, *seed, createdAt),
		Params:    params,
		Seed:      *seed,
		Trades:    records,
		Summary:   summary,
		CreatedAt: createdAt,
	}

	if *outputJSON {
		out := struct {
			RunID    string                    `json:"run_id"`
			Seed     uint64                    `json:"seed"`
			Params   domain.StrategyParams     `json:"params"`
			Summary  *domain.SimulationSummary `json:"summary"`
			Insights []domain.Insight          `json:"insights"`
			Trades   []*domain.TradeRecord     `json:"trades,omitempty"`
		}{run.RunID, run.Seed, params, summary, found, nil}
		if *showLedger {
			out.Trades = records
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatal().Err(err).Msg("failed to encode result")
		}
	} else {
		fmt.Print(reporting.RenderText(params, summary, found))
		fmt.Printf("\nRun ID: %s\nSeed:   %d\n", run.RunID, run.Seed)
		if *showLedger {
			fmt.Println()
			fmt.Print(reporting.RenderTradesCSV(records))
		}
	}

	if *reportDir != "" {
		gen := reporting.NewGenerator(*reportDir)
		if err := gen.Write(gen.Build(run)); err != nil {
			log.Fatal().Err(err).Msg("failed to write report")
		}
		log.Info().Str("dir", *reportDir).Msg("report written")
	}
}
