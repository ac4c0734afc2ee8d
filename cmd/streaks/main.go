// Package main prints the expected maximum losing streak table for a
// sample size, as text, CSV or JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/reporting"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/streak"
)

func main() {
	sampleSize := flag.Int("sample-size", 100, "Number of trades in the sample")
	winRate := flag.Float64("win-rate", 0, "Single win rate to estimate instead of the full table")
	outputJSON := flag.Bool("json", false, "Output as JSON")
	outputCSV := flag.Bool("csv", false, "Output as CSV")
	flag.Parse()

	if *sampleSize < 1 {
		fmt.Fprintln(os.Stderr, "sample-size must be at least 1")
		os.Exit(1)
	}

	if *winRate != 0 {
		if *winRate < 0 || *winRate > 1 {
			fmt.Fprintln(os.Stderr, "win-rate must be in (0, 1]")
			os.Exit(1)
		}
		streakLen := streak.Estimate(*winRate, *sampleSize)
		fmt.Printf("Expected max losing streak for win rate %.0f%% over %d trades: %.2f\n",
			*winRate*100, *sampleSize, streakLen)
		return
	}

	rows := streak.BuildTable(*sampleSize)

	switch {
	case *outputJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode table: %v\n", err)
			os.Exit(1)
		}
	case *outputCSV:
		fmt.Print(reporting.RenderStreakCSV(rows))
	default:
		fmt.Printf("Expected maximum losing streaks over %d trades\n\n", *sampleSize)
		fmt.Printf("%-10s %s\n", "Win Rate", "Expected Max Streak")
		for _, row := range rows {
			if math.IsInf(row.ExpectedMaxStreak, 1) {
				fmt.Printf("%-10s %s\n", fmt.Sprintf("%.0f%%", row.WinRate*100), "inf")
				continue
			}
			fmt.Printf("%-10s %.2f\n", fmt.Sprintf("%.0f%%", row.WinRate*100), row.ExpectedMaxStreak)
		}
	}
}
