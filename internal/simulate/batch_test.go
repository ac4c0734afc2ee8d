package simulate

import (
	"context"
	"testing"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

func TestRunBatch_ProducesAllRuns(t *testing.T) {
	p := params(0.5, 50)

	result, err := RunBatch(context.Background(), p, 32, 42)
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}

	if len(result.Summaries) != 32 {
		t.Fatalf("summaries: got %d, want 32", len(result.Summaries))
	}
	if result.Summary.Runs != 32 {
		t.Errorf("batch summary runs: got %d, want 32", result.Summary.Runs)
	}
	for i, s := range result.Summaries {
		if s == nil {
			t.Fatalf("summary %d is nil", i)
		}
		if s.Trades != p.TradeCount {
			t.Errorf("summary %d: trades %d, want %d", i, s.Trades, p.TradeCount)
		}
	}
}

func TestRunBatch_DeterministicForSeed(t *testing.T) {
	p := params(0.4, 100)

	a, err := RunBatch(context.Background(), p, 16, 7)
	if err != nil {
		t.Fatalf("first batch failed: %v", err)
	}
	b, err := RunBatch(context.Background(), p, 16, 7)
	if err != nil {
		t.Fatalf("second batch failed: %v", err)
	}

	for i := range a.Summaries {
		if *a.Summaries[i] != *b.Summaries[i] {
			t.Fatalf("run %d differs between identical batches", i)
		}
	}
	if *a.Summary != *b.Summary {
		t.Errorf("batch summaries differ: %+v vs %+v", a.Summary, b.Summary)
	}
}

func TestRunBatch_RunsAreIndependent(t *testing.T) {
	p := params(0.5, 200)

	result, err := RunBatch(context.Background(), p, 8, 1)
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}

	// With distinct per-run streams, 8 runs of 200 trades should not all
	// land on the same final balance.
	first := result.Summaries[0].FinalBalance
	allSame := true
	for _, s := range result.Summaries[1:] {
		if s.FinalBalance != first {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("all runs produced identical final balances; per-run seeds look broken")
	}
}

func TestRunBatch_CancelledContext(t *testing.T) {
	p := params(0.5, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, p, 1000, 3)
	if err == nil {
		t.Skip("batch finished before cancellation was observed")
	}
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunBatch_MinimumOneRun(t *testing.T) {
	p := domain.StrategyParams{AccountBalance: 1000, WinRate: 0.5, RewardRisk: 1, RiskPercent: 0.02, TradeCount: 10}

	result, err := RunBatch(context.Background(), p, 0, 9)
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}
	if len(result.Summaries) != 1 {
		t.Errorf("expected runs floor of 1, got %d", len(result.Summaries))
	}
}
