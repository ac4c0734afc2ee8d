package simulate

import (
	"context"
	"runtime"
	"sync"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/outcome"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/stats"
)

// BatchResult holds per-run summaries and their distribution for a batch
// of independent simulations of the same strategy specification.
type BatchResult struct {
	Summaries []*domain.SimulationSummary `json:"summaries"`
	Summary   *domain.BatchSummary        `json:"summary"`
}

// RunBatch executes runs independent simulations in parallel. Each run
// gets its own PCG stream derived from the base seed, so results are
// deterministic for a fixed (params, runs, seed) triple regardless of
// scheduling. Runs share no state; only the trade order within a single
// run is sequential.
func RunBatch(ctx context.Context, params domain.StrategyParams, runs int, seed uint64) (*BatchResult, error) {
	if runs < 1 {
		runs = 1
	}

	summaries := make([]*domain.SimulationSummary, runs)

	workers := runtime.NumCPU()
	if workers > runs {
		workers = runs
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				src := outcome.NewBernoulli(params.WinRate, runSeed(seed, i))
				records := Run(params, src)
				summaries[i] = stats.Summarize(params, records)
			}
		}()
	}

	var err error
feed:
	for i := 0; i < runs; i++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}

	return &BatchResult{
		Summaries: summaries,
		Summary:   stats.AggregateBatch(summaries),
	}, nil
}

// runSeed derives the per-run seed for run i from the batch base seed.
// The odd multiplier keeps neighbouring runs on distant PCG streams.
func runSeed(base uint64, i int) uint64 {
	return base + uint64(i)*0x9e3779b97f4a7c15 + 1
}
