// Package outcome generates Bernoulli win/loss sequences for the simulator.
package outcome

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// Source supplies independent Bernoulli trial outcomes, one per Draw call.
// Implementations carry no memory beyond their own random state; the
// simulator treats every draw as independent.
type Source interface {
	// Draw returns true for a winning trade.
	Draw() bool
}

// Bernoulli draws wins with a fixed probability from a seeded PCG source.
// Same seed and same win rate produce an identical sequence.
type Bernoulli struct {
	dist distuv.Bernoulli
}

// NewBernoulli creates a seeded Bernoulli source with the given win rate.
// The win rate is assumed to be in (0, 1]; validation is the caller's job.
func NewBernoulli(winRate float64, seed uint64) *Bernoulli {
	return &Bernoulli{
		dist: distuv.Bernoulli{
			P:   winRate,
			Src: rand.NewPCG(seed, seed),
		},
	}
}

// Draw returns the next Bernoulli trial outcome.
func (b *Bernoulli) Draw() bool {
	return b.dist.Rand() == 1
}

// Scripted replays a fixed outcome sequence. Draws past the end of the
// script return losses.
type Scripted struct {
	outcomes []domain.Outcome
	next     int
}

// NewScripted creates a source that replays the given outcomes in order.
func NewScripted(outcomes []domain.Outcome) *Scripted {
	return &Scripted{outcomes: outcomes}
}

// Draw returns the next scripted outcome.
func (s *Scripted) Draw() bool {
	if s.next >= len(s.outcomes) {
		return false
	}
	out := s.outcomes[s.next]
	s.next++
	return out == domain.OutcomeWin
}

// Draw collects n outcomes from a source.
func Draw(src Source, n int) []domain.Outcome {
	outcomes := make([]domain.Outcome, n)
	for i := range outcomes {
		if src.Draw() {
			outcomes[i] = domain.OutcomeWin
		} else {
			outcomes[i] = domain.OutcomeLoss
		}
	}
	return outcomes
}

var (
	_ Source = (*Bernoulli)(nil)
	_ Source = (*Scripted)(nil)
)
