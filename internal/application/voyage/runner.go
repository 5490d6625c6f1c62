package voyage

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// maxSimulatedDays stops runaway voyages; a planned route never comes close.
const maxSimulatedDays = 2000

// Runner drives auto-mode voyages day by day until they finish, throttled so
// a daemon hosting many voyages spreads its work.
type Runner struct {
	engine  *Engine
	limiter *rate.Limiter
}

// NewRunner builds a runner ticking at daysPerSecond. Zero or negative means
// unthrottled.
func NewRunner(engine *Engine, daysPerSecond float64) *Runner {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if daysPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(daysPerSecond), 1)
	}
	return &Runner{engine: engine, limiter: limiter}
}

// RunToCompletion simulates the voyage until a terminal state or context
// cancellation, returning the final state.
func (r *Runner) RunToCompletion(ctx context.Context, id string) (*voyage.State, error) {
	for day := 0; day < maxSimulatedDays; day++ {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		state, err := r.engine.SimulateDay(ctx, id)
		if err != nil {
			return nil, err
		}
		if state.Finished() {
			return state, nil
		}
	}
	return nil, fmt.Errorf("voyage %s did not finish within %d days", id, maxSimulatedDays)
}

// ResumeActive restarts every unfinished auto-mode voyage after a daemon
// restart, running at most maxConcurrent voyages at a time. Manual-mode
// voyages stay parked until their owner steps them.
func (r *Runner) ResumeActive(ctx context.Context, maxConcurrent int) error {
	ids, err := r.engine.deps.Store.ListActive(ctx)
	if err != nil {
		return err
	}
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, id := range ids {
		state, err := r.engine.deps.Store.Load(ctx, id)
		if err != nil {
			return err
		}
		if state.Config.Mode != voyage.ModeAuto {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(id string) {
			defer wg.Done()
			defer func() { <-sem }()
			if _, err := r.RunToCompletion(ctx, id); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("resuming voyage %s: %w", id, err)
				}
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()
	return firstErr
}
