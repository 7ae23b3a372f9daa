package main

import (
	"context"
	"time"

	"github.com/plus3/conway/life"
)

// WorkerResult is what one worker reports back.
type WorkerResult struct {
	ID                int
	InitialPopulation int
	Population        int
	Generations       uint64
	Born              uint64
	Died              uint64
	UpdateTime        Stats
}

// runWorker steps its own world until ctx is done or the generation
// limit is hit.
func runWorker(ctx context.Context, id int, start life.CellSet, cfg Config) WorkerResult {
	world := newBenchWorld(start, cfg.Visuals)
	result := WorkerResult{ID: id, InitialPopulation: start.Len()}

	lastFrameTime := time.Now()
Loop:
	for cfg.Generations == 0 || result.Generations < cfg.Generations {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		deltaTime := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		updateStart := time.Now()
		world.once(deltaTime)
		result.UpdateTime.Samples = append(result.UpdateTime.Samples, time.Since(updateStart))
		result.Generations++
	}

	cells, _, totals := world.result()
	result.Population = cells.Set.Len()
	result.Born, result.Died = totals.Born, totals.Died
	result.UpdateTime.Finalize()
	return result
}
