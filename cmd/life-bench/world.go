package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/plus3/conway/ecs"
	"github.com/plus3/conway/game"
	"github.com/plus3/conway/life"
)

// StepSystem advances the living set once per scheduler pass.
type StepSystem struct {
	Cells    ecs.Singleton[game.LivingCells]
	Playback ecs.Singleton[game.Playback]
	Totals   ecs.Singleton[Totals]
}

// Totals accumulates births and deaths over a run.
type Totals struct {
	Born uint64
	Died uint64
}

func (s *StepSystem) Execute(frame *ecs.UpdateFrame) {
	playback := s.Playback.Get()
	game.Advance(s.Cells.Get(), playback)

	totals := s.Totals.Get()
	totals.Born += uint64(playback.LastBorn)
	totals.Died += uint64(playback.LastDied)
}

// benchWorld is one worker's private ECS world.
type benchWorld struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
}

// newBenchWorld seeds a world with start. With visuals the full game
// world is used, so each generation also pays for entity sync.
func newBenchWorld(start life.CellSet, visuals bool) *benchWorld {
	var w benchWorld
	if visuals {
		settings := game.DefaultSettings()
		settings.StartPattern = start
		gw := game.NewWorld(settings, nil, nil)
		w.storage, w.scheduler = gw.Storage, gw.Updates
	} else {
		w.storage = ecs.NewStorage(game.NewRegistry())
		ecs.NewSingleton(w.storage, game.LivingCells{Set: start.Clone()})
		ecs.NewSingleton(w.storage, game.Playback{})
		w.scheduler = ecs.NewScheduler(w.storage)
	}
	ecs.NewSingleton(w.storage, Totals{})
	w.scheduler.Register(&StepSystem{})
	return &w
}

func (w *benchWorld) once(dt time.Duration) {
	w.scheduler.Once(dt.Seconds())
}

func (w *benchWorld) result() (cells *game.LivingCells, playback *game.Playback, totals *Totals) {
	w.storage.ReadSingleton(&cells)
	w.storage.ReadSingleton(&playback)
	w.storage.ReadSingleton(&totals)
	return cells, playback, totals
}

// startPattern picks the pattern a worker starts from: the configured
// plaintext file, a Perlin soup, or the demo glider.
func startPattern(cfg Config, worker int) (life.CellSet, error) {
	if cfg.Pattern != "" {
		f, err := os.Open(cfg.Pattern)
		if err != nil {
			return nil, errors.Wrap(err, "open pattern")
		}
		defer f.Close()

		cells, err := life.ParsePlaintext(f)
		if err != nil {
			return nil, errors.Wrapf(err, "parse pattern %s", cfg.Pattern)
		}
		return cells, nil
	}

	if cfg.Soup > 0 {
		opts := life.DefaultSoupOptions(cfg.Seed + int64(worker))
		opts.Width, opts.Height = cfg.Soup, cfg.Soup
		return life.Soup(opts), nil
	}

	return life.StartPattern(), nil
}
