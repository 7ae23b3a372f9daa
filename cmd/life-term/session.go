package main

import (
	"strings"

	"github.com/plus3/conway/game"
	"github.com/plus3/conway/life"
)

// session owns the world shown in the terminal. It is only touched from
// the gocui main loop.
type session struct {
	world    *game.World
	settings game.Settings
	seed     int64
}

func newSession(start life.CellSet, seed int64) *session {
	settings := game.DefaultSettings()
	settings.StartPattern = start
	return &session{
		world:    game.NewWorld(settings, nil, nil),
		settings: settings,
		seed:     seed,
	}
}

func (s *session) singletons() (*game.LivingCells, *game.Playback) {
	var (
		cells    *game.LivingCells
		playback *game.Playback
	)
	s.world.Storage.ReadSingleton(&cells)
	s.world.Storage.ReadSingleton(&playback)
	return cells, playback
}

// sync runs one update pass so entities follow the living set.
func (s *session) sync() {
	s.world.Step(0)
}

func (s *session) step() {
	game.Advance(s.singletons())
	s.sync()
}

func (s *session) toggle(c life.Cell) {
	cells, _ := s.singletons()
	cells.Set.Toggle(c)
	cells.Dirty = true
	s.sync()
}

func (s *session) clear() {
	game.ClearCells(s.singletons())
	s.sync()
}

// soup fills a width x height field starting at the origin.
func (s *session) soup(width, height int) {
	cells, playback := s.singletons()
	settings := s.settings
	settings.SoupSize = int32(min(width, height))
	camera := &game.Camera{
		X: float64(width/2) * settings.CellSize,
		Y: float64(height/2) * settings.CellSize,
	}

	s.seed++
	game.SeedSoup(cells, playback, &settings, camera, s.seed)
	s.sync()
}

// field renders the cells in [0,width) x [0,height) one rune per cell.
func (s *session) field(width, height int, live, dead string) string {
	cells, _ := s.singletons()

	var b strings.Builder
	for y := 0; y < height; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			if cells.Set.Contains(life.C(int32(x), int32(y))) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

func (s *session) population() int {
	cells, _ := s.singletons()
	return cells.Set.Len()
}

func (s *session) generation() uint64 {
	_, playback := s.singletons()
	return playback.Generation
}
