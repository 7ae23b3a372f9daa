package game

import (
	"github.com/plus3/conway/ecs"
	"github.com/plus3/conway/ecs/debugui"
	"github.com/plus3/conway/life"
)

// World is the windowless half of the game: the storage and the update
// scheduler that owns the living set.
type World struct {
	Storage *ecs.Storage
	Updates *ecs.Scheduler
}

// NewRegistry registers every component the game spawns.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[life.Cell](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Sprite](registry)
	debugui.RegisterComponents(registry)
	return registry
}

// NewWorld builds storage with every singleton the systems read, spawns
// the start pattern and registers the update systems. assets may be nil,
// in which case cell sprites have no image.
func NewWorld(settings Settings, input InputSource, assets *Assets) *World {
	storage := ecs.NewStorage(NewRegistry())
	Setup(storage, settings, input, assets)

	updates := ecs.NewScheduler(storage)
	updates.Register(&QuitSystem{})
	updates.Register(&ControlSystem{})
	updates.Register(&CameraControlSystem{})
	updates.Register(&ClickToggleSystem{})
	updates.Register(&AdvanceSystem{})
	updates.Register(&CellSyncSystem{})
	updates.Register(&DiagnosticsSystem{})

	return &World{Storage: storage, Updates: updates}
}

// Setup stores the game's singletons and spawns one visual per cell of
// the start pattern. The camera starts centred on the pattern.
func Setup(storage *ecs.Storage, settings Settings, input InputSource, assets *Assets) {
	cells := settings.StartPattern.Clone()

	ecs.NewSingleton(storage, settings)
	ecs.NewSingleton(storage, Input{Source: input})
	ecs.NewSingleton(storage, LivingCells{Set: cells})
	ecs.NewSingleton(storage, Playback{})
	ecs.NewSingleton(storage, ClickState{})
	ecs.NewSingleton(storage, AppExit{})
	ecs.NewSingleton(storage, Screen{})
	ecs.NewSingleton(storage, debugui.ImguiInputState{})
	ecs.NewSingleton(storage, debugui.Overlay{})

	camera := Camera{Zoom: 1, ScreenW: settings.ScreenWidth, ScreenH: settings.ScreenHeight}
	if lo, hi, ok := cells.Bounds(); ok {
		camera.X = float64(lo.X+hi.X) / 2 * settings.CellSize
		camera.Y = float64(lo.Y+hi.Y) / 2 * settings.CellSize
	}
	ecs.NewSingleton(storage, camera)

	sprite := Sprite{}
	if assets != nil {
		ecs.NewSingleton(storage, *assets)
		sprite.Image = assets.Alive
	}

	index := NewCellIndex()
	for c := range cells {
		index.put(c, storage.Spawn(c, CellCenter(c, settings.CellSize), sprite))
	}
	ecs.NewSingleton(storage, index)
}

// Step runs one update pass.
func (w *World) Step(dt float64) {
	w.Updates.Once(dt)
}

// ExitRequested reports whether a system asked the game to stop.
func (w *World) ExitRequested() bool {
	var exit *AppExit
	return w.Storage.ReadSingleton(&exit) && exit.Requested
}

// LivingCells returns the current living set.
func (w *World) LivingCells() *LivingCells {
	var cells *LivingCells
	w.Storage.ReadSingleton(&cells)
	return cells
}
