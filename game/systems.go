package game

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/conway/ecs"
	"github.com/plus3/conway/ecs/debugui"
	"github.com/plus3/conway/life"
)

// QuitSystem requests shutdown when Q is pressed.
type QuitSystem struct {
	Input   ecs.Singleton[Input]
	AppExit ecs.Singleton[AppExit]
}

func (s *QuitSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	if input == nil || input.Source == nil {
		return
	}
	if input.Source.KeyJustPressed(ebiten.KeyQ) {
		s.AppExit.Get().Requested = true
	}
}

// ControlSystem handles the keys that change playback or replace the
// living set wholesale.
type ControlSystem struct {
	Input    ecs.Singleton[Input]
	Settings ecs.Singleton[Settings]
	Cells    ecs.Singleton[LivingCells]
	Playback ecs.Singleton[Playback]
	Camera   ecs.Singleton[Camera]
	Overlay  ecs.Singleton[debugui.Overlay]

	seed int64
}

func (s *ControlSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	if input == nil || input.Source == nil {
		return
	}
	src := input.Source

	if src.KeyJustPressed(ebiten.KeyF1) {
		if overlay := s.Overlay.Get(); overlay != nil {
			overlay.Visible = !overlay.Visible
		}
	}

	playback := s.Playback.Get()
	if src.KeyJustPressed(ebiten.KeyP) {
		playback.Playing = !playback.Playing
		playback.Elapsed = 0
	}

	cells := s.Cells.Get()
	if src.KeyJustPressed(ebiten.KeyC) {
		ClearCells(cells, playback)
	}

	if src.KeyJustPressed(ebiten.KeyR) {
		s.seed++
		SeedSoup(cells, playback, s.Settings.Get(), s.Camera.Get(), time.Now().UnixNano()+s.seed)
	}
}

// ClearCells empties the living set and resets the generation counter.
func ClearCells(cells *LivingCells, playback *Playback) {
	cells.Set = life.CellSet{}
	cells.Dirty = true
	playback.Generation = 0
	playback.LastBorn, playback.LastDied = 0, 0
}

// SeedSoup replaces the living set with a Perlin soup centred on the
// camera, or on the origin when there is no camera.
func SeedSoup(cells *LivingCells, playback *Playback, settings *Settings, camera *Camera, seed int64) {
	opts := life.DefaultSoupOptions(seed)
	opts.Width, opts.Height = settings.SoupSize, settings.SoupSize

	var centre life.Cell
	if camera != nil {
		centre = CellAt(camera.X, camera.Y, settings.CellSize)
	}
	opts.Origin = life.Cell{X: centre.X - opts.Width/2, Y: centre.Y - opts.Height/2}

	cells.Set = life.Soup(opts)
	cells.Dirty = true
	playback.Generation = 0
	playback.LastBorn, playback.LastDied = cells.Set.Len(), 0
}

// CameraControlSystem pans with a left-drag and zooms about the cursor
// with the wheel.
type CameraControlSystem struct {
	Input           ecs.Singleton[Input]
	Camera          ecs.Singleton[Camera]
	Settings        ecs.Singleton[Settings]
	ImguiInputState ecs.Singleton[debugui.ImguiInputState]

	dragging   bool
	lastMouseX int
	lastMouseY int
}

func (s *CameraControlSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	camera := s.Camera.Get()
	if input == nil || input.Source == nil || camera == nil {
		return
	}
	src := input.Source

	if imguiInput := s.ImguiInputState.Get(); imguiInput != nil && imguiInput.WantCaptureMouse {
		s.dragging = false
		return
	}

	mx, my := src.CursorPosition()
	if src.MouseJustPressed(ebiten.MouseButtonLeft) && camera.Contains(mx, my) {
		s.dragging = true
		s.lastMouseX, s.lastMouseY = mx, my
	}
	if !src.MousePressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}

	if s.dragging {
		camera.X -= float64(mx-s.lastMouseX) / camera.Zoom
		camera.Y -= float64(my-s.lastMouseY) / camera.Zoom
		s.lastMouseX, s.lastMouseY = mx, my
	}

	if _, dy := src.Wheel(); dy != 0 {
		settings := s.Settings.Get()
		beforeX, beforeY := camera.ScreenToWorld(mx, my)

		zoom := camera.Zoom * math.Pow(settings.ZoomStep, dy)
		camera.Zoom = min(max(zoom, settings.MinZoom), settings.MaxZoom)

		afterX, afterY := camera.ScreenToWorld(mx, my)
		camera.X += beforeX - afterX
		camera.Y += beforeY - afterY
	}
}

// ClickToggleSystem toggles the cell under the cursor when the left
// button is released within Settings.ClickWindow of being pressed.
// Anything longer is the end of a drag.
type ClickToggleSystem struct {
	Input           ecs.Singleton[Input]
	Camera          ecs.Singleton[Camera]
	Settings        ecs.Singleton[Settings]
	Cells           ecs.Singleton[LivingCells]
	Click           ecs.Singleton[ClickState]
	ImguiInputState ecs.Singleton[debugui.ImguiInputState]
}

func (s *ClickToggleSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	if input == nil || input.Source == nil {
		return
	}
	src := input.Source
	click := s.Click.Get()

	if click.Pressed {
		click.Elapsed += frame.DeltaTime
	}

	if src.MouseJustPressed(ebiten.MouseButtonLeft) {
		click.Pressed = true
		click.Elapsed = 0
		return
	}

	if !src.MouseJustReleased(ebiten.MouseButtonLeft) {
		return
	}

	wasClick := click.Pressed && click.Elapsed <= s.Settings.Get().ClickWindow.Seconds()
	*click = ClickState{}
	if !wasClick {
		return
	}

	if imguiInput := s.ImguiInputState.Get(); imguiInput != nil && imguiInput.WantCaptureMouse {
		return
	}
	camera := s.Camera.Get()
	if camera == nil {
		return
	}
	mx, my := src.CursorPosition()
	if !camera.Contains(mx, my) {
		return
	}

	wx, wy := camera.ScreenToWorld(mx, my)
	cells := s.Cells.Get()
	cells.Set.Toggle(CellAt(wx, wy, s.Settings.Get().CellSize))
	cells.Dirty = true
}

// AdvanceSystem steps the simulation once per Space press, and once per
// Settings.PlayInterval while playing.
type AdvanceSystem struct {
	Input    ecs.Singleton[Input]
	Settings ecs.Singleton[Settings]
	Cells    ecs.Singleton[LivingCells]
	Playback ecs.Singleton[Playback]
}

func (s *AdvanceSystem) Execute(frame *ecs.UpdateFrame) {
	cells := s.Cells.Get()
	playback := s.Playback.Get()

	if input := s.Input.Get(); input != nil && input.Source != nil && input.Source.KeyJustPressed(ebiten.KeySpace) {
		Advance(cells, playback)
	}

	if !playback.Playing {
		return
	}

	interval := s.Settings.Get().PlayInterval.Seconds()
	playback.Elapsed += frame.DeltaTime
	if playback.Elapsed >= interval {
		Advance(cells, playback)
		playback.Elapsed -= interval
		// Never queue up more than one generation after a stall.
		if playback.Elapsed >= interval {
			playback.Elapsed = 0
		}
	}
}

// Advance replaces the living set with its next generation.
func Advance(cells *LivingCells, playback *Playback) {
	next := life.Step(cells.Set)
	born, died := life.Diff(cells.Set, next)

	cells.Set = next
	cells.Dirty = true
	playback.Generation++
	playback.LastBorn, playback.LastDied = len(born), len(died)
}

// CellSyncSystem keeps exactly one cell entity per living coordinate.
// Entities of cells that died are deleted, new cells get an entity and
// survivors are left alone.
type CellSyncSystem struct {
	Visuals ecs.Query[struct {
		ecs.EntityId
		*life.Cell
	}]
	Cells    ecs.Singleton[LivingCells]
	Index    ecs.Singleton[CellIndex]
	Settings ecs.Singleton[Settings]
	Assets   ecs.Singleton[Assets]
}

func (s *CellSyncSystem) Execute(frame *ecs.UpdateFrame) {
	cells := s.Cells.Get()
	if !cells.Dirty {
		return
	}
	cells.Dirty = false

	index := *s.Index.Get()
	for visual := range s.Visuals.Iter() {
		if !cells.Set.Contains(*visual.Cell) {
			frame.Commands.Delete(visual.EntityId)
			index.remove(*visual.Cell)
		}
	}

	sprite := Sprite{}
	if assets := s.Assets.Get(); assets != nil {
		sprite.Image = assets.Alive
	}
	cellSize := s.Settings.Get().CellSize

	for c := range cells.Set {
		if index.Has(c) {
			continue
		}
		frame.Commands.Defer(func() {
			id := frame.Storage.Spawn(c, CellCenter(c, cellSize), sprite)
			index.put(c, id)
		})
	}
}

// DiagnosticsSystem periodically logs frame rate and population when
// Settings.LogDiagnostics is on.
type DiagnosticsSystem struct {
	Settings ecs.Singleton[Settings]
	Cells    ecs.Singleton[LivingCells]
	Playback ecs.Singleton[Playback]

	frames      int
	windowStart time.Time
}

func (s *DiagnosticsSystem) Execute(frame *ecs.UpdateFrame) {
	settings := s.Settings.Get()
	if !settings.LogDiagnostics {
		return
	}

	now := time.Now()
	if s.windowStart.IsZero() {
		s.windowStart = now
	}
	s.frames++

	elapsed := now.Sub(s.windowStart)
	if elapsed < settings.DiagnosticsPeriod {
		return
	}

	stats := frame.Storage.CollectStats()
	log.Printf("fps=%.1f generation=%d population=%d entities=%d",
		float64(s.frames)/elapsed.Seconds(),
		s.Playback.Get().Generation,
		s.Cells.Get().Set.Len(),
		stats.TotalEntityCount)

	s.frames = 0
	s.windowStart = now
}
