package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/conway/ecs"
	"github.com/plus3/conway/life"
)

// Transform is the world-pixel centre of an entity. y grows downward.
type Transform struct {
	X, Y float64
}

type Sprite struct {
	Image *ebiten.Image
}

// LivingCells holds the living set. Dirty is raised by anything that
// changes Set and cleared once the cell visuals have been reconciled.
type LivingCells struct {
	Set   life.CellSet
	Dirty bool
}

// CellIndex maps a living coordinate to the entity drawing it.
type CellIndex struct {
	entities *intmap.Map[int64, ecs.EntityId]
}

func NewCellIndex() CellIndex {
	return CellIndex{entities: intmap.New[int64, ecs.EntityId](256)}
}

func (ix CellIndex) Lookup(c life.Cell) (ecs.EntityId, bool) {
	return ix.entities.Get(c.Pack())
}

func (ix CellIndex) Has(c life.Cell) bool {
	return ix.entities.Has(c.Pack())
}

func (ix CellIndex) Len() int {
	return ix.entities.Len()
}

func (ix CellIndex) put(c life.Cell, id ecs.EntityId) {
	ix.entities.Put(c.Pack(), id)
}

func (ix CellIndex) remove(c life.Cell) {
	ix.entities.Del(c.Pack())
}

// Cells returns every indexed coordinate.
func (ix CellIndex) Cells() life.CellSet {
	cells := make(life.CellSet, ix.entities.Len())
	ix.entities.ForEach(func(key int64, _ ecs.EntityId) bool {
		cells.Add(life.Unpack(key))
		return true
	})
	return cells
}

// Camera looks at (X, Y) in world pixels, magnified by Zoom.
type Camera struct {
	X, Y    float64
	Zoom    float64
	ScreenW int
	ScreenH int
}

// ScreenToWorld converts a screen pixel into world pixels.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := c.X + (float64(sx)-float64(c.ScreenW)/2)/c.Zoom
	wy := c.Y + (float64(sy)-float64(c.ScreenH)/2)/c.Zoom
	return wx, wy
}

// WorldToScreen is the inverse of ScreenToWorld.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (wy-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// Contains reports whether the screen pixel lies inside the viewport.
func (c *Camera) Contains(sx, sy int) bool {
	return sx >= 0 && sy >= 0 && sx < c.ScreenW && sy < c.ScreenH
}

// CellAt returns the cell whose square covers the world pixel.
func CellAt(wx, wy, cellSize float64) life.Cell {
	return life.Cell{
		X: int32(math.Floor(wx/cellSize + 0.5)),
		Y: int32(math.Floor(wy/cellSize + 0.5)),
	}
}

// CellCenter returns the world-pixel centre of c.
func CellCenter(c life.Cell, cellSize float64) Transform {
	return Transform{X: float64(c.X) * cellSize, Y: float64(c.Y) * cellSize}
}

// ClickState tracks a left-button press that may become a click.
type ClickState struct {
	Pressed bool
	Elapsed float64
}

// Playback is the simulation clock.
type Playback struct {
	Generation uint64
	Playing    bool
	// Elapsed accumulates delta time toward the next generation while
	// playing.
	Elapsed float64

	LastBorn int
	LastDied int
}

// AppExit is set when the application should stop after this frame.
type AppExit struct {
	Requested bool
}

// Input exposes the frame's input to systems.
type Input struct {
	Source InputSource
}

// Screen is the render target of the current Draw.
type Screen struct {
	Image *ebiten.Image
}
