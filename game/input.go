package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource is the per-frame view of keyboard and mouse that systems
// consume. "Just" methods are edge-triggered: true only on the frame the
// transition happened.
type InputSource interface {
	KeyJustPressed(key ebiten.Key) bool
	MouseJustPressed(button ebiten.MouseButton) bool
	MouseJustReleased(button ebiten.MouseButton) bool
	MousePressed(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)
	Wheel() (dx, dy float64)
}

// EbitenInput reads input from the running ebiten game.
type EbitenInput struct{}

func (EbitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenInput) MouseJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (EbitenInput) MouseJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

func (EbitenInput) MousePressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}
