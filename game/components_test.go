package game_test

import (
	"testing"

	"github.com/plus3/conway/game"
	"github.com/plus3/conway/life"
	"github.com/stretchr/testify/assert"
)

func TestCellAt(t *testing.T) {
	tests := []struct {
		wx, wy float64
		want   life.Cell
	}{
		{0, 0, life.C(0, 0)},
		{24.9, -24.9, life.C(0, 0)},
		{25, 0, life.C(1, 0)},
		{-25.1, 0, life.C(-1, 0)},
		{100, 149, life.C(2, 3)},
		{-60, -80, life.C(-1, -2)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, game.CellAt(tt.wx, tt.wy, 50), "(%v, %v)", tt.wx, tt.wy)
	}
}

func TestCellCenterRoundTrip(t *testing.T) {
	for _, c := range []life.Cell{life.C(0, 0), life.C(-3, 7), life.C(12, -40)} {
		center := game.CellCenter(c, 50)
		assert.Equal(t, c, game.CellAt(center.X, center.Y, 50))
	}
}

func TestCameraTransforms(t *testing.T) {
	cam := &game.Camera{X: 100, Y: -50, Zoom: 2, ScreenW: 800, ScreenH: 600}

	wx, wy := cam.ScreenToWorld(400, 300)
	assert.Equal(t, 100.0, wx)
	assert.Equal(t, -50.0, wy)

	wx, wy = cam.ScreenToWorld(500, 200)
	assert.Equal(t, 150.0, wx)
	assert.Equal(t, -100.0, wy)

	sx, sy := cam.WorldToScreen(wx, wy)
	assert.Equal(t, 500.0, sx)
	assert.Equal(t, 200.0, sy)

	assert.True(t, cam.Contains(0, 0))
	assert.False(t, cam.Contains(800, 10))
	assert.False(t, cam.Contains(10, -1))
}

func TestBackgroundUniforms(t *testing.T) {
	cam := &game.Camera{X: 100, Y: -50, Zoom: 0.5}
	u := game.BackgroundUniforms(cam, 50, 1280, 720)

	assert.Equal(t, float32(25), u["Size"])
	assert.Equal(t, []float32{1280, 720}, u["Resolution"])
	assert.Equal(t, []float32{50, -25}, u["Offset"])
}

func TestStatusLine(t *testing.T) {
	line := game.StatusLine(&game.Playback{Generation: 7, Playing: true, LastBorn: 2, LastDied: 1}, 5)
	assert.Equal(t, "generation 7  population 5  +2 -1  playing", line)
}

func TestDefaultSettings(t *testing.T) {
	s := game.DefaultSettings()
	assert.Equal(t, 50.0, s.CellSize)
	assert.Equal(t, 0.15, s.ClickWindow.Seconds())
	assert.True(t, life.StartPattern().Equal(s.StartPattern))
}
