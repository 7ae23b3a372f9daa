package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/conway/ecs"
	"github.com/plus3/conway/life"
)

var clearColor = color.RGBA{20, 22, 26, 255}

// BackgroundSystem fills the screen with the dead-cell tile, aligned to
// cell boundaries, using the background shader.
type BackgroundSystem struct {
	Screen   ecs.Singleton[Screen]
	Camera   ecs.Singleton[Camera]
	Assets   ecs.Singleton[Assets]
	Settings ecs.Singleton[Settings]

	vertices [4]ebiten.Vertex
	indices  [6]uint16
}

func (s *BackgroundSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	if screen == nil || screen.Image == nil {
		return
	}
	screen.Image.Fill(clearColor)

	camera := s.Camera.Get()
	assets := s.Assets.Get()
	if camera == nil || assets == nil || assets.Background == nil || assets.Dead == nil {
		return
	}

	w, h := screen.Image.Bounds().Dx(), screen.Image.Bounds().Dy()
	tw, th := assets.Dead.Bounds().Dx(), assets.Dead.Bounds().Dy()
	s.fillQuad(float32(w), float32(h), float32(tw), float32(th))

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = assets.Dead
	op.Uniforms = BackgroundUniforms(camera, s.Settings.Get().CellSize, w, h)
	screen.Image.DrawTrianglesShader(s.vertices[:], s.indices[:], assets.Background, op)
}

func (s *BackgroundSystem) fillQuad(w, h, tw, th float32) {
	s.vertices = [4]ebiten.Vertex{
		{DstX: 0, DstY: 0, SrcX: 0, SrcY: 0},
		{DstX: w, DstY: 0, SrcX: tw, SrcY: 0},
		{DstX: 0, DstY: h, SrcX: 0, SrcY: th},
		{DstX: w, DstY: h, SrcX: tw, SrcY: th},
	}
	for i := range s.vertices {
		s.vertices[i].ColorR = 1
		s.vertices[i].ColorG = 1
		s.vertices[i].ColorB = 1
		s.vertices[i].ColorA = 1
	}
	s.indices = [6]uint16{0, 1, 2, 1, 2, 3}
}

// BackgroundUniforms computes the shader uniforms for a camera.
func BackgroundUniforms(camera *Camera, cellSize float64, screenW, screenH int) map[string]any {
	return map[string]any{
		"Size":       float32(cellSize * camera.Zoom),
		"Resolution": []float32{float32(screenW), float32(screenH)},
		"Offset":     []float32{float32(camera.X * camera.Zoom), float32(camera.Y * camera.Zoom)},
	}
}

// CellRenderSystem draws every cell sprite through the camera.
type CellRenderSystem struct {
	Visuals ecs.Query[struct {
		*Transform
		*Sprite
	}]
	Screen   ecs.Singleton[Screen]
	Camera   ecs.Singleton[Camera]
	Settings ecs.Singleton[Settings]
}

func (s *CellRenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	camera := s.Camera.Get()
	if screen == nil || screen.Image == nil || camera == nil {
		return
	}

	size := s.Settings.Get().CellSize * camera.Zoom
	half := size / 2
	sw, sh := float64(camera.ScreenW), float64(camera.ScreenH)

	op := &ebiten.DrawImageOptions{}
	for visual := range s.Visuals.Iter() {
		img := visual.Sprite.Image
		if img == nil {
			continue
		}

		x, y := camera.WorldToScreen(visual.Transform.X, visual.Transform.Y)
		if x+half < 0 || y+half < 0 || x-half > sw || y-half > sh {
			continue
		}

		op.GeoM.Reset()
		op.GeoM.Scale(size/float64(img.Bounds().Dx()), size/float64(img.Bounds().Dy()))
		op.GeoM.Translate(x-half, y-half)
		screen.Image.DrawImage(img, op)
	}
}

// HudSystem prints generation, population and the key bindings.
type HudSystem struct {
	Screen   ecs.Singleton[Screen]
	Cells    ecs.Singleton[LivingCells]
	Playback ecs.Singleton[Playback]
	Camera   ecs.Singleton[Camera]
	Settings ecs.Singleton[Settings]
}

func (s *HudSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	if screen == nil || screen.Image == nil {
		return
	}

	var centre life.Cell
	if camera := s.Camera.Get(); camera != nil {
		centre = CellAt(camera.X, camera.Y, s.Settings.Get().CellSize)
	}

	status := StatusLine(s.Playback.Get(), s.Cells.Get().Set.Len())
	ebitenutil.DebugPrintAt(screen.Image, status, 8, 8)
	ebitenutil.DebugPrintAt(screen.Image, fmt.Sprintf("centre %v", centre), 8, 24)
	ebitenutil.DebugPrintAt(screen.Image, "space step  p play  click toggle  drag pan  wheel zoom  c clear  r soup  f1 debug  q quit", 8, screen.Image.Bounds().Dy()-20)
}

// StatusLine summarizes the simulation state in one line.
func StatusLine(playback *Playback, population int) string {
	state := "paused"
	if playback.Playing {
		state = "playing"
	}
	return fmt.Sprintf("generation %d  population %d  +%d -%d  %s",
		playback.Generation, population, playback.LastBorn, playback.LastDied, state)
}
