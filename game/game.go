package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/plus3/conway/ecs"
	"github.com/plus3/conway/ecs/debugui"
	debugui_ebiten "github.com/plus3/conway/ecs/debugui/ebiten"
)

// Game implements ebiten.Game on top of a World. Update runs the update
// scheduler inside an ImGui frame; Draw runs the render scheduler and
// then the ImGui overlay.
type Game struct {
	*World
	Renders *ecs.Scheduler

	imgui *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

// New opens the window, loads the embedded assets and builds the world.
func New(settings Settings) (*Game, error) {
	backend := debugui_ebiten.NewImguiBackend(settings.Title, settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	assets, err := LoadAssets(EmbeddedAssets())
	if err != nil {
		return nil, errors.Wrap(err, "load assets")
	}

	world := NewWorld(settings, EbitenInput{}, assets)
	world.Updates.Register(&debugui.ImguiSystem{})

	renders := ecs.NewScheduler(world.Storage)
	renders.Register(&BackgroundSystem{})
	renders.Register(&CellRenderSystem{})
	renders.Register(&HudSystem{})

	storage := world.Storage
	storage.Spawn(debugui.NewStatsWindow(storage, 120,
		debugui.NamedScheduler{Name: "Update", Scheduler: world.Updates},
		debugui.NamedScheduler{Name: "Render", Scheduler: renders},
	).Item())
	storage.Spawn(ControlWindow(storage))

	return &Game{
		World:   world,
		Renders: renders,
		imgui:   ecs.NewSingleton(storage, *backend),
	}, nil
}

func (g *Game) Update() error {
	backend := g.imgui.Get()
	backend.BeginFrame()
	g.Step(1.0 / 60.0)
	backend.EndFrame()

	if g.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	var target *Screen
	if g.Storage.ReadSingleton(&target) {
		target.Image = screen
	}
	g.Renders.Once(0)
	if target != nil {
		target.Image = nil
	}

	g.imgui.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Get().Layout(outsideWidth, outsideHeight)

	var camera *Camera
	if g.Storage.ReadSingleton(&camera) {
		camera.ScreenW = outsideWidth
		camera.ScreenH = outsideHeight
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the game quits.
func Run(settings Settings) error {
	g, err := New(settings)
	if err != nil {
		return err
	}
	return errors.Wrap(ebiten.RunGame(g), "run game")
}
