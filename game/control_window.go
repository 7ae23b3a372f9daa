package game

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/conway/ecs"
	"github.com/plus3/conway/ecs/debugui"
)

// ControlWindow returns an ImGui window that mirrors the keyboard
// controls with buttons.
func ControlWindow(storage *ecs.Storage) debugui.ImguiItem {
	return debugui.ImguiItem{
		Render: func() {
			var (
				cells    *LivingCells
				playback *Playback
				settings *Settings
				camera   *Camera
			)
			if !storage.ReadSingleton(&cells) || !storage.ReadSingleton(&playback) || !storage.ReadSingleton(&settings) {
				return
			}
			storage.ReadSingleton(&camera)

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(260, 190), imgui.CondOnce)
			if !imgui.BeginV("Life", nil, 0) {
				imgui.End()
				return
			}

			imgui.Text(StatusLine(playback, cells.Set.Len()))
			if camera != nil {
				imgui.Text(fmt.Sprintf("Camera: (%.0f, %.0f) x%.2f", camera.X, camera.Y, camera.Zoom))
			}
			imgui.Separator()

			label := "Play"
			if playback.Playing {
				label = "Pause"
			}
			if imgui.Button(label) {
				playback.Playing = !playback.Playing
				playback.Elapsed = 0
			}
			imgui.SameLine()
			if imgui.Button("Step") {
				Advance(cells, playback)
			}
			imgui.SameLine()
			if imgui.Button("Clear") {
				ClearCells(cells, playback)
			}
			imgui.SameLine()
			if imgui.Button("Soup") {
				SeedSoup(cells, playback, settings, camera, time.Now().UnixNano())
			}

			imgui.Separator()
			imgui.Checkbox("Log diagnostics", &settings.LogDiagnostics)

			imgui.End()
		},
	}
}
