// Package debugui renders Dear ImGui windows from ECS entities.
//
// Spawn entities carrying an ImguiItem and register ImguiSystem on the
// scheduler that runs between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/conway/ecs"
)

// ImguiItem is a component holding a function that draws ImGui widgets.
type ImguiItem struct {
	Render func()
}

// ImguiInputState mirrors whether ImGui wants the mouse or keyboard this
// frame. Game systems consult it before acting on raw input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay toggles every ImguiItem at once.
type Overlay struct {
	Visible bool
}

// RegisterComponents registers the component types this package spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// ImguiSystem refreshes ImguiInputState and queues every item's Render
// to run once the scheduler pass flushes. Nothing is drawn and no input
// is captured while the overlay is hidden.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
	Overlay    ecs.Singleton[Overlay]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	if state == nil {
		return
	}

	if overlay := i.Overlay.Get(); overlay != nil && !overlay.Visible {
		*state = ImguiInputState{}
		return
	}

	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.Items.Iter() {
		if item.ImguiItem.Render != nil {
			frame.Commands.Defer(item.ImguiItem.Render)
		}
	}
}
