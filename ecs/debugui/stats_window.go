package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/conway/ecs"
)

// StatsWindow shows frame timing, storage layout and per-system timings
// for one or more schedulers.
type StatsWindow struct {
	storage    *ecs.Storage
	schedulers []NamedScheduler

	frameHistory []float32
	frameIndex   int
	timer        *FrameTimer
}

// NamedScheduler labels a scheduler in the stats window.
type NamedScheduler struct {
	Name      string
	Scheduler *ecs.Scheduler
}

func NewStatsWindow(storage *ecs.Storage, historyFrames int, schedulers ...NamedScheduler) *StatsWindow {
	return &StatsWindow{
		storage:      storage,
		schedulers:   schedulers,
		frameHistory: make([]float32, max(historyFrames, 1)),
		timer:        NewFrameTimer(),
	}
}

// Item returns the component that draws this window.
func (w *StatsWindow) Item() ImguiItem {
	return ImguiItem{Render: w.Render}
}

// AverageFrameTime returns the mean of the recorded frame times in ms.
func (w *StatsWindow) AverageFrameTime() float32 {
	var sum float32
	for _, ft := range w.frameHistory {
		sum += ft
	}
	return sum / float32(len(w.frameHistory))
}

func (w *StatsWindow) record(deltaTime float32) {
	w.frameHistory[w.frameIndex] = deltaTime * 1000
	w.frameIndex = (w.frameIndex + 1) % len(w.frameHistory)
}

func (w *StatsWindow) Render() {
	w.record(w.timer.GetDeltaTime())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 320), imgui.CondOnce)
	if !imgui.BeginV("ECS Stats", nil, 0) {
		imgui.End()
		return
	}

	stats := w.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	avg := w.AverageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &w.frameHistory[0], int32(len(w.frameHistory)))

	for _, named := range w.schedulers {
		if imgui.TreeNodeStr(named.Name + " systems") {
			renderSchedulerTable(named.Name, named.Scheduler.GetStats())
			imgui.TreePop()
		}
	}

	if imgui.TreeNodeStr("Archetypes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entities")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprint(arch.ComponentTypes))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderSchedulerTable(id string, stats *ecs.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id+"SystemsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, sys := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(sys.Name)
		imgui.TableNextColumn()
		imgui.Text(formatDuration(sys.LastDuration))
		imgui.TableNextColumn()
		imgui.Text(formatDuration(sys.AvgDuration))
		imgui.TableNextColumn()
		imgui.Text(formatDuration(sys.MaxDuration))
	}
	imgui.EndTable()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

// FrameTimer measures wall time between successive calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{lastFrameTime: time.Now()}
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
