package game

import (
	"time"

	"github.com/plus3/conway/life"
)

// Settings are the compiled-in knobs of the demo. They are stored as a
// singleton so every system reads the same values.
type Settings struct {
	Title        string
	ScreenWidth  int
	ScreenHeight int

	// CellSize is the edge length of one cell in world pixels.
	CellSize float64
	// ClickWindow is the longest press-to-release span still treated as
	// a click rather than the end of a drag.
	ClickWindow time.Duration
	// PlayInterval is the time between generations while playing.
	PlayInterval time.Duration

	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64

	StartPattern life.CellSet
	SoupSize     int32

	LogDiagnostics    bool
	DiagnosticsPeriod time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Title:             "Conway's Game of Life",
		ScreenWidth:       1280,
		ScreenHeight:      720,
		CellSize:          50,
		ClickWindow:       150 * time.Millisecond,
		PlayInterval:      100 * time.Millisecond,
		MinZoom:           0.1,
		MaxZoom:           4,
		ZoomStep:          1.1,
		StartPattern:      life.StartPattern(),
		SoupSize:          64,
		LogDiagnostics:    false,
		DiagnosticsPeriod: 5 * time.Second,
	}
}
