package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/plus3/conway/life"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"

	statusWidth = 28
)

type keyBinding struct {
	key      any
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type terminalUI struct {
	g        *gocui.Gui
	session  *session
	bindings []keyBinding
	interval time.Duration

	// stop is non-nil while continuous play is running.
	stop chan struct{}

	liveFiller string
	deadFiller string
}

func newTerminalUI(s *session, interval time.Duration) (*terminalUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "init terminal")
	}
	g.Mouse = true

	t := &terminalUI{
		g:          g,
		session:    s,
		interval:   interval,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "·",
	}
	t.bindings = []keyBinding{
		{gocui.KeyCtrlC, "^C", "quit", t.cmdQuit, ""},
		{'q', "Q", "quit", t.cmdQuit, ""},
		{'n', "N", "step", t.cmdStep, ""},
		{'r', "R", "run/stop", t.cmdRun, ""},
		{'c', "C", "clear", t.cmdClear, ""},
		{'w', "W", "soup", t.cmdSoup, ""},
		{gocui.MouseLeft, "MOUSE", "toggle cell", t.cmdToggle, fieldView},
	}

	g.SetManagerFunc(t.layout)
	for _, kb := range t.bindings {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, errors.Wrapf(err, "bind %s", kb.name)
		}
	}
	return t, nil
}

func (t *terminalUI) run() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "main loop")
	}
	return nil
}

func (t *terminalUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(statusView, 0, 0, statusWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}

	if v, err := g.SetView(fieldView, statusWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
	}

	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		fmt.Fprintln(v, t.helpLine())
	}

	t.render(g)
	return nil
}

func (t *terminalUI) helpLine() string {
	var b bytes.Buffer
	b.WriteString(" ")
	for i, k := range t.bindings {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *terminalUI) render(g *gocui.Gui) {
	if v, err := g.View(fieldView); err == nil {
		w, h := v.Size()
		v.Clear()
		fmt.Fprint(v, t.session.field(w, h, t.liveFiller, t.deadFiller))
	}

	if v, err := g.View(statusView); err == nil {
		mode := aurora.Blue("paused").String()
		if t.stop != nil {
			mode = aurora.Cyan("running").String()
		}
		v.Clear()
		fmt.Fprintln(v, prop("Generation", "%d", t.session.generation()))
		fmt.Fprintln(v, prop("Population", "%d", t.session.population()))
		fmt.Fprintln(v, prop("Interval", "%v", t.interval))
		fmt.Fprintln(v, prop("Mode", "%s", mode))
	}
}

func prop(name, format string, values ...any) string {
	return " " + aurora.Green(name).String() + ": " + fmt.Sprintf(format, values...)
}

func (t *terminalUI) fieldSize() (int, int) {
	v, err := t.g.View(fieldView)
	if err != nil {
		return 0, 0
	}
	return v.Size()
}

func (t *terminalUI) cmdQuit(_ *gocui.View) error {
	t.stopRunning()
	return gocui.ErrQuit
}

func (t *terminalUI) cmdStep(_ *gocui.View) error {
	t.session.step()
	return nil
}

func (t *terminalUI) cmdRun(_ *gocui.View) error {
	if t.stop != nil {
		t.stopRunning()
		return nil
	}

	stop := make(chan struct{})
	t.stop = stop
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.g.Update(func(g *gocui.Gui) error {
					t.session.step()
					t.render(g)
					return nil
				})
			}
		}
	}()
	return nil
}

func (t *terminalUI) stopRunning() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *terminalUI) cmdClear(_ *gocui.View) error {
	t.session.clear()
	return nil
}

func (t *terminalUI) cmdSoup(_ *gocui.View) error {
	t.session.soup(t.fieldSize())
	return nil
}

func (t *terminalUI) cmdToggle(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.session.toggle(life.C(int32(cx), int32(cy)))
	return nil
}
