package main

import (
	"fmt"
	"runtime"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/geom"
	glbackend "github.com/hubastard/groveui/engine/gfx/gl"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/ui"
)

// ------- Debug overlay, toggled with F1 -------
type LayerDebug struct {
	rend          *glbackend.RendererGL
	frameDuration float32
	tick          int
	hidden        bool
	lines         []debugLine
}

type debugLine struct {
	text   string
	header bool
}

func (l *LayerDebug) OnAttach(e *core.Engine) {}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnInput(e *core.Engine, ev input.Event) bool {
	if keyDown(ev, input.KeyF1) {
		l.hidden = !l.hidden
		return true
	}
	return false
}

func (l *LayerDebug) header(s string) { l.lines = append(l.lines, debugLine{s, true}) }
func (l *LayerDebug) linef(format string, args ...any) {
	l.lines = append(l.lines, debugLine{"  " + fmt.Sprintf(format, args...), false})
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	if l.hidden {
		return
	}
	in, u := e.Input, e.UI
	l.lines = l.lines[:0]

	l.header(fmt.Sprintf("Frame: %d", l.tick))
	if l.frameDuration > 0 {
		l.linef("%2.3f ms (%.2f FPS)", l.frameDuration, 1000.0/l.frameDuration)
	}
	if l.rend != nil {
		stats := l.rend.Stats()
		l.header("Renderer")
		l.linef("Draw Calls: %d", stats.DrawCalls)
		l.linef("Vertices: %d", stats.Vertices)
	}

	l.header("Input")
	l.linef("Counter: %d", in.Counter())
	l.linef("Events: %d", len(in.Events()))
	l.linef("Cursor: %.0f, %.0f", e.CursorX, e.CursorY)
	if in.HasComposition() {
		l.linef("Composing: %q", in.Composition())
	}
	if in.NumJoysticks() > 0 {
		l.linef("Joystick: %s", in.JoystickName())
		for a := 0; a < min(in.JoystickNumAxes(), 4); a++ {
			l.linef("Axis %d: %+.2f", a, in.JoystickAxisValue(a))
		}
	}

	l.header("UI")
	l.linef("Hot: %v", u.HotItem() != nil)
	l.linef("Active: %v", u.ActiveItem() != nil)
	l.linef("Editing: %v", u.IsInputActive())

	l.header("Memory")
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	l.linef("Usage: %.3f MB", float32(m.Alloc)/(1<<20))
	l.linef("Goroutines: %d", runtime.NumGoroutine())

	const lineH = 14
	screen := u.Screen()
	box := geom.Rect{X: screen.Right() - 220, Y: 16, W: 200, H: float32(len(l.lines))*lineH + 16}
	u.DrawRect(box, colors.Black.WithAlpha(0.5), 6, geom.CornerAll)

	row := box.Margin(8)
	for _, ln := range l.lines {
		var r geom.Rect
		r, row = row.HSplitTop(lineH)
		if ln.header {
			u.DoLabelHighlighted(r, ln.text, ln.text, 11, colors.White, colors.Yellow)
		} else {
			u.DoLabel(r, ln.text, 11, ui.AlignLeft, -1)
		}
	}
}
