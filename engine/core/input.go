package core

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
)

const cursorSize = 8

// updateCursor moves the software cursor by this frame's relative motion
// and keeps it on screen.
func (e *Engine) updateCursor() {
	dx, dy, t := e.Input.CursorRelative()
	dx, dy = e.UI.ConvertCursorMove(dx, dy, t)

	w, h := e.Renderer.ScreenWidth(), e.Renderer.ScreenHeight()
	e.CursorX = clamp(e.CursorX+dx, 0, max(w-1, 0))
	e.CursorY = clamp(e.CursorY+dy, 0, max(h-1, 0))
}

func (e *Engine) drawCursor() {
	r := geom.Rect{X: e.CursorX, Y: e.CursorY, W: cursorSize, H: cursorSize}
	e.Renderer.DrawRect4(r, colors.Uniform(colors.White), 0, geom.CornerNone)
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
