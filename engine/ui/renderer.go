package ui

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextOptions controls one DrawText call.
type TextOptions struct {
	Size  float32
	Align Align
	// LineWidth wraps text at this width; <= 0 draws a single line.
	LineWidth float32
	Color     colors.Color

	// Bytes [HighlightStart, HighlightEnd) of the text use HighlightColor.
	HighlightStart, HighlightEnd int
	HighlightColor               colors.Color
}

// Renderer is what the UI needs from the graphics backend. Coordinates are
// in UI units with the origin at the top left.
type Renderer interface {
	ScreenWidth() float32
	ScreenHeight() float32

	// DrawRect4 fills r with corner colors ordered top-left, top-right,
	// bottom-left, bottom-right. Corners in the set are rounded.
	DrawRect4(r geom.Rect, c [4]colors.Color, rounding float32, corners geom.Corners)
	// DrawText draws text vertically centered in r.
	DrawText(r geom.Rect, text string, opt TextOptions)
	MeasureText(text string, size float32) float32

	ClipEnable(r geom.Rect)
	ClipDisable()
}
