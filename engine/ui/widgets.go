package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// DrawRect fills r with one color.
func (u *UI) DrawRect(r geom.Rect, c colors.Color, rounding float32, corners geom.Corners) {
	u.r.DrawRect4(r, colors.Uniform(c), rounding, corners)
}

// DrawRect4 fills r with per-corner colors (top-left, top-right, bottom-left,
// bottom-right).
func (u *UI) DrawRect4(r geom.Rect, c [4]colors.Color, rounding float32, corners geom.Corners) {
	u.r.DrawRect4(r, c, rounding, corners)
}

// DoButtonLogic runs the click protocol for mouse button b. It returns true
// on the frame the button is released over r after being pressed on it.
func (u *UI) DoButtonLogic(id any, r geom.Rect, b int) bool {
	clicked := false
	hovered := u.MouseHovered(r)

	if u.CheckActiveItem(id) {
		if u.activeButton == b && !u.MouseButton(b) {
			clicked = hovered
			u.ClearActiveItem()
			u.activeButton = -1
		}
	} else if u.HotItem() == id && u.MouseButton(b) {
		if u.SetActiveItem(id) {
			u.activeButton = b
		}
	}

	if hovered && !u.MouseButton(b) {
		u.SetHotItem(id)
	}
	return clicked
}

// DoPickerLogic reports the pointer position relative to r while the picker
// is dragged. The position is clamped to r so dragging past the edges pins
// the value.
func (u *UI) DoPickerLogic(id any, r geom.Rect) (x, y float32, ok bool) {
	if u.CheckActiveItem(id) {
		if !u.MouseButton(0) {
			u.ClearActiveItem()
		}
	} else if u.HotItem() == id && u.MouseButton(0) {
		u.SetActiveItem(id)
	}

	if u.MouseHovered(r) {
		u.SetHotItem(id)
	}

	if !u.CheckActiveItem(id) {
		return 0, 0, false
	}
	x = min(max(u.mouseX-r.X, 0), r.W)
	y = min(max(u.mouseY-r.Y, 0), r.H)
	return x, y, true
}

// DoButton draws a labelled button and returns whether it was clicked.
func (u *UI) DoButton(id any, label string, r geom.Rect, fontSize float32, cf ButtonColorFunc) bool {
	hovered := u.MouseHovered(r)
	u.DrawRect(r, cf.Color(u.CheckActiveItem(id), hovered), 5, geom.CornerAll)
	u.DoLabel(r, label, fontSize, AlignCenter, -1)
	return u.DoButtonLogic(id, r, 0)
}

// DoLabel draws text in r. lineWidth <= 0 keeps it on one line.
func (u *UI) DoLabel(r geom.Rect, text string, fontSize float32, align Align, lineWidth float32) {
	u.r.DrawText(r, text, TextOptions{
		Size:      fontSize,
		Align:     align,
		LineWidth: lineWidth,
		Color:     DefaultTextColor,
	})
}

var highlightMatcher = search.New(language.Und, search.IgnoreCase)

// DoLabelHighlighted draws text with the first case-insensitive match of
// highlighted drawn in highlightColor.
func (u *UI) DoLabelHighlighted(r geom.Rect, text, highlighted string, fontSize float32, textColor, highlightColor colors.Color) {
	opt := TextOptions{Size: fontSize, Align: AlignLeft, Color: textColor, HighlightColor: highlightColor}
	if highlighted != "" {
		if start, end := highlightMatcher.IndexString(text, highlighted); start >= 0 {
			opt.HighlightStart, opt.HighlightEnd = start, end
		}
	}
	u.r.DrawText(r, text, opt)
}

// DoEditBox edits li in r. A click on the box takes the keyboard; enter,
// escape or a click elsewhere gives it back. It returns true when the text
// changed this frame.
func (u *UI) DoEditBox(li LineInput, r geom.Rect, fontSize float32, hidden bool, corners geom.Corners, cf ButtonColorFunc) bool {
	inside := u.MouseHovered(r)
	changed := false

	if u.CheckActiveItem(li) {
		if u.activeInput != li {
			u.activeInput = li
			u.in.StartTextInput()
		}
		for _, ev := range u.in.Events() {
			if li.ProcessInput(ev) {
				changed = true
			}
		}
		// Hover is suppressed while composing, so test the geometry here.
		within := u.MouseInside(r) && u.MouseInsideClip()
		if u.ConsumeHotkey(HotkeyEnter|HotkeyEscape) || (u.MouseButtonClicked(0) && !within) {
			u.ClearActiveItem()
			u.releaseInput()
		}
	} else if u.HotItem() == li && u.MouseButtonClicked(0) {
		if u.SetActiveItem(li) {
			u.activeInput = li
			u.editScroll = 0
			u.in.StartTextInput()
		}
	}

	if inside {
		u.SetHotItem(li)
	}

	active := u.activeInput == li
	u.DrawRect(r, cf.Color(active, inside), 5, corners)

	box := r.VMargin(2)
	display, cursor := li.Text(), li.Cursor()
	if hidden {
		display, cursor = maskText(display, cursor)
	}
	hlStart, hlEnd := 0, 0
	if active && u.in.HasComposition() {
		comp := u.in.Composition()
		display = display[:cursor] + comp + display[cursor:]
		hlStart, hlEnd = cursor, cursor+len(comp)
		cursor += u.in.CompositionCursor()
	}

	u.ClipEnable(box)
	cursorX := u.r.MeasureText(display[:cursor], fontSize)
	if active {
		switch {
		case cursorX-u.editScroll > box.W:
			u.editScroll = cursorX - box.W
		case cursorX < u.editScroll:
			u.editScroll = cursorX
		}
	}
	scroll := float32(0)
	if active {
		scroll = u.editScroll
	}
	textRect := box
	textRect.X -= scroll
	textRect.W += scroll
	u.r.DrawText(textRect, display, TextOptions{
		Size:           fontSize,
		Align:          AlignLeft,
		Color:          DefaultTextColor,
		HighlightStart: hlStart,
		HighlightEnd:   hlEnd,
		HighlightColor: colors.Color{0.5, 0.5, 1, 1},
	})
	if active {
		caret := geom.Rect{X: box.X + cursorX - scroll, Y: box.Y + (box.H-fontSize)/2, W: 1, H: fontSize}
		u.DrawRect(caret, DefaultTextColor, 0, geom.CornerNone)
		u.in.SetCompositionWindowPosition(caret.X, caret.Y, fontSize)
	}
	u.ClipDisable()

	return changed
}

// DoEditBoxOption is an edit box with a caption on its left.
func (u *UI) DoEditBoxOption(li LineInput, r geom.Rect, caption string, captionWidth float32, hidden bool) bool {
	u.DrawRect(r, colors.Color{0, 0, 0, 0.25}, 5, geom.CornerAll)
	label, box := r.VSplitLeft(captionWidth)
	label = label.VMargin(5)
	u.DoLabel(label, caption+":", r.H*FontmodHeight*0.8, AlignLeft, -1)
	return u.DoEditBox(li, box, r.H*FontmodHeight*0.8, hidden, geom.CornerR, LightButtonColors{})
}

// maskText hides every code point and maps the byte cursor onto the mask.
func maskText(s string, cursor int) (string, int) {
	return strings.Repeat("*", utf8.RuneCountInString(s)), utf8.RuneCountInString(s[:cursor])
}

func clamp01(v float32) float32 { return min(max(v, 0), 1) }

// DoScrollbarV returns the new value of a vertical scrollbar at current.
func (u *UI) DoScrollbarV(id any, r geom.Rect, current float32) float32 {
	current = clamp01(current)

	rail := r.Margin(5)
	handle, _ := rail.HSplitTop(min(max(33, rail.W), rail.H/3))
	handle.Y = rail.Y + (rail.H-handle.H)*current

	grabbed := u.scrollbarLogic(id, rail, handle, u.mouseY, handle.Y, handle.H)

	value := current
	if grabbed {
		span := rail.H - handle.H
		if span > 0 {
			value = clamp01((u.mouseY - u.grabOffset - rail.Y) / span)
		}
	}

	handle.Y = rail.Y + (rail.H-handle.H)*value
	u.drawScrollbar(rail, handle, grabbed, u.MouseHovered(handle), rail.W/2, handle.W/2)
	return value
}

// DoScrollbarH returns the new value of a horizontal scrollbar at current.
func (u *UI) DoScrollbarH(id any, r geom.Rect, current float32) float32 {
	current = clamp01(current)

	rail := r.Margin(5)
	handle, _ := rail.VSplitLeft(min(max(33, rail.H), rail.W/3))
	handle.X = rail.X + (rail.W-handle.W)*current

	grabbed := u.scrollbarLogic(id, rail, handle, u.mouseX, handle.X, handle.W)

	value := current
	if grabbed {
		span := rail.W - handle.W
		if span > 0 {
			value = clamp01((u.mouseX - u.grabOffset - rail.X) / span)
		}
	}

	handle.X = rail.X + (rail.W-handle.W)*value
	u.drawScrollbar(rail, handle, grabbed, u.MouseHovered(handle), rail.H/2, handle.H/2)
	return value
}

// scrollbarLogic claims the token on a press on the handle or the rail and
// records where the handle was grabbed. It reports whether the handle
// follows the pointer this frame.
func (u *UI) scrollbarLogic(id any, rail, handle geom.Rect, mouse, handlePos, handleSize float32) bool {
	insideRail := u.MouseHovered(rail)
	insideHandle := u.MouseHovered(handle)
	grabbed := false

	switch {
	case u.CheckActiveItem(id):
		if u.MouseButton(0) {
			grabbed = true
		} else {
			u.ClearActiveItem()
		}
	case u.HotItem() == id:
		if u.MouseButton(0) && u.SetActiveItem(id) {
			u.grabOffset = mouse - handlePos
			grabbed = true
		}
	case u.MouseButtonClicked(0) && !insideHandle && insideRail:
		if u.SetActiveItem(id) {
			u.grabOffset = handleSize / 2
			grabbed = true
		}
	}

	if insideHandle {
		u.SetHotItem(id)
	}
	return grabbed
}

func (u *UI) drawScrollbar(rail, handle geom.Rect, grabbed, hovered bool, railRound, handleRound float32) {
	u.DrawRect(rail, colors.Color{1, 1, 1, 0.25}, railRound, geom.CornerAll)
	c := colors.Color{0.8, 0.8, 0.8, 1}
	switch {
	case grabbed:
		c = colors.Color{0.9, 0.9, 0.9, 1}
	case hovered:
		c = colors.White
	}
	u.DrawRect(handle, c, handleRound, geom.CornerAll)
}

// DoScrollbarOption edits an integer option in [min, max] with a labelled
// horizontal scrollbar. With infinite set, 0 stands for "no limit" and sits
// past max on the scrollbar.
func (u *UI) DoScrollbarOption(id any, option *int, r geom.Rect, caption string, lo, hi int, scale ScrollbarScale, infinite bool) {
	value := *option
	if infinite {
		lo++
		hi++
		if value == 0 {
			value = hi
		}
	}
	value = min(max(value, lo), hi)

	maxText := fmt.Sprintf("%s: %d", caption, hi)
	text := caption + ": ∞"
	if !infinite || value != hi {
		text = caption + ": " + strconv.Itoa(value)
	}

	fontSize := r.H * FontmodHeight * 0.8
	split := max(u.r.MeasureText(maxText, fontSize), u.r.MeasureText(text, fontSize))

	u.DrawRect(r, colors.Color{0, 0, 0, 0.25}, 5, geom.CornerAll)
	label, bar := r.VSplitLeft(r.H + 10 + split)
	_, label = label.VSplitLeft(label.H + 5)
	u.DoLabel(label, text, fontSize, AlignLeft, -1)

	bar = bar.VMargin(4)
	if hi > lo {
		value = scale.ToAbsolute(u.DoScrollbarH(id, bar, scale.ToRelative(value, lo, hi)), lo, hi)
		value = min(max(value, lo), hi)
	}
	if infinite && value == hi {
		value = 0
	}
	*option = value
}

// DoScrollbarOptionLabeled picks one of labels with a scrollbar. Clicking
// the caption cycles to the next label.
func (u *UI) DoScrollbarOptionLabeled(id any, option *int, r geom.Rect, caption string, labels []string, scale ScrollbarScale) {
	n := len(labels)
	if n == 0 {
		return
	}
	hi := n - 1
	value := min(max(*option, 0), hi)

	fontSize := r.H * FontmodHeight * 0.8
	u.DrawRect(r, colors.Color{0, 0, 0, 0.25}, 5, geom.CornerAll)
	_, label := r.VSplitLeft(5)
	label, bar := label.VSplitRight(60)
	u.DoLabel(label, caption+": "+labels[value], fontSize, AlignLeft, -1)

	bar = bar.VMargin(4)
	if hi > 0 {
		value = scale.ToAbsolute(u.DoScrollbarH(id, bar, scale.ToRelative(value, 0, hi)), 0, hi)
	}
	if u.HotItem() != id && !u.CheckActiveItem(id) && u.MouseHovered(r) && u.MouseButtonClicked(0) {
		value = (value + 1) % n
	}
	*option = min(max(value, 0), hi)
}
