// Package ui is an immediate-mode interaction engine. Widgets are plain
// function calls identified by a caller-chosen comparable token; the engine
// only retains which token is hot (under the pointer) and which is active
// (capturing the mouse or keyboard).
package ui

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/config"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
)

// Hotkeys latched from this frame's key presses.
const (
	HotkeyEnter uint32 = 1 << iota
	HotkeyEscape
	HotkeyUp
	HotkeyDown
	HotkeyDelete
	HotkeyTab
)

// Layout constants shared by widgets.
const (
	ButtonHeight     = 20
	ListheaderHeight = 17
	FontmodHeight    = 0.8
)

var (
	DefaultTextColor     = colors.White
	HighlightTextColor   = colors.Black
	TransparentTextColor = colors.Color{1, 1, 1, 0.5}
)

// Input is the slice of the input layer the UI reads.
type Input interface {
	KeyIsPressed(k input.Key) bool
	KeyPress(k input.Key) bool
	Events() []input.Event
	HasComposition() bool
	Composition() string
	CompositionCursor() int
	CompositionSelectedLength() int
	StartTextInput()
	StopTextInput()
	SetCompositionWindowPosition(x, y, lineHeight float32)
}

// LineInput is the editable buffer behind an edit box.
type LineInput interface {
	ProcessInput(ev input.Event) bool
	Text() string
	// Cursor is a byte offset into Text.
	Cursor() int
}

// UI holds the per-frame interaction state. Identity tokens must be
// comparable; nil means "no widget".
type UI struct {
	in  Input
	r   Renderer
	cfg *config.Values

	enabled bool

	hot         any
	nextHot     any
	active      any
	lastActive  any
	activeValid bool

	mouseX, mouseY           float32
	mouseWorldX, mouseWorldY float32
	mouseButtons             uint32
	lastMouseButtons         uint32

	hotkeys uint32

	activeInput LineInput
	editScroll  float32

	// state of the widget holding the active token
	activeButton int
	grabOffset   float32

	clip geom.ClipStack
}

func New(in Input, r Renderer, cfg *config.Values) *UI {
	u := &UI{in: in, r: r, cfg: cfg, enabled: true, activeButton: -1}
	u.clip.Screen = u.Screen()
	return u
}

func (u *UI) SetEnabled(enabled bool) { u.enabled = enabled }
func (u *UI) Enabled() bool           { return u.enabled }

// Update starts a frame: it samples the mouse, promotes the hot candidate
// from the previous frame and latches hotkeys.
func (u *UI) Update(mouseX, mouseY, worldX, worldY float32) {
	var buttons uint32
	if u.enabled {
		for i, k := range [...]input.Key{input.KeyMouse1, input.KeyMouse2, input.KeyMouse3} {
			if u.in.KeyIsPressed(k) {
				buttons |= 1 << i
			}
		}
	}

	u.mouseX, u.mouseY = mouseX, mouseY
	u.mouseWorldX, u.mouseWorldY = worldX, worldY
	u.lastMouseButtons = u.mouseButtons
	u.mouseButtons = buttons

	u.hot = u.nextHot
	if u.active != nil {
		u.hot = u.active
	}
	u.nextHot = nil

	u.hotkeys = 0
	if u.enabled {
		u.latchHotkeys()
	} else {
		u.hot = nil
		u.ClearActiveItem()
		u.activeButton = -1
		u.grabOffset = 0
	}

	if u.activeInput != nil && u.active != any(u.activeInput) {
		u.releaseInput()
	}

	u.clip.Screen = u.Screen()
}

func (u *UI) latchHotkeys() {
	if u.in.HasComposition() {
		return
	}
	for k := input.KeyLCtrl; k.IsModifier(); k++ {
		if u.in.KeyIsPressed(k) {
			return
		}
	}
	for _, ev := range u.in.Events() {
		if !ev.Pressed() {
			continue
		}
		switch ev.Key {
		case input.KeyReturn, input.KeyKPEnter:
			u.hotkeys |= HotkeyEnter
		case input.KeyEscape:
			u.hotkeys |= HotkeyEscape
		case input.KeyUp:
			u.hotkeys |= HotkeyUp
		case input.KeyDown:
			u.hotkeys |= HotkeyDown
		case input.KeyDelete:
			u.hotkeys |= HotkeyDelete
		case input.KeyTab:
			u.hotkeys |= HotkeyTab
		}
	}
}

func (u *UI) MouseX() float32      { return u.mouseX }
func (u *UI) MouseY() float32      { return u.mouseY }
func (u *UI) MouseWorldX() float32 { return u.mouseWorldX }
func (u *UI) MouseWorldY() float32 { return u.mouseWorldY }

// MouseButton reports whether button i (0 left, 1 right, 2 middle) is held.
func (u *UI) MouseButton(i int) bool { return u.mouseButtons>>i&1 != 0 }

// MouseButtonClicked reports whether button i went down this frame.
func (u *UI) MouseButtonClicked(i int) bool {
	return u.MouseButton(i) && u.lastMouseButtons>>i&1 == 0
}

// SetHotItem nominates id for hot on the next frame. The last call wins.
func (u *UI) SetHotItem(id any) { u.nextHot = id }

// SetActiveItem gives id the active token. A claim while a different widget
// holds it is refused. Passing nil releases the token.
func (u *UI) SetActiveItem(id any) bool {
	if id != nil && u.active != nil && u.active != id {
		return false
	}
	u.activeValid = true
	u.active = id
	if id != nil {
		u.lastActive = id
	}
	return true
}

// ClearActiveItem releases the active token.
func (u *UI) ClearActiveItem() { u.SetActiveItem(nil) }

// CheckActiveItem reports whether id is active and marks it alive for the
// current StartCheck/FinishCheck bracket.
func (u *UI) CheckActiveItem(id any) bool {
	if id != nil && u.active == id {
		u.activeValid = true
		return true
	}
	return false
}

func (u *UI) ClearLastActiveItem() { u.lastActive = nil }

func (u *UI) HotItem() any        { return u.hot }
func (u *UI) NextHotItem() any    { return u.nextHot }
func (u *UI) ActiveItem() any     { return u.active }
func (u *UI) LastActiveItem() any { return u.lastActive }

// StartCheck opens a frame in which the active widget must call
// CheckActiveItem. FinishCheck releases the token otherwise.
func (u *UI) StartCheck() { u.activeValid = false }

func (u *UI) FinishCheck() {
	if !u.activeValid {
		u.ClearActiveItem()
	}
}

func (u *UI) MouseInside(r geom.Rect) bool { return r.Inside(u.mouseX, u.mouseY) }

// MouseInsideClip reports whether the pointer is inside the current clip
// region.
func (u *UI) MouseInsideClip() bool {
	return !u.clip.IsClipped() || u.MouseInside(u.clip.Area())
}

// MouseHovered reports whether r is under the pointer and not clipped away.
// Nothing is hovered while an IME composition is open.
func (u *UI) MouseHovered(r geom.Rect) bool {
	if u.in.HasComposition() {
		return false
	}
	return u.MouseInside(r) && u.MouseInsideClip()
}

// ConvertCursorMove scales a relative cursor motion by the UI sensitivity of
// its source.
func (u *UI) ConvertCursorMove(x, y float32, t input.CursorType) (float32, float32) {
	factor := float32(1)
	switch t {
	case input.CursorMouse:
		factor = float32(u.cfg.UIMouseSens) / 100
	case input.CursorJoystick:
		factor = float32(u.cfg.UIJoystickSens) / 100
	}
	return x * factor, y * factor
}

func (u *UI) KeyPress(k input.Key) bool     { return u.enabled && u.in.KeyPress(k) }
func (u *UI) KeyIsPressed(k input.Key) bool { return u.enabled && u.in.KeyIsPressed(k) }

// ConsumeHotkey reports whether any hotkey in mask fired this frame and
// clears them.
func (u *UI) ConsumeHotkey(mask uint32) bool {
	pressed := u.hotkeys&mask != 0
	u.hotkeys &^= mask
	return pressed
}

func (u *UI) ClearHotkeys() { u.hotkeys = 0 }

// IsInputActive reports whether an edit box owns the keyboard.
func (u *UI) IsInputActive() bool { return u.activeInput != nil }

func (u *UI) releaseInput() {
	u.activeInput = nil
	u.editScroll = 0
	u.in.StopTextInput()
}

// Screen is the full UI area.
func (u *UI) Screen() geom.Rect {
	return geom.Rect{W: u.r.ScreenWidth(), H: u.r.ScreenHeight()}
}

// ClipEnable narrows drawing and hover tests to r intersected with the
// current clip. Unbalanced nesting panics.
func (u *UI) ClipEnable(r geom.Rect) {
	if err := u.clip.Push(r); err != nil {
		panic("ui: " + err.Error())
	}
	u.r.ClipEnable(u.clip.Area())
}

func (u *UI) ClipDisable() {
	if err := u.clip.Pop(); err != nil {
		panic("ui: " + err.Error())
	}
	if u.clip.IsClipped() {
		u.r.ClipEnable(u.clip.Area())
		return
	}
	u.r.ClipDisable()
}

func (u *UI) ClipArea() geom.Rect { return u.clip.Area() }
func (u *UI) IsClipped() bool     { return u.clip.IsClipped() }
