// Package input turns platform events into a per-frame input model: key
// state, press counters, an ordered event queue, IME composition, mouse modes
// and joystick selection.
package input

import (
	"github.com/hubastard/groveui/engine/config"
	"github.com/hubastard/groveui/engine/console"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CursorType tells where a relative cursor movement came from.
type CursorType int

const (
	CursorNone CursorType = iota
	CursorMouse
	CursorJoystick
)

// counterMax is where the press counter wraps back to 1. Zero means "never
// pressed".
const counterMax = 0xFFFF

// Input is the input abstraction layer. It is not safe for concurrent use;
// Update and every query run on the frame thread.
type Input struct {
	src    Source
	joyDrv JoystickDriver
	cfg    *config.Values
	con    console.Console

	keys    [KeyLast]bool
	presses [KeyLast]int
	counter int
	events  eventQueue

	relative    bool
	doubleClick bool
	prevHat     Key

	comp      composition
	clipboard string

	joy joysticks
}

// New returns an Input reading from src. joy may be nil to run without
// joystick support. cfg is shared and written back on joystick fallback.
func New(src Source, joy JoystickDriver, cfg *config.Values, con console.Console) *Input {
	if con == nil {
		con = console.Discard{}
	}
	return &Input{
		src:     src,
		joyDrv:  joy,
		cfg:     cfg,
		con:     con,
		counter: 1,
		comp:    newComposition(),
		joy:     joysticks{selected: -1},
	}
}

// Init closes any text input session, grabs the mouse and opens joysticks.
func (i *Input) Init() {
	i.src.StopTextInput()
	i.MouseModeRelative()
	i.initJoysticks()
}

// Close releases joystick devices.
func (i *Input) Close() {
	i.closeJoysticks()
}

// Update drains the platform source once. It reports true when the platform
// asked the application to quit; the remaining events stay queued in the
// source.
func (i *Input) Update() (quit bool) {
	i.counter = i.counter%counterMax + 1
	i.events.reset()

	i.src.PumpEvents()
	i.snapshotMouse()

	for {
		ev, ok := i.src.PollEvent()
		if !ok {
			break
		}
		a := decode(ev)
		if a.kind == actQuit {
			return true
		}
		i.apply(a)
	}

	i.comp.settle()
	return false
}

// snapshotMouse is the only writer of mouse button key state.
func (i *Input) snapshotMouse() {
	for k := KeyMouse1; k <= KeyMouse9; k++ {
		i.keys[k] = false
	}
	held := i.src.MouseButtons()
	for b := MouseButton(1); b <= 9; b++ {
		if held&(1<<(b-1)) != 0 {
			i.keys[mouseButtonKey(b)] = true
		}
	}
}

func (i *Input) apply(a action) {
	switch a.kind {
	case actKey:
		if a.leftClick {
			switch {
			case a.clicks%2 == 0:
				i.doubleClick = true
			case a.clicks == 1:
				i.doubleClick = false
			}
		}
		i.applyKey(a.key, a.flags)

	case actHat:
		prev := i.prevHat
		if prev != KeyUnknown && prev != a.key {
			i.applyKey(prev, FlagRelease)
			i.prevHat = KeyUnknown
		}
		// A direction pressed during composition is never recorded, so it
		// gets no release either.
		if a.key != KeyUnknown && a.key != prev && i.applyKey(a.key, FlagPress) {
			i.prevHat = a.key
		}

	case actEdit:
		i.comp.edit(a.text, a.start, a.length)
		if i.comp.length > 0 {
			i.AddEvent("", KeyUnknown, FlagText)
		}
		console.Printf(i.con, console.LevelDebug, "text", "edit: %d, %d, %d", i.comp.length, i.comp.cursor, i.comp.selection)

	case actText:
		i.comp.commit()
		i.AddEvent(norm.NFC.String(a.text), KeyUnknown, FlagText)

	case actCandidates:
		i.comp.setCandidates(a.open, a.candidates, a.selected)
	}
}

// applyKey records a key transition and reports whether it was applied.
// Presses are ignored while a composition is open so committed text does not
// also fire as keys.
func (i *Input) applyKey(k Key, f Flags) bool {
	pressed := f&FlagPress != 0
	if pressed && i.HasComposition() {
		return false
	}
	mouse := k >= KeyMouse1 && k <= KeyMouse9
	if pressed {
		i.presses[k] = i.counter
	}
	if !mouse {
		i.keys[k] = pressed && f&FlagRelease == 0
	}
	i.AddEvent("", k, f)
	return true
}

// AddEvent appends to this frame's event queue. Events past EventBufferSize
// are dropped.
func (i *Input) AddEvent(text string, key Key, flags Flags) {
	i.events.add(Event{Key: key, Flags: flags, Text: text, InputCount: i.counter})
}

// Events returns the events queued during the last Update. The slice is
// reused by the next Update.
func (i *Input) Events() []Event { return i.events.slice() }

// Clear forgets all key state, press counters and queued events.
func (i *Input) Clear() {
	i.keys = [KeyLast]bool{}
	i.presses = [KeyLast]int{}
	i.events.reset()
}

// Counter returns the current frame counter in [1, 0xFFFF].
func (i *Input) Counter() int { return i.counter }

// KeyState reports whether k is held down.
func (i *Input) KeyState(k Key) bool {
	return k.Valid() && i.keys[k]
}

// KeyIsPressed is KeyState.
func (i *Input) KeyIsPressed(k Key) bool { return i.KeyState(k) }

// KeyPress reports whether k was pressed during the last Update.
func (i *Input) KeyPress(k Key) bool {
	return k.Valid() && i.presses[k] == i.counter
}

// KeyPressCount returns the counter value of the most recent press of k, or
// 0 if it was never pressed.
func (i *Input) KeyPressCount(k Key) int {
	if !k.Valid() {
		return 0
	}
	return i.presses[k]
}

// MouseModeAbsolute shows the cursor and leaves relative mode.
func (i *Input) MouseModeAbsolute() {
	if !i.relative {
		return
	}
	i.relative = false
	i.src.ShowCursor(true)
	i.src.SetRelativeMouseMode(false)
}

// MouseModeRelative hides the cursor and reports motion as deltas.
func (i *Input) MouseModeRelative() {
	if i.relative {
		return
	}
	i.relative = true
	i.src.ShowCursor(false)
	if err := i.src.SetRelativeWarp(!i.cfg.InpGrab); err != nil {
		console.Printf(i.con, console.LevelStandard, "input", "unable to switch relative mouse mode: %v", err)
	}
	i.src.SetRelativeMouseMode(true)
	// drop motion accumulated before the switch
	i.src.RelativeMouseState()
}

// MouseRelativeMode reports whether relative mode is on.
func (i *Input) MouseRelativeMode() bool { return i.relative }

// MouseRelative returns the mouse motion since the last call. ok is false
// outside relative mode or when the mouse did not move.
func (i *Input) MouseRelative() (x, y float32, ok bool) {
	if !i.relative {
		return 0, 0, false
	}
	dx, dy := i.src.RelativeMouseState()
	if dx == 0 && dy == 0 {
		return 0, 0, false
	}
	return float32(dx), float32(dy), true
}

// CursorRelative returns the relative cursor movement from the mouse, or
// from the joystick when the mouse did not move.
func (i *Input) CursorRelative() (x, y float32, t CursorType) {
	if x, y, ok := i.MouseRelative(); ok {
		return x, y, CursorMouse
	}
	if x, y, ok := i.JoystickRelative(); ok {
		return x, y, CursorJoystick
	}
	return 0, 0, CursorNone
}

// MouseDoubleClick reports a left double click once; reading it clears it.
func (i *Input) MouseDoubleClick() bool {
	if i.doubleClick {
		i.doubleClick = false
		return true
	}
	return false
}

var controlToSpace = runes.Map(func(r rune) rune {
	if r < 32 {
		return ' '
	}
	return r
})

// ClipboardText returns the clipboard with control characters replaced by
// spaces. The result stays valid until the next call.
func (i *Input) ClipboardText() string {
	s, _, err := transform.String(controlToSpace, i.src.ClipboardText())
	if err != nil {
		console.Printf(i.con, console.LevelDebug, "input", "clipboard: %v", err)
		s = ""
	}
	i.clipboard = s
	return i.clipboard
}

func (i *Input) SetClipboardText(text string) { i.src.SetClipboardText(text) }

func (i *Input) StartTextInput() { i.src.StartTextInput() }

// StopTextInput ends the text input session and drops any composition.
func (i *Input) StopTextInput() {
	i.src.StopTextInput()
	i.comp.reset()
}

// HasComposition reports whether an IME composition is open.
func (i *Input) HasComposition() bool { return i.comp.active() }

// Composition returns the composition text.
func (i *Input) Composition() string { return i.comp.text }

// CompositionLength returns the composition length in bytes, or -1 when no
// composition is open.
func (i *Input) CompositionLength() int { return i.comp.length }

// CompositionCursor returns the composition cursor as a byte offset.
func (i *Input) CompositionCursor() int { return i.comp.cursor }

// CompositionSelectedLength returns the selection length in bytes.
func (i *Input) CompositionSelectedLength() int { return i.comp.selection }

// Candidates returns the IME candidate list.
func (i *Input) Candidates() []string { return i.comp.candidates[:i.comp.numCandidates] }

// CandidateSelectedIndex returns the highlighted candidate, or -1.
func (i *Input) CandidateSelectedIndex() int { return i.comp.selected }

// SetCompositionWindowPosition places the platform IME window.
func (i *Input) SetCompositionWindowPosition(x, y, lineHeight float32) {
	i.src.SetTextInputRect(x, y, 0, lineHeight)
}
