package ui

import (
	"testing"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/config"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
)

type fakeInput struct {
	held      map[input.Key]bool
	pressed   map[input.Key]bool
	events    []input.Event
	comp      string
	compCur   int
	textInput bool
	imePos    [3]float32
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[input.Key]bool{}, pressed: map[input.Key]bool{}}
}

func (f *fakeInput) KeyIsPressed(k input.Key) bool  { return f.held[k] }
func (f *fakeInput) KeyPress(k input.Key) bool      { return f.pressed[k] }
func (f *fakeInput) Events() []input.Event          { return f.events }
func (f *fakeInput) HasComposition() bool           { return f.comp != "" }
func (f *fakeInput) Composition() string            { return f.comp }
func (f *fakeInput) CompositionCursor() int         { return f.compCur }
func (f *fakeInput) CompositionSelectedLength() int { return 0 }
func (f *fakeInput) StartTextInput()                { f.textInput = true }
func (f *fakeInput) StopTextInput()                 { f.textInput = false }
func (f *fakeInput) SetCompositionWindowPosition(x, y, h float32) {
	f.imePos = [3]float32{x, y, h}
}

type textCall struct {
	r    geom.Rect
	text string
	opt  TextOptions
}

type fakeRenderer struct {
	rects []geom.Rect
	texts []textCall
	clips []geom.Rect
}

func (f *fakeRenderer) ScreenWidth() float32  { return 800 }
func (f *fakeRenderer) ScreenHeight() float32 { return 600 }
func (f *fakeRenderer) DrawRect4(r geom.Rect, _ [4]colors.Color, _ float32, _ geom.Corners) {
	f.rects = append(f.rects, r)
}
func (f *fakeRenderer) DrawText(r geom.Rect, text string, opt TextOptions) {
	f.texts = append(f.texts, textCall{r, text, opt})
}
func (f *fakeRenderer) MeasureText(text string, size float32) float32 {
	return float32(len(text)) * size / 2
}
func (f *fakeRenderer) ClipEnable(r geom.Rect) { f.clips = append(f.clips, r) }
func (f *fakeRenderer) ClipDisable()           { f.clips = append(f.clips, geom.Rect{}) }

func newTestUI() (*UI, *fakeInput, *fakeRenderer) {
	in := newFakeInput()
	r := &fakeRenderer{}
	cfg := config.Default()
	return New(in, r, &cfg), in, r
}

// frame runs one Update with the pointer at (x, y) and the left button in
// the given state.
func frame(u *UI, in *fakeInput, x, y float32, down bool) {
	in.held[input.KeyMouse1] = down
	u.Update(x, y, x, y)
}

func TestActiveItemExclusive(t *testing.T) {
	u, _, _ := newTestUI()
	a, b := new(int), new(int)

	if !u.SetActiveItem(a) {
		t.Fatalf("first claim refused")
	}
	if u.SetActiveItem(b) {
		t.Fatalf("second claim accepted while a holds the token")
	}
	if u.ActiveItem() != a {
		t.Fatalf("active = %v, want a", u.ActiveItem())
	}
	if !u.SetActiveItem(a) {
		t.Fatalf("re-claim by owner refused")
	}
	u.ClearActiveItem()
	if !u.SetActiveItem(b) || u.ActiveItem() != b || u.LastActiveItem() != b {
		t.Fatalf("claim after release failed")
	}
}

func TestActiveItemAutoRelease(t *testing.T) {
	u, _, _ := newTestUI()
	id := "slider"
	u.SetActiveItem(id)

	u.StartCheck()
	u.CheckActiveItem(id)
	u.FinishCheck()
	if u.ActiveItem() != id {
		t.Fatalf("checked item was released")
	}

	u.StartCheck()
	u.FinishCheck()
	if u.ActiveItem() != nil {
		t.Fatalf("unchecked item kept the token")
	}
	if u.LastActiveItem() != id {
		t.Fatalf("last active = %v", u.LastActiveItem())
	}
}

func TestHotItemLastWriterWins(t *testing.T) {
	u, in, _ := newTestUI()
	a, b := "back", "front"
	r1 := geom.Rect{X: 0, Y: 0, W: 100, H: 100}
	r2 := geom.Rect{X: 50, Y: 50, W: 100, H: 100}

	frame(u, in, 75, 75, false)
	for _, w := range []struct {
		id any
		r  geom.Rect
	}{{a, r1}, {b, r2}} {
		if u.MouseHovered(w.r) {
			u.SetHotItem(w.id)
		}
	}
	if u.HotItem() != nil {
		t.Fatalf("hot changed before the next Update")
	}
	frame(u, in, 75, 75, false)
	if u.HotItem() != b {
		t.Fatalf("hot = %v, want %v", u.HotItem(), b)
	}
	if u.NextHotItem() != nil {
		t.Fatalf("pending hot not cleared")
	}
}

func TestActiveStaysHot(t *testing.T) {
	u, in, _ := newTestUI()
	u.SetActiveItem("drag")
	u.SetHotItem("other")
	frame(u, in, 0, 0, true)
	if u.HotItem() != "drag" {
		t.Fatalf("hot = %v, want the active item", u.HotItem())
	}
}

func TestButtonClick(t *testing.T) {
	u, in, _ := newTestUI()
	id := new(int)
	r := geom.Rect{X: 10, Y: 10, W: 50, H: 20}

	frame(u, in, 20, 20, false)
	if u.DoButtonLogic(id, r, 0) {
		t.Fatalf("click without press")
	}
	frame(u, in, 20, 20, true)
	if u.DoButtonLogic(id, r, 0) {
		t.Fatalf("click on press")
	}
	if u.ActiveItem() != id {
		t.Fatalf("press did not claim the token")
	}
	frame(u, in, 21, 20, false)
	if !u.DoButtonLogic(id, r, 0) {
		t.Fatalf("release over the button did not click")
	}
	if u.ActiveItem() != nil {
		t.Fatalf("token kept after release")
	}
}

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	u, in, _ := newTestUI()
	id := new(int)
	r := geom.Rect{X: 10, Y: 10, W: 50, H: 20}

	frame(u, in, 20, 20, false)
	u.DoButtonLogic(id, r, 0)
	frame(u, in, 20, 20, true)
	u.DoButtonLogic(id, r, 0)
	frame(u, in, 200, 200, false)
	if u.DoButtonLogic(id, r, 0) {
		t.Fatalf("release outside clicked")
	}
	if u.ActiveItem() != nil {
		t.Fatalf("token kept after release outside")
	}
}

func TestButtonRefusedWhileOtherActive(t *testing.T) {
	u, in, _ := newTestUI()
	other := "scrollbar"
	id := new(int)
	r := geom.Rect{W: 50, H: 50}

	u.SetActiveItem(other)
	frame(u, in, 10, 10, true)
	u.DoButtonLogic(id, r, 0)
	if u.ActiveItem() != other {
		t.Fatalf("button stole the token")
	}
}

func TestClippedButtonNotHovered(t *testing.T) {
	u, in, _ := newTestUI()
	r := geom.Rect{X: 0, Y: 0, W: 100, H: 100}
	frame(u, in, 80, 80, false)

	u.ClipEnable(geom.Rect{X: 0, Y: 0, W: 50, H: 50})
	if u.MouseHovered(r) {
		t.Fatalf("hover outside the clip area")
	}
	u.ClipDisable()
	if !u.MouseHovered(r) {
		t.Fatalf("no hover after clip disabled")
	}
}

func TestNestedClipIntersects(t *testing.T) {
	u, _, r := newTestUI()
	u.ClipEnable(geom.Rect{X: 100, Y: 100, W: 200, H: 200})
	u.ClipEnable(geom.Rect{X: 250, Y: 50, W: 200, H: 100})
	want := geom.Rect{X: 250, Y: 100, W: 50, H: 50}
	if got := u.ClipArea(); got != want {
		t.Fatalf("clip area = %+v, want %+v", got, want)
	}
	if r.clips[len(r.clips)-1] != want {
		t.Fatalf("renderer clip = %+v", r.clips[len(r.clips)-1])
	}
	u.ClipDisable()
	u.ClipDisable()
	if u.IsClipped() {
		t.Fatalf("still clipped")
	}
}

func TestClipUnderflowPanics(t *testing.T) {
	u, _, _ := newTestUI()
	defer func() {
		if recover() == nil {
			t.Fatalf("unbalanced ClipDisable did not panic")
		}
	}()
	u.ClipDisable()
}

func TestHotkeys(t *testing.T) {
	u, in, _ := newTestUI()
	in.events = []input.Event{
		{Key: input.KeyReturn, Flags: input.FlagPress},
		{Key: input.KeyTab, Flags: input.FlagRelease},
		{Key: input.KeyDown, Flags: input.FlagPress},
	}
	u.Update(0, 0, 0, 0)
	if !u.ConsumeHotkey(HotkeyEnter) {
		t.Fatalf("enter not latched")
	}
	if u.ConsumeHotkey(HotkeyEnter) {
		t.Fatalf("enter consumed twice")
	}
	if u.ConsumeHotkey(HotkeyTab) {
		t.Fatalf("tab release latched")
	}
	if !u.ConsumeHotkey(HotkeyDown | HotkeyUp) {
		t.Fatalf("down not latched")
	}

	in.held[input.KeyLCtrl] = true
	u.Update(0, 0, 0, 0)
	if u.ConsumeHotkey(HotkeyEnter | HotkeyDown) {
		t.Fatalf("hotkey latched with a modifier held")
	}

	in.held[input.KeyLCtrl] = false
	in.held[input.KeyRGui] = true
	u.Update(0, 0, 0, 0)
	if u.ConsumeHotkey(HotkeyEnter) {
		t.Fatalf("hotkey latched with right gui held")
	}

	in.held[input.KeyRGui] = false
	in.comp = "k"
	u.Update(0, 0, 0, 0)
	if u.ConsumeHotkey(HotkeyEnter) {
		t.Fatalf("hotkey latched during composition")
	}
	if u.MouseHovered(geom.Rect{W: 10, H: 10}) {
		t.Fatalf("hover during composition")
	}
}

func TestDisabled(t *testing.T) {
	u, in, _ := newTestUI()
	b := geom.Rect{W: 50, H: 20}
	frame(u, in, 10, 10, false)
	u.DoButtonLogic("x", b, 0)
	frame(u, in, 10, 10, true)
	u.DoButtonLogic("x", b, 0)
	if u.ActiveItem() != "x" {
		t.Fatalf("button not active before disabling")
	}

	u.SetEnabled(false)
	in.pressed[input.KeyA] = true
	frame(u, in, 0, 0, true)
	if u.MouseButton(0) || u.ActiveItem() != nil || u.HotItem() != nil {
		t.Fatalf("disabled UI kept interaction state")
	}
	if u.activeButton != -1 || u.grabOffset != 0 {
		t.Fatalf("disabled UI kept drag state: button %d offset %v", u.activeButton, u.grabOffset)
	}
	if u.KeyPress(input.KeyA) {
		t.Fatalf("KeyPress while disabled")
	}
}

func TestConvertCursorMove(t *testing.T) {
	u, _, _ := newTestUI()
	u.cfg.UIMouseSens = 50
	u.cfg.UIJoystickSens = 200
	if x, y := u.ConvertCursorMove(4, 2, input.CursorMouse); x != 2 || y != 1 {
		t.Fatalf("mouse = %v %v", x, y)
	}
	if x, _ := u.ConvertCursorMove(4, 2, input.CursorJoystick); x != 8 {
		t.Fatalf("joystick = %v", x)
	}
	if x, _ := u.ConvertCursorMove(4, 2, input.CursorNone); x != 4 {
		t.Fatalf("none = %v", x)
	}
}

func TestMouseButtonClicked(t *testing.T) {
	u, in, _ := newTestUI()
	frame(u, in, 0, 0, true)
	if !u.MouseButtonClicked(0) {
		t.Fatalf("press not reported as click")
	}
	frame(u, in, 0, 0, true)
	if u.MouseButtonClicked(0) || !u.MouseButton(0) {
		t.Fatalf("held button reported as click")
	}
}
