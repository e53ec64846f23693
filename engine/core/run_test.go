package core

import (
	"path/filepath"
	"testing"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/config"
	"github.com/hubastard/groveui/engine/console"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/ui"
)

type fakeWindow struct {
	frames  [][]input.RawEvent
	pending []input.RawEvent
	motion  [2]int
	step    [2]int
	closed  bool
}

func (w *fakeWindow) PumpEvents() {
	if len(w.frames) == 0 {
		w.pending = []input.RawEvent{input.RawQuit{}}
		return
	}
	w.pending, w.frames = w.frames[0], w.frames[1:]
	w.motion = w.step
}

func (w *fakeWindow) PollEvent() (input.RawEvent, bool) {
	if len(w.pending) == 0 {
		return nil, false
	}
	ev := w.pending[0]
	w.pending = w.pending[1:]
	return ev, true
}

func (w *fakeWindow) MouseButtons() uint32 { return 0 }
func (w *fakeWindow) RelativeMouseState() (int, int) {
	dx, dy := w.motion[0], w.motion[1]
	w.motion = [2]int{}
	return dx, dy
}
func (w *fakeWindow) SetRelativeMouseMode(bool)           {}
func (w *fakeWindow) ShowCursor(bool)                     {}
func (w *fakeWindow) SetRelativeWarp(bool) error          { return nil }
func (w *fakeWindow) ClipboardText() string               { return "" }
func (w *fakeWindow) SetClipboardText(string)             {}
func (w *fakeWindow) StartTextInput()                     {}
func (w *fakeWindow) StopTextInput()                      {}
func (w *fakeWindow) SetTextInputRect(_, _, _, _ float32) {}
func (w *fakeWindow) SwapBuffers()                        {}
func (w *fakeWindow) ShouldClose() bool                   { return false }
func (w *fakeWindow) FramebufferSize() (int, int)         { return 1600, 1200 }
func (w *fakeWindow) Size() (int, int)                    { return 800, 600 }
func (w *fakeWindow) SetTitle(string)                     {}
func (w *fakeWindow) Destroy()                            { w.closed = true }

type fakeRenderer struct {
	sw, sh   float32
	fbW      int
	frames   int
	open     bool
	rects    int
	shutdown bool
}

func (r *fakeRenderer) ScreenWidth() float32  { return r.sw }
func (r *fakeRenderer) ScreenHeight() float32 { return r.sh }
func (r *fakeRenderer) DrawRect4(geom.Rect, [4]colors.Color, float32, geom.Corners) {
	r.rects++
}
func (r *fakeRenderer) DrawText(geom.Rect, string, ui.TextOptions) {}
func (r *fakeRenderer) MeasureText(s string, size float32) float32 { return float32(len(s)) * size / 2 }
func (r *fakeRenderer) ClipEnable(geom.Rect)                       {}
func (r *fakeRenderer) ClipDisable()                               {}
func (r *fakeRenderer) Resize(fbW, _ int, sw, sh float32)          { r.fbW, r.sw, r.sh = fbW, sw, sh }
func (r *fakeRenderer) Clear(colors.Color)                         {}
func (r *fakeRenderer) BeginFrame()                                { r.open = true }
func (r *fakeRenderer) Shutdown()                                  { r.shutdown = true }

func (r *fakeRenderer) EndFrame() {
	r.open = false
	r.frames++
}

type fakeJoystick struct{}

func (fakeJoystick) Name() string    { return "pad" }
func (fakeJoystick) GUID() string    { return "pad-guid" }
func (fakeJoystick) NumAxes() int    { return 2 }
func (fakeJoystick) NumButtons() int { return 4 }
func (fakeJoystick) NumHats() int    { return 1 }
func (fakeJoystick) Axis(int) int16  { return 0 }
func (fakeJoystick) Attached() bool  { return true }
func (fakeJoystick) Close()          {}

type fakeDriver struct{}

func (fakeDriver) Init() error                      { return nil }
func (fakeDriver) NumJoysticks() int                { return 1 }
func (fakeDriver) Open(int) (input.Joystick, error) { return fakeJoystick{}, nil }

type recordApp struct {
	started, renders, shutdowns int
	clicked                     bool
	layer                       *recordLayer
}

func (a *recordApp) OnStart(e *Engine) {
	a.started++
	e.Layers.Push(a.layer)
}
func (a *recordApp) OnUpdate(*Engine, float64) {}
func (a *recordApp) OnRender(e *Engine, _ float64) {
	a.renders++
	if e.UI.DoButton(&a.clicked, "ok", geom.Rect{W: 10, H: 10}, 10, ui.DarkButtonColors{}) {
		a.clicked = true
	}
}
func (a *recordApp) OnShutdown(*Engine) { a.shutdowns++ }

type recordLayer struct {
	attached, detached bool
	events             []input.Event
}

func (l *recordLayer) OnAttach(*Engine)          { l.attached = true }
func (l *recordLayer) OnDetach(*Engine)          { l.detached = true }
func (l *recordLayer) OnUpdate(*Engine, float64) {}
func (l *recordLayer) OnRender(*Engine, float64) {}
func (l *recordLayer) OnInput(_ *Engine, ev input.Event) bool {
	l.events = append(l.events, ev)
	return true
}

func TestRunLoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	win := &fakeWindow{
		frames: [][]input.RawEvent{
			{input.RawKey{Key: input.KeyA, Down: true}},
			{},
			{input.RawQuit{}},
		},
		step: [2]int{10, 0},
	}
	rend := &fakeRenderer{}
	app := &recordApp{layer: &recordLayer{}}

	cfg := Config{
		Title:        "test",
		SettingsPath: path,
		Joysticks:    fakeDriver{},
		Console:      console.Discard{},
	}
	err := Run(app, cfg,
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return rend, nil },
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if app.started != 1 || app.shutdowns != 1 {
		t.Fatalf("start %d shutdown %d", app.started, app.shutdowns)
	}
	if app.renders != 2 || rend.frames != 2 || rend.open {
		t.Fatalf("renders %d frames %d open %v", app.renders, rend.frames, rend.open)
	}
	if rend.sw != 800 || rend.fbW != 1600 {
		t.Fatalf("resize %v %v", rend.sw, rend.fbW)
	}
	if !rend.shutdown || !win.closed {
		t.Fatalf("renderer shutdown %v window destroyed %v", rend.shutdown, win.closed)
	}

	l := app.layer
	if !l.attached || !l.detached {
		t.Fatalf("layer attached %v detached %v", l.attached, l.detached)
	}
	if len(l.events) != 1 || l.events[0].Key != input.KeyA || l.events[0].Flags&input.FlagPress == 0 {
		t.Fatalf("layer events = %+v", l.events)
	}

	settings, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.JoystickGUID != "pad-guid" {
		t.Fatalf("saved joystick guid = %q", settings.JoystickGUID)
	}
}

func TestCursorFollowsRelativeMotion(t *testing.T) {
	win := &fakeWindow{
		frames: [][]input.RawEvent{{}, {}, {}},
		step:   [2]int{10, -5},
	}
	rend := &fakeRenderer{}
	var eng *Engine
	app := &captureApp{got: &eng}

	err := Run(app, Config{Console: console.Discard{}, HideCursor: true},
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return rend, nil },
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if eng.CursorX != 430 || eng.CursorY != 285 {
		t.Fatalf("cursor = %v, %v; want 430, 285", eng.CursorX, eng.CursorY)
	}
	if rend.rects != 0 {
		t.Fatalf("hidden cursor drew %d rects", rend.rects)
	}
}

type captureApp struct{ got **Engine }

func (a *captureApp) OnStart(e *Engine)         { *a.got = e }
func (a *captureApp) OnUpdate(*Engine, float64) {}
func (a *captureApp) OnRender(*Engine, float64) {}
func (a *captureApp) OnShutdown(*Engine)        {}

func TestClampCursor(t *testing.T) {
	if got := clamp(-3, 0, 10); got != 0 {
		t.Fatalf("clamp low = %v", got)
	}
	if got := clamp(30, 0, 10); got != 10 {
		t.Fatalf("clamp high = %v", got)
	}
}
