package core

import (
	"time"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/config"
	"github.com/hubastard/groveui/engine/console"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/ui"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer/input init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // issue UI calls here; alpha is the interpolation factor [0..1]
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *input.Input
	UI       *ui.UI
	Settings *config.Values
	Console  console.Console
	Layers   LayerStack

	// Cursor is the UI pointer in screen units, moved by relative mouse or
	// joystick motion.
	CursorX, CursorY float32

	start time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction. The window is also the platform event source.
type Window interface {
	input.Source
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	Size() (int, int)
	SetTitle(title string)
	Destroy()
}

// Renderer is the UI renderer plus frame management.
type Renderer interface {
	ui.Renderer
	// Resize receives the framebuffer size in pixels and the window size in
	// screen units.
	Resize(fbW, fbH int, screenW, screenH float32)
	Clear(c colors.Color)
	BeginFrame()
	EndFrame()
	Shutdown()
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color

	// SettingsPath is the TOML file holding config.Values. It is loaded at
	// start and saved on exit; empty keeps the settings in memory.
	SettingsPath string

	// Joysticks may be nil to run without joystick support.
	Joysticks input.JoystickDriver

	// Console receives engine diagnostics; nil logs through slog.
	Console console.Console

	// HideCursor skips drawing the software cursor.
	HideCursor bool
}
