package core

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/hubastard/groveui/engine/config"
	"github.com/hubastard/groveui/engine/console"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/ui"
)

// Run wires the platform window, renderer, input and UI and executes the
// main loop until the window closes or the platform requests exit.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	con := cfg.Console
	if con == nil {
		con = console.New(nil, console.LevelAddInfo)
	}

	settings := config.Default()
	if cfg.SettingsPath != "" {
		loaded, err := config.Load(cfg.SettingsPath)
		if err != nil {
			console.Printf(con, console.LevelStandard, "engine", "%v, using defaults", err)
		} else {
			settings = *loaded
		}
	}

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	in := input.New(win, cfg.Joysticks, &settings, con)
	in.Init()
	defer in.Close()

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    in,
		UI:       ui.New(in, rend, &settings),
		Settings: &settings,
		Console:  con,
		start:    time.Now(),
	}
	fbW, fbH := -1, -1
	resize := func() {
		w, h := win.FramebufferSize()
		if w < 1 || h < 1 || (w == fbW && h == fbH) {
			return
		}
		fbW, fbH = w, h
		sw, sh := win.Size()
		rend.Resize(w, h, float32(sw), float32(sh))
	}
	resize()
	eng.CursorX, eng.CursorY = rend.ScreenWidth()/2, rend.ScreenHeight()/2

	app.OnStart(eng)
	eng.Layers.ForEach(func(l Layer) { l.OnAttach(eng) })

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		if quit := in.Update(); quit {
			break
		}
		resize()

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		eng.Layers.dispatch(eng, in.Events())
		eng.updateCursor()
		eng.UI.Update(eng.CursorX, eng.CursorY, eng.CursorX, eng.CursorY)

		// Render
		rend.BeginFrame()
		rend.Clear(cfg.ClearColor)
		eng.UI.StartCheck()
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		eng.UI.FinishCheck()
		if !cfg.HideCursor {
			eng.drawCursor()
		}
		rend.EndFrame()

		// Present
		win.SwapBuffers()
	}

	eng.Layers.ForEachReverse(func(l Layer) bool {
		l.OnDetach(eng)
		return false
	})
	app.OnShutdown(eng)

	if cfg.SettingsPath != "" {
		if err := config.Save(cfg.SettingsPath, &settings); err != nil {
			console.Printf(con, console.LevelStandard, "engine", "%v", err)
		}
	}
	log.Println("Engine exit")
	return nil
}
