package main

import (
	"flag"
	"log"
	"time"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/console"
	"github.com/hubastard/groveui/engine/core"
	glbackend "github.com/hubastard/groveui/engine/gfx/gl"
	"github.com/hubastard/groveui/engine/input"
	"github.com/hubastard/groveui/engine/platform"
	"github.com/hubastard/groveui/engine/text"
)

type App struct {
	lastFrame  time.Time
	tick       int
	rend       *glbackend.RendererGL
	menu       *LayerMenu
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	a.menu = NewLayerMenu()
	e.Layers.Push(a.menu)

	a.debugLayer = &LayerDebug{rend: a.rend}
	e.Layers.Push(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	// Calculate frame duration
	now := time.Now()
	if a.debugLayer != nil && !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debugLayer.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	settings := flag.String("settings", "settings.toml", "settings file")
	debug := flag.Bool("debug", false, "print debug console output")
	flag.Parse()

	level := console.LevelAddInfo
	if *debug {
		level = console.LevelDebug
	}

	cfg := core.Config{
		Title:        "Grove UI Sandbox",
		Width:        1280,
		Height:       720,
		VSync:        true,
		ClearColor:   colors.DarkGray,
		SettingsPath: *settings,
		Joysticks:    platform.NewJoystickDriver(),
		Console:      console.New(nil, level),
	}
	app := &App{}

	atlas, err := text.LoadDefault(32)
	if err != nil {
		log.Fatal(err)
	}
	defer atlas.Close()

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(atlas)
		if err != nil {
			return nil, err
		}
		app.rend = r
		return r, nil
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}

// keyDown reports a fresh press of k in ev.
func keyDown(ev input.Event, k input.Key) bool {
	return ev.Key == k && ev.Flags&input.FlagPress != 0 && ev.Flags&input.FlagRepeat == 0
}
