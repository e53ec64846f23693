package platform

import (
	"errors"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/input"
)

// Presses of the same button closer than this count as one click sequence.
const doubleClickTime = 0.5

// GLFWWindow implements core.Window and input.Source. Callbacks queue raw
// events which the input layer drains through PollEvent.
type GLFWWindow struct {
	w *glfw.Window

	queue []input.RawEvent
	head  int

	textInput bool

	relative     bool
	lastX, lastY float64
	relX, relY   float64

	lastClick  [8]float64
	clickCount [8]int

	joys map[glfw.Joystick]joyState
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win, joys: make(map[glfw.Joystick]joyState)}
	gw.lastX, gw.lastY = win.GetCursorPos()

	win.SetCloseCallback(func(*glfw.Window) { gw.push(input.RawQuit{}) })
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.relX += x - gw.lastX
		gw.relY += y - gw.lastY
		gw.lastX, gw.lastY = x, y
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := translateKey(key)
		if k == input.KeyUnknown {
			return
		}
		gw.push(input.RawKey{Key: k, Down: action != glfw.Release, Repeat: action == glfw.Repeat})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		if gw.textInput {
			gw.push(input.RawTextInput{Text: string(r)})
		}
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		gw.push(gw.mouseButton(b, action == glfw.Press, glfw.GetTime()))
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		switch {
		case yoff > 0:
			gw.push(input.RawMouseWheel{Y: 1})
		case yoff < 0:
			gw.push(input.RawMouseWheel{Y: -1})
		}
	})

	return gw, nil
}

func (g *GLFWWindow) push(ev input.RawEvent) { g.queue = append(g.queue, ev) }

func (g *GLFWWindow) mouseButton(b glfw.MouseButton, down bool, now float64) input.RawMouseButton {
	ev := input.RawMouseButton{Button: translateMouseButton(b), Down: down}
	if !down || int(b) < 0 || int(b) >= len(g.lastClick) {
		return ev
	}
	if g.clickCount[b] > 0 && now-g.lastClick[b] <= doubleClickTime {
		g.clickCount[b]++
	} else {
		g.clickCount[b] = 1
	}
	g.lastClick[b] = now
	ev.Clicks = g.clickCount[b]
	return ev
}

// core.Window impl
func (g *GLFWWindow) SwapBuffers()                { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool           { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) Size() (int, int)            { return g.w.GetSize() }
func (g *GLFWWindow) SetTitle(t string)           { g.w.SetTitle(t) }

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

// input.Source impl

// PumpEvents runs the GLFW callbacks and turns joystick state changes into
// button and hat events.
func (g *GLFWWindow) PumpEvents() {
	g.queue, g.head = g.queue[:0], 0
	glfw.PollEvents()
	for id := glfw.Joystick1; id <= glfw.JoystickLast; id++ {
		if !id.Present() {
			delete(g.joys, id)
			continue
		}
		cur := joyState{buttons: actionsDown(id.GetButtons()), hats: hatValues(id.GetHats())}
		g.queue = diffJoystick(g.joys[id], cur, g.queue)
		g.joys[id] = cur
	}
}

func (g *GLFWWindow) PollEvent() (input.RawEvent, bool) {
	if g.head >= len(g.queue) {
		return nil, false
	}
	ev := g.queue[g.head]
	g.head++
	return ev, true
}

func (g *GLFWWindow) MouseButtons() uint32 {
	var held uint32
	for b := glfw.MouseButton1; b <= glfw.MouseButtonLast; b++ {
		if g.w.GetMouseButton(b) != glfw.Release {
			held |= 1 << (translateMouseButton(b) - 1)
		}
	}
	return held
}

func (g *GLFWWindow) RelativeMouseState() (int, int) {
	dx, dy := math.Trunc(g.relX), math.Trunc(g.relY)
	g.relX -= dx
	g.relY -= dy
	return int(dx), int(dy)
}

func (g *GLFWWindow) SetRelativeMouseMode(enabled bool) {
	g.relative = enabled
	if enabled {
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	g.lastX, g.lastY = g.w.GetCursorPos()
	g.relX, g.relY = 0, 0
}

func (g *GLFWWindow) ShowCursor(show bool) {
	if g.relative {
		return
	}
	if show {
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
}

var errNoRawMotion = errors.New("raw mouse motion not supported")

// SetRelativeWarp with warp false asks for unaccelerated raw motion.
func (g *GLFWWindow) SetRelativeWarp(warp bool) error {
	if warp {
		g.w.SetInputMode(glfw.RawMouseMotion, glfw.False)
		return nil
	}
	if !glfw.RawMouseMotionSupported() {
		return errNoRawMotion
	}
	g.w.SetInputMode(glfw.RawMouseMotion, glfw.True)
	return nil
}

func (g *GLFWWindow) ClipboardText() string     { return g.w.GetClipboardString() }
func (g *GLFWWindow) SetClipboardText(s string) { g.w.SetClipboardString(s) }

func (g *GLFWWindow) StartTextInput() { g.textInput = true }
func (g *GLFWWindow) StopTextInput()  { g.textInput = false }

// SetTextInputRect is a no-op: GLFW 3.3 does not position the IME window.
func (g *GLFWWindow) SetTextInputRect(x, y, w, h float32) {}

func translateMouseButton(b glfw.MouseButton) input.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return input.MouseLeft
	case glfw.MouseButtonRight:
		return input.MouseRight
	case glfw.MouseButtonMiddle:
		return input.MouseMiddle
	default:
		return input.MouseButton(b) + 1
	}
}
