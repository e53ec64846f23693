package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/groveui/engine/input"
)

// joyState is the polled button and hat state of one device.
type joyState struct {
	buttons []bool
	hats    []input.Hat
}

func actionsDown(acts []glfw.Action) []bool {
	out := make([]bool, len(acts))
	for i, a := range acts {
		out[i] = a != glfw.Release
	}
	return out
}

func hatValues(hs []glfw.JoystickHatState) []input.Hat {
	out := make([]input.Hat, len(hs))
	for i, h := range hs {
		out[i] = input.Hat(h)
	}
	return out
}

// diffJoystick appends an event for every button or hat that changed from
// prev to cur. A device seen for the first time only reports what is held.
func diffJoystick(prev, cur joyState, dst []input.RawEvent) []input.RawEvent {
	for i, down := range cur.buttons {
		was := i < len(prev.buttons) && prev.buttons[i]
		if down != was {
			dst = append(dst, input.RawJoyButton{Button: i, Down: down})
		}
	}
	for i, h := range cur.hats {
		var was input.Hat
		if i < len(prev.hats) {
			was = prev.hats[i]
		}
		if h != was {
			dst = append(dst, input.RawJoyHat{Value: h})
		}
	}
	return dst
}

// axisToRaw maps a GLFW axis in [-1, 1] onto the raw driver range.
func axisToRaw(v float32) int16 {
	switch {
	case v <= -1:
		return input.AxisMin
	case v >= 1:
		return input.AxisMax
	case v < 0:
		return int16(v * -input.AxisMin)
	default:
		return int16(v * input.AxisMax)
	}
}

// JoystickDriver enumerates GLFW joysticks. GLFW must already be
// initialised, which NewGLFWWindow does.
type JoystickDriver struct {
	ids []glfw.Joystick
}

func NewJoystickDriver() *JoystickDriver { return &JoystickDriver{} }

func (d *JoystickDriver) Init() error {
	d.ids = d.ids[:0]
	for id := glfw.Joystick1; id <= glfw.JoystickLast; id++ {
		if id.Present() {
			d.ids = append(d.ids, id)
		}
	}
	return nil
}

func (d *JoystickDriver) NumJoysticks() int { return len(d.ids) }

func (d *JoystickDriver) Open(index int) (input.Joystick, error) {
	if index < 0 || index >= len(d.ids) {
		return nil, fmt.Errorf("joystick index %d out of range", index)
	}
	id := d.ids[index]
	if !id.Present() {
		return nil, fmt.Errorf("joystick %d disconnected", index)
	}
	return &glfwJoystick{id: id, name: id.GetName(), guid: id.GetGUID()}, nil
}

type glfwJoystick struct {
	id         glfw.Joystick
	name, guid string
}

func (j *glfwJoystick) Name() string    { return j.name }
func (j *glfwJoystick) GUID() string    { return j.guid }
func (j *glfwJoystick) NumAxes() int    { return len(j.id.GetAxes()) }
func (j *glfwJoystick) NumButtons() int { return len(j.id.GetButtons()) }
func (j *glfwJoystick) NumHats() int    { return len(j.id.GetHats()) }
func (j *glfwJoystick) Attached() bool  { return j.id.Present() }

// Close is a no-op; GLFW devices are not opened.
func (j *glfwJoystick) Close() {}

func (j *glfwJoystick) Axis(index int) int16 {
	axes := j.id.GetAxes()
	if index < 0 || index >= len(axes) {
		return 0
	}
	return axisToRaw(axes[index])
}
