package input

import (
	"math"

	"github.com/hubastard/groveui/engine/console"
)

// joysticks is the registry of opened devices. selected is -1 only while
// devices is empty.
type joysticks struct {
	devices      []Joystick
	selected     int
	selectedGUID string
}

func (i *Input) initJoysticks() {
	if i.joyDrv == nil {
		return
	}
	if err := i.joyDrv.Init(); err != nil {
		console.Printf(i.con, console.LevelStandard, "joystick", "unable to init joystick support: %v", err)
		return
	}

	n := i.joyDrv.NumJoysticks()
	if n == 0 {
		i.con.Print(console.LevelAddInfo, "joystick", "No joysticks found")
		return
	}
	console.Printf(i.con, console.LevelAddInfo, "joystick", "%d joystick(s) found", n)

	for idx := 0; idx < n; idx++ {
		js, err := i.joyDrv.Open(idx)
		if err != nil {
			console.Printf(i.con, console.LevelStandard, "joystick", "could not open joystick %d: %v", idx, err)
			continue
		}
		i.joy.devices = append(i.joy.devices, js)

		console.Printf(i.con, console.LevelAddInfo, "joystick", "opened joystick %d: %s (axes %d, buttons %d, hats %d)",
			idx, js.Name(), js.NumAxes(), js.NumButtons(), js.NumHats())
	}
	i.activeJoystick()
}

func (i *Input) closeJoysticks() {
	for _, js := range i.joy.devices {
		if js.Attached() {
			js.Close()
		}
	}
	i.joy = joysticks{selected: -1}
}

// activeJoystick resolves the configured device, falling back to the first
// one and writing its GUID back to the configuration.
func (i *Input) activeJoystick() Joystick {
	j := &i.joy
	if len(j.devices) == 0 {
		return nil
	}
	if j.selectedGUID != "" && j.selectedGUID != i.cfg.JoystickGUID {
		j.selected = -1
	}
	if j.selected == -1 {
		for idx, js := range j.devices {
			if js.GUID() == i.cfg.JoystickGUID {
				j.selected = idx
				j.selectedGUID = i.cfg.JoystickGUID
				break
			}
		}
		if j.selected == -1 {
			j.selected = 0
			i.cfg.JoystickGUID = j.devices[0].GUID()
			j.selectedGUID = i.cfg.JoystickGUID
		}
	}
	return j.devices[j.selected]
}

func (i *Input) mustJoystick(what string) Joystick {
	js := i.activeJoystick()
	if js == nil {
		panic("input: requesting joystick " + what + ", but no joysticks were initialized")
	}
	return js
}

// NumJoysticks returns the number of opened devices.
func (i *Input) NumJoysticks() int { return len(i.joy.devices) }

// SelectedJoystickIndex returns the index of the active device, or -1.
func (i *Input) SelectedJoystickIndex() int {
	i.activeJoystick()
	return i.joy.selected
}

// SelectNextJoystick stores the GUID of the device after the active one in
// the configuration. It takes effect on the next joystick query.
func (i *Input) SelectNextJoystick() {
	n := len(i.joy.devices)
	if n <= 1 {
		return
	}
	i.activeJoystick()
	next := (i.joy.selected + 1) % n
	i.cfg.JoystickGUID = i.joy.devices[next].GUID()
}

// JoystickName panics without a device.
func (i *Input) JoystickName() string {
	return i.mustJoystick("name").Name()
}

// JoystickNumAxes panics without a device.
func (i *Input) JoystickNumAxes() int {
	return i.mustJoystick("axes count").NumAxes()
}

// JoystickAxisValue returns the axis position in [-1, 1]. It panics without
// a device.
func (i *Input) JoystickAxisValue(axis int) float32 {
	v := i.mustJoystick("axis value").Axis(axis)
	return (float32(v)-AxisMin)/float32(AxisMax-AxisMin)*2 - 1
}

func (i *Input) joystickPos() (x, y, l float32, ok bool) {
	if !i.cfg.JoystickEnable || i.activeJoystick() == nil {
		return 0, 0, 0, false
	}
	x = i.JoystickAxisValue(i.cfg.JoystickX)
	y = i.JoystickAxisValue(i.cfg.JoystickY)
	l = float32(math.Hypot(float64(x), float64(y)))
	return x, y, l, l > i.cfg.DeadZone()
}

// JoystickRelative returns a cursor velocity from the configured axes. Past
// the dead zone the speed grows linearly from a small minimum up to the
// configured joystick speed at full deflection. Only valid in relative mouse
// mode.
func (i *Input) JoystickRelative() (x, y float32, ok bool) {
	if !i.relative {
		return 0, 0, false
	}
	x, y, l, ok := i.joystickPos()
	if !ok {
		return 0, 0, false
	}
	dz := i.cfg.DeadZone()
	factor := i.cfg.JoystickSpeed * max((l-dz)/(1-dz), 0.001) / l
	return x * factor, y * factor, true
}

// JoystickAbsolute returns the raw axis position once outside the dead zone.
func (i *Input) JoystickAbsolute() (x, y float32, ok bool) {
	x, y, _, ok = i.joystickPos()
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}
