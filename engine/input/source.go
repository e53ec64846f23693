package input

// Source is the platform event source the input layer drains once per frame.
// PollEvent must never block.
type Source interface {
	// PumpEvents gathers pending OS events so PollEvent can return them.
	PumpEvents()
	PollEvent() (RawEvent, bool)

	// MouseButtons returns the held mouse buttons; bit n-1 is MouseButton n.
	MouseButtons() uint32
	// RelativeMouseState returns the motion since the previous call.
	RelativeMouseState() (dx, dy int)
	SetRelativeMouseMode(enabled bool)
	ShowCursor(show bool)
	// SetRelativeWarp selects warping the cursor instead of using raw motion
	// while in relative mode.
	SetRelativeWarp(warp bool) error

	ClipboardText() string
	SetClipboardText(text string)

	StartTextInput()
	StopTextInput()
	SetTextInputRect(x, y, w, h float32)
}

// Raw axis range reported by joystick drivers.
const (
	AxisMin = -32768
	AxisMax = 32767
)

// JoystickDriver enumerates and opens joystick devices.
type JoystickDriver interface {
	Init() error
	NumJoysticks() int
	Open(index int) (Joystick, error)
}

// Joystick is one opened device.
type Joystick interface {
	Name() string
	// GUID identifies the device model; it is what configuration stores.
	GUID() string
	NumAxes() int
	NumButtons() int
	NumHats() int
	// Axis returns the raw position in [AxisMin, AxisMax].
	Axis(index int) int16
	Attached() bool
	Close()
}
