package input

// RawEvent is an event as delivered by a platform Source. The input layer
// decodes every variant into one canonical action before touching state.
type RawEvent interface{ isRawEvent() }

// RawKey is a keyboard key transition. Auto-repeats arrive with Down and
// Repeat both set.
type RawKey struct {
	Key    Key
	Down   bool
	Repeat bool
}

func (RawKey) isRawEvent() {}

// MouseButton numbers buttons the way most platforms do: 1 left, 2 middle,
// 3 right, 4 and up for extra buttons.
type MouseButton int

const (
	MouseLeft   MouseButton = 1
	MouseMiddle MouseButton = 2
	MouseRight  MouseButton = 3
)

// RawMouseButton is a mouse button transition. Clicks is the platform's
// consecutive click count for presses.
type RawMouseButton struct {
	Button MouseButton
	Down   bool
	Clicks int
}

func (RawMouseButton) isRawEvent() {}

// RawMouseWheel is a wheel step; positive Y scrolls up.
type RawMouseWheel struct {
	Y int
}

func (RawMouseWheel) isRawEvent() {}

// RawJoyButton is a joystick button transition.
type RawJoyButton struct {
	Button int
	Down   bool
}

func (RawJoyButton) isRawEvent() {}

// Hat is a joystick hat position as a direction bitmask.
type Hat uint8

const (
	HatCentered Hat = 0
	HatUp       Hat = 1
	HatRight    Hat = 2
	HatDown     Hat = 4
	HatLeft     Hat = 8

	HatRightUp   = HatRight | HatUp
	HatRightDown = HatRight | HatDown
	HatLeftUp    = HatLeft | HatUp
	HatLeftDown  = HatLeft | HatDown
)

// RawJoyHat is a joystick hat motion.
type RawJoyHat struct {
	Value Hat
}

func (RawJoyHat) isRawEvent() {}

// RawTextEditing reports the in-progress IME composition. Start and Length
// count code points into Text.
type RawTextEditing struct {
	Text          string
	Start, Length int
}

func (RawTextEditing) isRawEvent() {}

// RawTextInput is committed text.
type RawTextInput struct {
	Text string
}

func (RawTextInput) isRawEvent() {}

// RawCandidates updates the IME candidate list. Open false closes it.
type RawCandidates struct {
	Open     bool
	List     []string
	Selected int
}

func (RawCandidates) isRawEvent() {}

// RawQuit asks the application to exit.
type RawQuit struct{}

func (RawQuit) isRawEvent() {}
