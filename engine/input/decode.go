package input

type actionKind uint8

const (
	actNone actionKind = iota
	actKey
	actHat
	actEdit
	actText
	actCandidates
	actQuit
)

// action is the canonical form of a raw event.
type action struct {
	kind  actionKind
	key   Key
	flags Flags
	text  string

	// mouse button presses
	clicks    int
	leftClick bool

	// composition
	start, length int

	candidates []string
	selected   int
	open       bool
}

// decode normalises a raw event without looking at any input state.
func decode(ev RawEvent) action {
	switch e := ev.(type) {
	case RawKey:
		if !e.Key.Valid() || e.Key.IsDevice() {
			return action{}
		}
		f := pressOrRelease(e.Down)
		if e.Down && e.Repeat {
			f |= FlagRepeat
		}
		return action{kind: actKey, key: e.Key, flags: f}

	case RawMouseButton:
		k := mouseButtonKey(e.Button)
		if k == KeyUnknown {
			return action{}
		}
		return action{
			kind:      actKey,
			key:       k,
			flags:     pressOrRelease(e.Down),
			clicks:    e.Clicks,
			leftClick: e.Button == MouseLeft && e.Down,
		}

	case RawMouseWheel:
		var k Key
		switch {
		case e.Y > 0:
			k = KeyMouseWheelUp
		case e.Y < 0:
			k = KeyMouseWheelDown
		default:
			return action{}
		}
		// Wheel steps have no hold duration: one combined event.
		return action{kind: actKey, key: k, flags: FlagPress | FlagRelease}

	case RawJoyButton:
		if e.Button < 0 || e.Button >= NumJoystickButtons {
			return action{}
		}
		return action{kind: actKey, key: KeyJoystickButton0 + Key(e.Button), flags: pressOrRelease(e.Down)}

	case RawJoyHat:
		// KeyUnknown means centered; apply releases the previous direction.
		return action{kind: actHat, key: hatKey(e.Value)}

	case RawTextEditing:
		return action{kind: actEdit, text: e.Text, start: e.Start, length: e.Length}

	case RawTextInput:
		return action{kind: actText, text: e.Text}

	case RawCandidates:
		return action{kind: actCandidates, open: e.Open, candidates: e.List, selected: e.Selected}

	case RawQuit:
		return action{kind: actQuit}
	}
	return action{}
}

func pressOrRelease(down bool) Flags {
	if down {
		return FlagPress
	}
	return FlagRelease
}

func mouseButtonKey(b MouseButton) Key {
	switch {
	case b == MouseLeft:
		return KeyMouse1
	case b == MouseRight:
		return KeyMouse2
	case b == MouseMiddle:
		return KeyMouse3
	case b >= 4 && b <= 9:
		return KeyMouse1 + Key(b-1)
	}
	return KeyUnknown
}

func hatKey(h Hat) Key {
	switch h {
	case HatLeftUp:
		return KeyJoyHatLeftUp
	case HatUp:
		return KeyJoyHatUp
	case HatRightUp:
		return KeyJoyHatRightUp
	case HatLeft:
		return KeyJoyHatLeft
	case HatRight:
		return KeyJoyHatRight
	case HatLeftDown:
		return KeyJoyHatLeftDown
	case HatDown:
		return KeyJoyHatDown
	case HatRightDown:
		return KeyJoyHatRightDown
	}
	return KeyUnknown
}
