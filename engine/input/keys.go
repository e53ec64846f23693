package input

import (
	"strconv"
	"strings"
)

// Key is a platform-independent identifier for a keyboard key, mouse button,
// wheel direction or joystick button/hat direction. Platform adapters
// translate their own codes into this space before events reach the input
// layer.
type Key int

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyCapsLock

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	KeyNumLock
	KeyKPDivide
	KeyKPMultiply
	KeyKPMinus
	KeyKPPlus
	KeyKPEnter
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPPeriod

	KeyLCtrl
	KeyLShift
	KeyLAlt
	KeyLGui
	KeyRCtrl
	KeyRShift
	KeyRAlt
	KeyRGui
	KeyMenu

	// Device keys. Everything from KeyMouse1 on is produced directly by the
	// input layer rather than translated from a platform keycode.
	KeyMouse1
	KeyMouse2
	KeyMouse3
	KeyMouse4
	KeyMouse5
	KeyMouse6
	KeyMouse7
	KeyMouse8
	KeyMouse9
	KeyMouseWheelUp
	KeyMouseWheelDown

	KeyJoystickButton0
)

// KeyJoystickButtonLast is the highest mapped joystick button.
const KeyJoystickButtonLast = KeyJoystickButton0 + NumJoystickButtons - 1

const (
	KeyJoyHatLeftUp = KeyJoystickButton0 + NumJoystickButtons + iota
	KeyJoyHatUp
	KeyJoyHatRightUp
	KeyJoyHatLeft
	KeyJoyHatRight
	KeyJoyHatLeftDown
	KeyJoyHatDown
	KeyJoyHatRightDown

	KeyLast
)

// NumJoystickButtons is the number of joystick buttons mapped into the key
// space. Higher buttons are ignored.
const NumJoystickButtons = 20

// IsDevice reports whether k is a mouse, wheel or joystick key.
func (k Key) IsDevice() bool { return k >= KeyMouse1 && k < KeyLast }

// Valid reports whether k indexes the key state array.
func (k Key) Valid() bool { return k > KeyUnknown && k < KeyLast }

// IsModifier reports whether k is a shift, ctrl, alt or gui key.
func (k Key) IsModifier() bool { return k >= KeyLCtrl && k <= KeyRGui }

func (k Key) String() string {
	if n := KeyName(k); n != "" {
		return n
	}
	return "&" + strconv.Itoa(int(k))
}

var keyNames [KeyLast]string

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = "f" + strconv.Itoa(int(k-KeyF1)+1)
	}
	for k := KeyKP0; k <= KeyKP9; k++ {
		keyNames[k] = "kp_" + strconv.Itoa(int(k-KeyKP0))
	}
	for k := KeyMouse1; k <= KeyMouse9; k++ {
		keyNames[k] = "mouse" + strconv.Itoa(int(k-KeyMouse1)+1)
	}
	for k := KeyJoystickButton0; k <= KeyJoystickButtonLast; k++ {
		keyNames[k] = "joystick" + strconv.Itoa(int(k-KeyJoystickButton0))
	}
	named := map[Key]string{
		KeyReturn:          "return",
		KeyEscape:          "escape",
		KeyBackspace:       "backspace",
		KeyTab:             "tab",
		KeySpace:           "space",
		KeyMinus:           "minus",
		KeyEquals:          "equals",
		KeyLeftBracket:     "leftbracket",
		KeyRightBracket:    "rightbracket",
		KeyBackslash:       "backslash",
		KeySemicolon:       "semicolon",
		KeyApostrophe:      "apostrophe",
		KeyGrave:           "grave",
		KeyComma:           "comma",
		KeyPeriod:          "period",
		KeySlash:           "slash",
		KeyCapsLock:        "capslock",
		KeyPrintScreen:     "printscreen",
		KeyScrollLock:      "scrolllock",
		KeyPause:           "pause",
		KeyInsert:          "insert",
		KeyHome:            "home",
		KeyPageUp:          "pageup",
		KeyDelete:          "delete",
		KeyEnd:             "end",
		KeyPageDown:        "pagedown",
		KeyRight:           "right",
		KeyLeft:            "left",
		KeyDown:            "down",
		KeyUp:              "up",
		KeyNumLock:         "numlock",
		KeyKPDivide:        "kp_divide",
		KeyKPMultiply:      "kp_multiply",
		KeyKPMinus:         "kp_minus",
		KeyKPPlus:          "kp_plus",
		KeyKPEnter:         "kp_enter",
		KeyKPPeriod:        "kp_period",
		KeyLCtrl:           "lctrl",
		KeyLShift:          "lshift",
		KeyLAlt:            "lalt",
		KeyLGui:            "lgui",
		KeyRCtrl:           "rctrl",
		KeyRShift:          "rshift",
		KeyRAlt:            "ralt",
		KeyRGui:            "rgui",
		KeyMenu:            "menu",
		KeyMouseWheelUp:    "mousewheelup",
		KeyMouseWheelDown:  "mousewheeldown",
		KeyJoyHatLeftUp:    "joy_hat_leftup",
		KeyJoyHatUp:        "joy_hat_up",
		KeyJoyHatRightUp:   "joy_hat_rightup",
		KeyJoyHatLeft:      "joy_hat_left",
		KeyJoyHatRight:     "joy_hat_right",
		KeyJoyHatLeftDown:  "joy_hat_leftdown",
		KeyJoyHatDown:      "joy_hat_down",
		KeyJoyHatRightDown: "joy_hat_rightdown",
	}
	for k, n := range named {
		keyNames[k] = n
	}
}

// KeyName returns the bind name of k, or "" for unnamed keys.
func KeyName(k Key) string {
	if k < 0 || k >= KeyLast {
		return ""
	}
	return keyNames[k]
}

// KeyByName resolves a bind name (case-insensitive). "&N" addresses a key by
// its numeric value.
func KeyByName(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KeyUnknown, false
	}
	if strings.HasPrefix(name, "&") {
		n, err := strconv.Atoi(name[1:])
		if err != nil || !Key(n).Valid() {
			return KeyUnknown, false
		}
		return Key(n), true
	}
	for k := KeyUnknown + 1; k < KeyLast; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return KeyUnknown, false
}
