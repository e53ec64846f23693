package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/groveui/engine/input"
)

var keyTable = map[glfw.Key]input.Key{
	glfw.KeyEnter:        input.KeyReturn,
	glfw.KeyEscape:       input.KeyEscape,
	glfw.KeyBackspace:    input.KeyBackspace,
	glfw.KeyTab:          input.KeyTab,
	glfw.KeySpace:        input.KeySpace,
	glfw.KeyMinus:        input.KeyMinus,
	glfw.KeyEqual:        input.KeyEquals,
	glfw.KeyLeftBracket:  input.KeyLeftBracket,
	glfw.KeyRightBracket: input.KeyRightBracket,
	glfw.KeyBackslash:    input.KeyBackslash,
	glfw.KeySemicolon:    input.KeySemicolon,
	glfw.KeyApostrophe:   input.KeyApostrophe,
	glfw.KeyGraveAccent:  input.KeyGrave,
	glfw.KeyComma:        input.KeyComma,
	glfw.KeyPeriod:       input.KeyPeriod,
	glfw.KeySlash:        input.KeySlash,
	glfw.KeyCapsLock:     input.KeyCapsLock,

	glfw.KeyPrintScreen: input.KeyPrintScreen,
	glfw.KeyScrollLock:  input.KeyScrollLock,
	glfw.KeyPause:       input.KeyPause,
	glfw.KeyInsert:      input.KeyInsert,
	glfw.KeyHome:        input.KeyHome,
	glfw.KeyPageUp:      input.KeyPageUp,
	glfw.KeyDelete:      input.KeyDelete,
	glfw.KeyEnd:         input.KeyEnd,
	glfw.KeyPageDown:    input.KeyPageDown,
	glfw.KeyRight:       input.KeyRight,
	glfw.KeyLeft:        input.KeyLeft,
	glfw.KeyDown:        input.KeyDown,
	glfw.KeyUp:          input.KeyUp,

	glfw.KeyNumLock:    input.KeyNumLock,
	glfw.KeyKPDivide:   input.KeyKPDivide,
	glfw.KeyKPMultiply: input.KeyKPMultiply,
	glfw.KeyKPSubtract: input.KeyKPMinus,
	glfw.KeyKPAdd:      input.KeyKPPlus,
	glfw.KeyKPEnter:    input.KeyKPEnter,
	glfw.KeyKPDecimal:  input.KeyKPPeriod,

	glfw.KeyLeftControl:  input.KeyLCtrl,
	glfw.KeyLeftShift:    input.KeyLShift,
	glfw.KeyLeftAlt:      input.KeyLAlt,
	glfw.KeyLeftSuper:    input.KeyLGui,
	glfw.KeyRightControl: input.KeyRCtrl,
	glfw.KeyRightShift:   input.KeyRShift,
	glfw.KeyRightAlt:     input.KeyRAlt,
	glfw.KeyRightSuper:   input.KeyRGui,
	glfw.KeyMenu:         input.KeyMenu,
}

func translateKey(k glfw.Key) input.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return input.KeyA + input.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return input.Key0 + input.Key(k-glfw.Key0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return input.KeyF1 + input.Key(k-glfw.KeyF1)
	case k >= glfw.KeyKP0 && k <= glfw.KeyKP9:
		return input.KeyKP0 + input.Key(k-glfw.KeyKP0)
	}
	if out, ok := keyTable[k]; ok {
		return out
	}
	return input.KeyUnknown
}
