package ui

import "github.com/hubastard/groveui/engine/colors"

// ButtonColorFunc picks a widget background from its interaction state.
type ButtonColorFunc interface {
	Color(active, hovered bool) colors.Color
}

// DarkButtonColors darkens the background behind a widget.
type DarkButtonColors struct{}

func (DarkButtonColors) Color(active, hovered bool) colors.Color {
	switch {
	case active:
		return colors.Color{0.15, 0.15, 0.15, 0.25}
	case hovered:
		return colors.Color{0.5, 0.5, 0.5, 0.25}
	}
	return colors.Color{0, 0, 0, 0.25}
}

// LightButtonColors brightens it.
type LightButtonColors struct{}

func (LightButtonColors) Color(active, hovered bool) colors.Color {
	switch {
	case active:
		return colors.Color{1, 1, 1, 0.4}
	case hovered:
		return colors.Color{1, 1, 1, 0.6}
	}
	return colors.Color{1, 1, 1, 0.5}
}
