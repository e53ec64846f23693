package geom

import "errors"

// MaxClipDepth is the deepest supported nesting of clip regions.
const MaxClipDepth = 16

var (
	ErrClipOverflow  = errors.New("geom: clip nesting depth exceeded")
	ErrClipUnderflow = errors.New("geom: clip stack is empty")
)

// ClipStack is a bounded LIFO of clip rectangles. Every entry already holds
// the intersection with the entries below it, so the effective clip region is
// always the top entry.
type ClipStack struct {
	Screen Rect

	clips [MaxClipDepth]Rect
	n     int
}

// Push intersects r with the current clip area (the screen when the stack is
// empty) and makes the result current.
func (s *ClipStack) Push(r Rect) error {
	if s.n == MaxClipDepth {
		return ErrClipOverflow
	}
	base := s.Screen
	if s.n > 0 {
		base = s.clips[s.n-1]
	}
	s.clips[s.n] = r.Intersect(base)
	s.n++
	return nil
}

// Pop removes the innermost clip region.
func (s *ClipStack) Pop() error {
	if s.n == 0 {
		return ErrClipUnderflow
	}
	s.n--
	return nil
}

// IsClipped reports whether any clip region is active.
func (s *ClipStack) IsClipped() bool { return s.n > 0 }

// Depth is the number of active clip regions.
func (s *ClipStack) Depth() int { return s.n }

// Area returns the effective clip rectangle, or the screen when nothing is
// clipped.
func (s *ClipStack) Area() Rect {
	if s.n == 0 {
		return s.Screen
	}
	return s.clips[s.n-1]
}

// Reset drops every clip region.
func (s *ClipStack) Reset() { s.n = 0 }
