package text

import (
	"unicode/utf8"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Options controls Layout.
type Options struct {
	Size      float32
	Align     Align
	LineWidth float32 // wrap width; <= 0 disables wrapping
	Color     colors.Color

	// Bytes [HighlightStart, HighlightEnd) use HighlightColor.
	HighlightStart, HighlightEnd int
	HighlightColor               colors.Color
}

// Quad is one glyph in screen space with its atlas UVs.
type Quad struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
	Color          colors.Color
}

// Span is a byte range of the laid out string.
type Span struct{ Start, End int }

func (fa *Atlas) glyph(r rune) (Glyph, bool) {
	if g, ok := fa.Glyphs[r]; ok {
		return g, true
	}
	g, ok := fa.Glyphs['?']
	return g, ok
}

// advance returns the pen advance for r after prev in atlas pixels.
func (fa *Atlas) advance(prev, r rune) float32 {
	g, ok := fa.glyph(r)
	if !ok {
		return 0
	}
	return g.Advance + fa.Kerning[[2]rune{prev, r}]
}

// Measure returns the width of the widest line of s at size.
func (fa *Atlas) Measure(s string, size float32) float32 {
	scale := size / fa.SizePx
	var width, lineW float32
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			prev = -1
			continue
		}
		lineW += fa.advance(prev, r) * scale
		prev = r
	}
	return max(width, lineW)
}

// Lines splits s at newlines and, with width > 0, wraps each line at word
// boundaries so no line is wider than width. A word wider than width is
// broken between code points.
func (fa *Atlas) Lines(s string, size, width float32) []Span {
	var out []Span
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '\n' {
			continue
		}
		if width > 0 {
			out = fa.wrap(s, start, i, size/fa.SizePx, width, out)
		} else {
			out = append(out, Span{start, i})
		}
		start = i + 1
	}
	return out
}

func (fa *Atlas) wrap(s string, start, end int, scale, width float32, out []Span) []Span {
	lineStart, lastBreak := start, -1
	var w float32
	prev := rune(-1)
	for i := start; i < end; {
		r, n := utf8.DecodeRuneInString(s[i:end])
		adv := fa.advance(prev, r) * scale
		if w+adv > width && i > lineStart {
			cut := i
			switch {
			case r == ' ':
				cut = i + n
			case lastBreak > lineStart:
				cut = lastBreak
			}
			out = append(out, Span{lineStart, cut})
			lineStart, lastBreak = cut, -1
			i, w, prev = cut, 0, -1
			continue
		}
		w += adv
		prev = r
		i += n
		if r == ' ' {
			lastBreak = i
		}
	}
	return append(out, Span{lineStart, end})
}

// Layout appends the glyph quads of s to dst. The block of lines is
// vertically centered in r and each line is aligned horizontally in r.
func (fa *Atlas) Layout(r geom.Rect, s string, opt Options, dst []Quad) []Quad {
	scale := opt.Size / fa.SizePx
	lineH := fa.LineHeight(opt.Size)
	lines := fa.Lines(s, opt.Size, opt.LineWidth)

	top := r.Y + (r.H-lineH*float32(len(lines)))/2
	for li, ln := range lines {
		w := fa.Measure(s[ln.Start:ln.End], opt.Size)
		x := r.X
		switch opt.Align {
		case AlignCenter:
			x += (r.W - w) / 2
		case AlignRight:
			x += r.W - w
		}
		baseline := top + float32(li)*lineH + fa.Ascent*scale

		prev := rune(-1)
		for i, ch := range s[ln.Start:ln.End] {
			off := ln.Start + i
			x += fa.Kerning[[2]rune{prev, ch}] * scale
			prev = ch
			g, ok := fa.glyph(ch)
			if !ok {
				continue
			}
			if g.W > 0 && g.H > 0 {
				c := opt.Color
				if off >= opt.HighlightStart && off < opt.HighlightEnd {
					c = opt.HighlightColor
				}
				x0 := x + g.BearingX*scale
				y0 := baseline - g.BearingY*scale
				dst = append(dst, Quad{
					X0: x0, Y0: y0,
					X1: x0 + float32(g.W)*scale, Y1: y0 + float32(g.H)*scale,
					U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
					Color: c,
				})
			}
			x += g.Advance * scale
		}
	}
	return dst
}
