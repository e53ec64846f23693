// Package lineinput is a single-line text buffer driven by input events.
package lineinput

import (
	"strings"
	"unicode/utf8"

	"github.com/hubastard/groveui/engine/input"
)

// Buffer holds one editable line. The cursor is a byte offset that always
// sits on a code point boundary.
type Buffer struct {
	text   string
	cursor int

	// MaxBytes and MaxChars bound the content. Zero means unbounded.
	MaxBytes int
	MaxChars int
}

// New returns an empty buffer bounded to maxBytes and maxChars.
func New(maxBytes, maxChars int) *Buffer {
	return &Buffer{MaxBytes: maxBytes, MaxChars: maxChars}
}

func (b *Buffer) Text() string { return b.text }

// Cursor returns the cursor as a byte offset into Text.
func (b *Buffer) Cursor() int { return b.cursor }

// NumChars returns the number of code points.
func (b *Buffer) NumChars() int { return utf8.RuneCountInString(b.text) }

// Set replaces the content and moves the cursor to the end.
func (b *Buffer) Set(text string) {
	b.text = ""
	b.cursor = 0
	b.Insert(text)
}

func (b *Buffer) Clear() { b.Set("") }

// SetCursor moves the cursor to the code point boundary at or before off.
func (b *Buffer) SetCursor(off int) {
	off = max(0, min(off, len(b.text)))
	for off > 0 && off < len(b.text) && !utf8.RuneStart(b.text[off]) {
		off--
	}
	b.cursor = off
}

// Insert adds text at the cursor, dropping whatever does not fit. Control
// characters are skipped.
func (b *Buffer) Insert(text string) bool {
	var sb strings.Builder
	bytes, chars := len(b.text), b.NumChars()
	for _, r := range text {
		if r < 32 || r == utf8.RuneError {
			continue
		}
		size := utf8.RuneLen(r)
		if b.MaxBytes > 0 && bytes+size > b.MaxBytes {
			break
		}
		if b.MaxChars > 0 && chars+1 > b.MaxChars {
			break
		}
		sb.WriteRune(r)
		bytes += size
		chars++
	}
	if sb.Len() == 0 {
		return false
	}
	ins := sb.String()
	b.text = b.text[:b.cursor] + ins + b.text[b.cursor:]
	b.cursor += len(ins)
	return true
}

func (b *Buffer) prev() int {
	if b.cursor == 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.cursor])
	return b.cursor - size
}

func (b *Buffer) next() int {
	if b.cursor >= len(b.text) {
		return len(b.text)
	}
	_, size := utf8.DecodeRuneInString(b.text[b.cursor:])
	return b.cursor + size
}

// ProcessInput applies one input event and reports whether the text
// changed. Composition updates carry no text and are ignored.
func (b *Buffer) ProcessInput(ev input.Event) bool {
	if ev.IsText() {
		return ev.Text != "" && b.Insert(ev.Text)
	}
	if !ev.Pressed() {
		return false
	}

	switch ev.Key {
	case input.KeyBackspace:
		if p := b.prev(); p != b.cursor {
			b.text = b.text[:p] + b.text[b.cursor:]
			b.cursor = p
			return true
		}
	case input.KeyDelete:
		if n := b.next(); n != b.cursor {
			b.text = b.text[:b.cursor] + b.text[n:]
			return true
		}
	case input.KeyLeft:
		b.cursor = b.prev()
	case input.KeyRight:
		b.cursor = b.next()
	case input.KeyHome:
		b.cursor = 0
	case input.KeyEnd:
		b.cursor = len(b.text)
	}
	return false
}
