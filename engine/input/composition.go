package input

import "unicode/utf8"

const (
	// compositionInactive marks that no composition is open. Zero is a valid
	// active length for the rest of the frame that reported an empty edit.
	compositionInactive = -1

	// MaxCandidates bounds the IME candidate list.
	MaxCandidates = 16
	// MaxCompositionText bounds the composition buffer in bytes.
	MaxCompositionText = 256
)

type composition struct {
	text string
	// length is the byte length of text, or compositionInactive.
	length int
	// cursor and selection are byte offsets into text.
	cursor    int
	selection int

	candidates    [MaxCandidates]string
	numCandidates int
	selected      int
}

func newComposition() composition {
	return composition{length: compositionInactive, selected: -1}
}

func (c *composition) active() bool { return c.length != compositionInactive }

// edit replaces the composition. start and length count code points.
func (c *composition) edit(text string, start, length int) {
	c.text = truncateUTF8(text, MaxCompositionText)
	c.length = len(c.text)
	if c.length == 0 {
		c.cursor, c.selection = 0, 0
		return
	}
	c.cursor = forwardRunes(c.text, 0, start)
	c.selection = forwardRunes(c.text, c.cursor, length) - c.cursor
}

// commit ends the composition after text was committed.
func (c *composition) commit() {
	c.text = ""
	c.length = compositionInactive
	c.cursor, c.selection = 0, 0
}

// reset drops the composition and the candidate list.
func (c *composition) reset() {
	c.commit()
	c.numCandidates = 0
	c.selected = -1
}

// settle closes a composition that ended empty during the frame.
func (c *composition) settle() {
	if c.length == 0 {
		c.length = compositionInactive
	}
}

func (c *composition) setCandidates(open bool, list []string, selected int) {
	if !open {
		c.numCandidates = 0
		c.selected = -1
		return
	}
	n := min(len(list), MaxCandidates)
	for i := 0; i < n; i++ {
		c.candidates[i] = list[i]
	}
	c.numCandidates = n
	if selected < 0 || selected >= n {
		selected = -1
	}
	c.selected = selected
}

// forwardRunes advances from byte offset off by n code points, stopping at
// the end of s.
func forwardRunes(s string, off, n int) int {
	for ; n > 0 && off < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
