package input

import "unicode/utf8"

// Flags describe what an Event carries.
type Flags uint8

const (
	FlagPress   Flags = 1 << 0
	FlagRelease Flags = 1 << 1
	FlagRepeat  Flags = 1 << 2
	FlagText    Flags = 1 << 3
)

const (
	// EventBufferSize is the capacity of the per-frame event queue.
	EventBufferSize = 32
	// MaxEventText is the longest committed text (in bytes) one event carries.
	MaxEventText = 32
)

// Event is one ordered input record produced during a polling pass.
type Event struct {
	Key   Key
	Flags Flags
	Text  string
	// InputCount is the frame counter at the time the event was queued.
	InputCount int
}

// Pressed reports whether the event includes a press.
func (e Event) Pressed() bool { return e.Flags&FlagPress != 0 }

// Released reports whether the event includes a release.
func (e Event) Released() bool { return e.Flags&FlagRelease != 0 }

// IsText reports whether the event carries text or a composition change.
func (e Event) IsText() bool { return e.Flags&FlagText != 0 }

// eventQueue is a fixed-capacity FIFO. Appends past capacity are dropped.
type eventQueue struct {
	events [EventBufferSize]Event
	n      int
}

func (q *eventQueue) add(e Event) bool {
	if q.n == len(q.events) {
		return false
	}
	e.Text = truncateUTF8(e.Text, MaxEventText)
	q.events[q.n] = e
	q.n++
	return true
}

func (q *eventQueue) reset() { q.n = 0 }

func (q *eventQueue) slice() []Event { return q.events[:q.n] }

// truncateUTF8 cuts s to at most max bytes without splitting a code point.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
