package console

import (
	"context"
	"fmt"
	"log/slog"
)

// Level orders console output by verbosity.
type Level int

const (
	LevelStandard Level = iota
	LevelAddInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelStandard:
		return "standard"
	case LevelAddInfo:
		return "addinfo"
	case LevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Console is the diagnostic sink used by engine subsystems.
type Console interface {
	Print(level Level, system, msg string)
}

// Printf formats and prints to c.
func Printf(c Console, level Level, system, format string, args ...any) {
	c.Print(level, system, fmt.Sprintf(format, args...))
}

// Logger forwards console output to a slog.Logger, dropping anything more
// verbose than Max.
type Logger struct {
	Max Level
	log *slog.Logger
}

// New returns a Logger writing to l, or to slog.Default when l is nil.
func New(l *slog.Logger, max Level) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{Max: max, log: l}
}

func (c *Logger) Print(level Level, system, msg string) {
	if level > c.Max {
		return
	}
	c.log.Log(context.Background(), slogLevel(level), msg, slog.String("system", system))
}

func slogLevel(l Level) slog.Level {
	switch l {
	case LevelStandard:
		return slog.LevelInfo
	case LevelAddInfo:
		return slog.LevelInfo - 1
	default:
		return slog.LevelDebug
	}
}

// Discard drops every message.
type Discard struct{}

func (Discard) Print(Level, string, string) {}
