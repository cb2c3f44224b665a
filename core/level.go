package core

import (
	"errors"
	"strings"
)

// Level represents the severity of a console record.
// Lower values are more severe.
type Level int8

const (
	// ErrorLevel for failures the application cannot hide
	ErrorLevel Level = iota
	// WarnLevel for unexpected but handled conditions
	WarnLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for very verbose tracing output
	TraceLevel
)

// ErrInvalidLevel is returned by ParseLevel for unknown names.
var ErrInvalidLevel = errors.New("core: invalid level")

// pre-computed names and prefix letters, indexed by Level
var (
	levelNames   = [...]string{"ERROR", "WARN", "INFO", "DEBUG", "TRACE"}
	levelLetters = [...]byte{'E', 'W', 'I', 'D', 'T'}
)

// String returns the string representation of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Letter returns the single-letter prefix used by the plain entry points.
func (l Level) Letter() byte {
	if l.Valid() {
		return levelLetters[l]
	}
	return '?'
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= TraceLevel
}

// Enabled reports whether l is at least as severe as max.
func (l Level) Enabled(max Level) bool {
	return l <= max
}

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	default:
		return InfoLevel, ErrInvalidLevel
	}
}
