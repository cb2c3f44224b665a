package logger

import (
	"strings"

	"github.com/philipp01105/nconsole/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// LevelFilter is the facade-wide maximum level. Off disables all records.
type LevelFilter int8

const (
	// Off disables logging entirely (default)
	Off LevelFilter = -1

	ErrorFilter = LevelFilter(core.ErrorLevel)
	WarnFilter  = LevelFilter(core.WarnLevel)
	InfoFilter  = LevelFilter(core.InfoLevel)
	DebugFilter = LevelFilter(core.DebugLevel)
	TraceFilter = LevelFilter(core.TraceLevel)
)

// Allows reports whether records at level pass the filter.
func (f LevelFilter) Allows(level Level) bool {
	return f != Off && int8(level) <= int8(f)
}

// String returns the string representation of the filter
func (f LevelFilter) String() string {
	if f == Off {
		return "OFF"
	}
	return Level(f).String()
}

// ParseLevelFilter converts "off" or a level name to a LevelFilter
func ParseLevelFilter(s string) (LevelFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), "off") {
		return Off, nil
	}
	l, err := core.ParseLevel(s)
	if err != nil {
		return Off, err
	}
	return LevelFilter(l), nil
}
