package logger

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/philipp01105/nconsole/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of the
// facade, so code written against log/slog ends up on the console.
// Attributes are rendered as text after the message.
type SlogHandler struct {
	level Level
	attrs string
	group string
}

// NewSlogHandler creates a new slog.Handler that forwards records at level
// or more severe.
func NewSlogHandler(level Level) *SlogHandler {
	return &SlogHandler{level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	l := slogLevelToCore(level)
	return l <= s.level && Enabled(l)
}

// Handle renders the record and passes it to the facade.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if level > s.level {
		return nil
	}

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	module, line := "", 0
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		module, line = core.ModuleOf(frame.Function), frame.Line
	} else if s.group != "" {
		module = s.group
	}
	Log(level, module, line, b.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{
		level: s.level,
		attrs: b.String(),
		group: s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		level: s.level,
		attrs: s.attrs,
		group: newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return ErrorLevel
	case level >= slog.LevelWarn:
		return WarnLevel
	case level >= slog.LevelInfo:
		return InfoLevel
	case level >= slog.LevelDebug:
		return DebugLevel
	default:
		return TraceLevel
	}
}

// appendAttr writes " key=value", prefixing the key with the group path.
// Group values are flattened.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
