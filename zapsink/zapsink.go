// Package zapsink lets zap loggers write through a console.
//
//	log := zap.New(zapsink.NewCore(console.Default(), zapcore.InfoLevel))
//	log.Info("uart ready")   // "INFO - uart ready\r\n"
//
// Every encoded zap entry becomes one console dispatch, so zap output and
// console output share the same transport and never interleave mid-line.
package zapsink

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nconsole/console"
)

// sink adapts a Console to zapcore.WriteSyncer.
type sink struct {
	c *console.Console
}

// New returns a WriteSyncer that dispatches every write through c.
func New(c *console.Console) zapcore.WriteSyncer {
	return sink{c: c}
}

func (s sink) Write(p []byte) (int, error) {
	s.c.DispatchBytes(p)
	return len(p), nil
}

// Sync is a no-op; the console does not buffer.
func (s sink) Sync() error { return nil }

// EncoderConfig returns a console encoder configuration for serial
// channels: no timestamp, capital levels, " - " separators and CRLF line
// endings.
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       "\r\n",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " - ",
	}
}

// NewCore creates a zapcore.Core that renders with EncoderConfig and
// writes through c.
func NewCore(c *console.Console, enab zapcore.LevelEnabler) zapcore.Core {
	return zapcore.NewCore(zapcore.NewConsoleEncoder(EncoderConfig()), New(c), enab)
}
