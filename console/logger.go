package console

import (
	"github.com/philipp01105/nconsole/core"
	"github.com/philipp01105/nconsole/formatter"
	"github.com/philipp01105/nconsole/logger"
	"github.com/philipp01105/nconsole/transport"
)

// Logger adapts a Console to the logger facade. Records are rendered as
// "LEVEL - package:line - message\n".
type Logger struct {
	console   *Console
	formatter formatter.Formatter
}

// NewLogger creates a facade backend writing to c.
func NewLogger(c *Console) *Logger {
	return &Logger{
		console:   c,
		formatter: formatter.NewFacadeFormatter(),
	}
}

// Enabled reports whether level is Info or more severe. The threshold is
// fixed; use logger.SetMaxLevel to filter further.
func (l *Logger) Enabled(level core.Level) bool {
	return level <= core.InfoLevel
}

// Log renders r and dispatches it. Disabled records are ignored.
func (l *Logger) Log(r *core.Record) {
	if !l.Enabled(r.Level) {
		return
	}
	buf := formatter.GetBuffer()
	defer putBuffer(buf)
	l.formatter.FormatRecord(r, buf)
	l.console.DispatchBytes(buf.Bytes())
}

// Flush is a no-op; the console does not buffer.
func (l *Logger) Flush() {}

// InitLogger installs t into the process-wide Console, registers the
// console as the logger facade backend and sets the facade maximum level.
//
// The facade accepts one registration per process. When a backend is
// already registered InitLogger returns logger.ErrAlreadyInitialized and
// changes nothing: t is not installed and stays owned by the caller.
func InitLogger(max logger.LevelFilter, t transport.Transport) error {
	if err := logger.SetLogger(NewLogger(std)); err != nil {
		return err
	}
	std.Replace(t)
	logger.SetMaxLevel(max)
	return nil
}
