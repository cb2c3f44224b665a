package logger

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/philipp01105/nconsole/core"
)

// Logger is implemented by the backend that receives facade records.
type Logger interface {
	// Enabled reports whether the backend wants records at level.
	Enabled(level Level) bool
	// Log writes the record. The record is only valid during the call.
	Log(r *core.Record)
	// Flush writes out any buffered records.
	Flush()
}

var (
	// ErrAlreadyInitialized is returned when a logger has already been
	// registered for this process.
	ErrAlreadyInitialized = errors.New("logger: already initialized")
	// ErrNilLogger is returned by SetLogger for a nil Logger.
	ErrNilLogger = errors.New("logger: nil logger")
)

// registration wraps the Logger so it can be stored in an atomic.Pointer
type registration struct {
	l Logger
}

var (
	registered atomic.Pointer[registration]
	maxLevel   atomic.Int32
	nop        Logger = nopLogger{}
)

func init() {
	maxLevel.Store(int32(Off))
}

// SetLogger registers l as the process-wide backend. Only the first call
// succeeds; the registration cannot be undone.
func SetLogger(l Logger) error {
	if l == nil {
		return ErrNilLogger
	}
	if !registered.CompareAndSwap(nil, &registration{l: l}) {
		return ErrAlreadyInitialized
	}
	return nil
}

// Initialized reports whether a backend has been registered.
func Initialized() bool {
	return registered.Load() != nil
}

// Get returns the registered backend, or a logger that discards
// everything when none is registered.
func Get() Logger {
	if r := registered.Load(); r != nil {
		return r.l
	}
	return nop
}

// SetMaxLevel sets the facade-wide maximum level.
func SetMaxLevel(f LevelFilter) {
	maxLevel.Store(int32(f))
}

// MaxLevel returns the facade-wide maximum level.
func MaxLevel() LevelFilter {
	return LevelFilter(maxLevel.Load())
}

// Enabled reports whether a record at level would reach the backend.
func Enabled(level Level) bool {
	return MaxLevel().Allows(level) && Get().Enabled(level)
}

// Log sends a record with an explicit source location to the backend.
// An empty module is reported as core.UnknownModule.
func Log(level Level, module string, line int, msg string) {
	if !MaxLevel().Allows(level) {
		return
	}
	l := Get()
	if !l.Enabled(level) {
		return
	}

	r := core.GetRecord()
	r.Level = level
	if module != "" {
		r.Module = module
		r.Line = line
	}
	r.Message = msg
	l.Log(r)
	core.PutRecord(r)
}

// Flush flushes the registered backend.
func Flush() {
	Get().Flush()
}

// logf renders the message and records the caller of the exported
// function that called logf.
func logf(level Level, format string, args []interface{}) {
	module, line := core.Caller(2)
	Log(level, module, line, fmt.Sprintf(format, args...))
}

// Error logs a formatted error message
func Error(format string, args ...interface{}) {
	if !MaxLevel().Allows(ErrorLevel) {
		return
	}
	logf(ErrorLevel, format, args)
}

// Warn logs a formatted warning message
func Warn(format string, args ...interface{}) {
	if !MaxLevel().Allows(WarnLevel) {
		return
	}
	logf(WarnLevel, format, args)
}

// Info logs a formatted info message
func Info(format string, args ...interface{}) {
	if !MaxLevel().Allows(InfoLevel) {
		return
	}
	logf(InfoLevel, format, args)
}

// Debug logs a formatted debug message
func Debug(format string, args ...interface{}) {
	if !MaxLevel().Allows(DebugLevel) {
		return
	}
	logf(DebugLevel, format, args)
}

// Trace logs a formatted trace message
func Trace(format string, args ...interface{}) {
	if !MaxLevel().Allows(TraceLevel) {
		return
	}
	logf(TraceLevel, format, args)
}

type nopLogger struct{}

func (nopLogger) Enabled(Level) bool { return false }
func (nopLogger) Log(*core.Record)   {}
func (nopLogger) Flush()             {}
