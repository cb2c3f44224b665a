package console

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"github.com/philipp01105/nconsole/transport"
)

// ErrWriteFailure marks a transport write that failed or came up short.
// Dispatch panics with a *WriteError matching it.
var ErrWriteFailure = errors.New("console: write failed")

// WriteError describes a failed transport write.
type WriteError struct {
	// Written is the number of bytes the transport accepted.
	Written int
	// Len is the length of the dispatched text.
	Len int
	// Err is the transport error, io.ErrShortWrite for a short write.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("console: write failed after %d of %d bytes: %v", e.Written, e.Len, e.Err)
}

// Unwrap lets errors.Is match both ErrWriteFailure and the transport error.
func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailure, e.Err}
}

// Console owns at most one transport and serializes every write and
// replacement on it. The zero value is not usable; use New.
type Console struct {
	mu       sync.Mutex // guards current and every Write on it
	current  transport.Transport
	fallback transport.Transport
	stats    counters
}

// New creates a Console with no transport installed. Output is discarded
// until Replace is called.
func New() *Console {
	return &Console{fallback: transport.Discard}
}

// Replace installs t and releases the previously installed transport, if
// any. The old transport's Close runs exactly once, after t is visible to
// Dispatch and before Replace returns. Close errors stay with the
// transport and are only counted. A nil t uninstalls the current one.
//
// The Console owns t from now on; callers must not use it directly.
func (c *Console) Replace(t transport.Transport) {
	c.mu.Lock()
	old := c.current
	c.current = t
	c.mu.Unlock()

	c.stats.incrementReplaced()
	if old == nil {
		return
	}
	if err := old.Close(); err != nil {
		c.stats.incrementReleaseFailed()
	}
}

// sameTransport reports whether a and b are the same pointer-backed
// transport. Other dynamic types are never considered the same: a struct
// value may hold non-comparable fields and == on it would panic.
func sameTransport(a, b transport.Transport) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	switch ta.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return a == b
	}
	return false
}

// Installed reports whether a transport is installed.
func (c *Console) Installed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// Dispatch writes text to the installed transport, or drops it when none
// is installed. A failed write panics with a *WriteError; transports are
// expected to always succeed.
func (c *Console) Dispatch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		_, _ = io.WriteString(c.fallback, text)
		c.stats.incrementDiscarded()
		return
	}
	n, err := io.WriteString(c.current, text)
	c.finish(n, len(text), err)
}

// DispatchBytes is Dispatch for a byte slice. p is not retained.
func (c *Console) DispatchBytes(p []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		_, _ = c.fallback.Write(p)
		c.stats.incrementDiscarded()
		return
	}
	n, err := c.current.Write(p)
	c.finish(n, len(p), err)
}

// finish records a write result. Called with mu held; the deferred
// unlock in the caller runs while the panic unwinds.
func (c *Console) finish(n, size int, err error) {
	if n > 0 {
		c.stats.addBytes(n)
	}
	if err == nil && n < size {
		err = io.ErrShortWrite
	}
	if err != nil {
		c.stats.incrementFailed()
		panic(pkgerrors.WithStack(&WriteError{Written: n, Len: size, Err: err}))
	}
	c.stats.incrementDispatched()
}

// Writer returns an io.Writer that dispatches every Write through c. It
// lets other loggers (zap, log.Logger) target the console.
func (c *Console) Writer() io.Writer {
	return consoleWriter{c: c}
}

type consoleWriter struct {
	c *Console
}

func (w consoleWriter) Write(p []byte) (int, error) {
	w.c.DispatchBytes(p)
	return len(p), nil
}

// Stats returns a snapshot of the console counters.
func (c *Console) Stats() Snapshot {
	return c.stats.snapshot()
}

var std = New()

// Default returns the process-wide Console used by the package-level
// functions. It lives for the whole process and is never swapped.
func Default() *Console {
	return std
}

// Replace installs t into the process-wide Console.
func Replace(t transport.Transport) {
	std.Replace(t)
}
