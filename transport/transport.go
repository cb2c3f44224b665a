package transport

import (
	"errors"
	"io"
	"sync"

	"go.uber.org/multierr"
)

// Transport is the capability a value must offer to become the console's
// output channel.
type Transport interface {
	// Write consumes rendered text. A non-nil error or a short write is
	// treated as fatal by the console.
	io.Writer

	// Close is the release hook. The console calls it exactly once, when
	// the transport is superseded.
	Close() error
}

// ErrClosed is returned when writing to a transport that has been released.
var ErrClosed = errors.New("transport: closed")

// Discard accepts and drops all input. It is the console's fallback before
// any transport is installed.
var Discard Transport = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error)       { return len(p), nil }
func (discard) WriteString(s string) (int, error) { return len(s), nil }
func (discard) Close() error                      { return nil }

// NopCloser adapts w into a Transport with a no-op release hook.
func NopCloser(w io.Writer) Transport {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// WithRelease adapts w into a Transport whose release hook runs release and,
// when w is an io.Closer, closes w. Both run at most once; their errors are
// combined.
func WithRelease(w io.Writer, release func() error) Transport {
	return &releaser{w: w, release: release}
}

type releaser struct {
	w       io.Writer
	release func() error
	once    sync.Once
	err     error
}

func (r *releaser) Write(p []byte) (int, error) {
	return r.w.Write(p)
}

func (r *releaser) Close() error {
	r.once.Do(func() {
		if r.release != nil {
			r.err = r.release()
		}
		if c, ok := r.w.(io.Closer); ok {
			r.err = multierr.Append(r.err, c.Close())
		}
	})
	return r.err
}
