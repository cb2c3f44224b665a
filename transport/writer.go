package transport

import (
	"bytes"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// WriterConfig holds configuration for a Writer transport
type WriterConfig struct {
	// Writer is the raw channel (default: os.Stdout)
	Writer io.Writer
	// CRLF translates a lone '\n' into "\r\n" for channels without
	// terminal newline translation, e.g. a UART.
	CRLF bool
	// Closer is released together with the transport. When nil and Writer
	// is an io.Closer other than os.Stdout or os.Stderr, Writer is used.
	Closer io.Closer
}

// applyWriterDefaults fills in zero-value fields with defaults.
func applyWriterDefaults(cfg *WriterConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Closer == nil && !isStdStream(cfg.Writer) {
		cfg.Closer, _ = cfg.Writer.(io.Closer)
	}
}

// isStdStream reports whether w is one of the process standard streams,
// which a transport must never close.
func isStdStream(w io.Writer) bool {
	return w == os.Stdout || w == os.Stderr
}

// Writer is a Transport over a raw byte channel.
type Writer struct {
	mu      sync.Mutex // protects w, lastCR, scratch and closed
	w       io.Writer
	closer  io.Closer
	crlf    bool
	lastCR  bool
	scratch bytes.Buffer
	closed  bool
	written atomic.Uint64
}

// NewWriter creates a Writer transport.
func NewWriter(cfg WriterConfig) *Writer {
	applyWriterDefaults(&cfg)
	return &Writer{
		w:      cfg.Writer,
		closer: cfg.Closer,
		crlf:   cfg.CRLF,
	}
}

// Open opens path for appending (a character device such as /dev/ttyS0
// or a regular file) and returns a Writer that owns it.
func Open(path string, crlf bool) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	return NewWriter(WriterConfig{Writer: f, CRLF: crlf, Closer: f}), nil
}

// Write writes p to the underlying channel. The returned count refers to
// p, not to the possibly expanded output.
func (t *Writer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrClosed
	}

	out := p
	if t.crlf {
		out = t.translate(p)
	}

	n, err := t.w.Write(out)
	t.written.Add(uint64(n))
	if err != nil {
		return 0, err
	}
	if n < len(out) {
		return 0, io.ErrShortWrite
	}
	return len(p), nil
}

// translate expands every '\n' not preceded by '\r' into "\r\n". The
// trailing '\r' state carries over between writes.
func (t *Writer) translate(p []byte) []byte {
	if bytes.IndexByte(p, '\n') < 0 {
		if len(p) > 0 {
			t.lastCR = p[len(p)-1] == '\r'
		}
		return p
	}

	t.scratch.Reset()
	t.scratch.Grow(len(p) + 8)
	prevCR := t.lastCR
	for _, c := range p {
		if c == '\n' && !prevCR {
			t.scratch.WriteByte('\r')
		}
		t.scratch.WriteByte(c)
		prevCR = c == '\r'
	}
	t.lastCR = prevCR
	return t.scratch.Bytes()
}

// BytesWritten returns the number of bytes that reached the channel.
func (t *Writer) BytesWritten() uint64 {
	return t.written.Load()
}

// Close releases the transport. Further writes return ErrClosed.
func (t *Writer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}
