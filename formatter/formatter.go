package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/nconsole/core"
)

// Formatter renders a record into a caller-provided buffer.
type Formatter interface {
	// FormatRecord appends the rendered record, including its line
	// terminator, to buf.
	FormatRecord(r *core.Record, buf *bytes.Buffer)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty pooled buffer.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Format renders r with f and returns a copy of the bytes.
func Format(f Formatter, r *core.Record) []byte {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatRecord(r, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
