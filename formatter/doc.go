// Package formatter defines how console records are rendered into text.
//
// A Formatter appends one complete line to a caller-provided
// bytes.Buffer, so the console can take a pooled buffer, format into it
// and hand the bytes to the transport in a single Write.
//
// Two formatters are built in. FacadeFormatter produces the
// "LEVEL - module:line - message\n" lines of the leveled logging facade.
// PrefixFormatter produces the "I: module - message\r\n" lines of the
// plain level-prefixed entry points, terminated with CRLF because the
// channel is assumed to be a raw serial line.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large line from permanently inflating memory usage.
package formatter
