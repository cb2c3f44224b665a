// Package console routes formatted text to a single, swappable output
// channel.
//
// A Console holds at most one transport.Transport. Replace hands a new
// transport to the Console, which from then on is its only user, and
// releases the previous one by calling its Close. Until a transport is
// installed every write is silently dropped; nothing is queued for later.
//
// All writes and replacements on a Console are serialized by one mutex.
// A write therefore always goes entirely to one transport, never split
// between an old and a new one, and a goroutine that finds the lock held
// waits instead of dropping its text.
//
// Transports are expected to always succeed. A failed or short write is
// fatal: Dispatch panics with a *WriteError wrapping ErrWriteFailure, as
// there is no other channel left to report console failures on.
//
// The package-level functions operate on the process-wide Console
// returned by Default:
//
//	console.Replace(transport.NewWriter(transport.WriterConfig{Writer: uart, CRLF: true}))
//	console.Printfln("x=%d", 42)    // "x=42\r\n"
//	console.Infof("ready")          // "I: example.com/fw/boot - ready\r\n"
//
// InitLogger additionally registers the Console as the backend of the
// logger facade, so logger.Info and friends end up on the same channel.
package console
