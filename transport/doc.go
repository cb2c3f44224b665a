// Package transport defines the contract an output channel must satisfy
// to be installed into a console, plus a few ready-made transports.
//
// A Transport is an io.Writer with a Close release hook. The console owns
// an installed transport exclusively: it is the only caller of Write, and
// it calls Close exactly once when the transport is replaced. Transports
// may be written to from any goroutine the console is used from, so a
// Write must be bounded and must not call back into the console.
//
// Built-in transports:
//
//   - Discard drops everything. The console falls back to it while no
//     transport is installed.
//   - NopCloser and WithRelease adapt any io.Writer, with an optional
//     release function.
//   - Writer wraps a raw byte channel such as a UART device file or
//     os.Stdout and can translate '\n' to "\r\n" for channels without
//     terminal newline handling. Open creates one for a device path.
package transport
