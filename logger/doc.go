// Package logger is the leveled logging facade of nconsole.
//
// Application and library code logs through the package-level functions
// Error, Warn, Info, Debug and Trace without knowing where the output
// goes:
//
//	logger.Info("uart ready at %d baud", baud)
//
// Records reach a backend only after one has been registered with
// SetLogger. Registration happens at most once per process; later calls
// return ErrAlreadyInitialized. Until then every record is discarded.
//
// Two gates apply before a record is rendered. The facade-wide maximum
// (SetMaxLevel, Off by default) is a single atomic load and is checked
// before any formatting or caller lookup, so disabled calls are cheap.
// The backend's own Enabled method is consulted next.
//
// The calling package path and line are captured automatically and passed
// to the backend in a core.Record.
//
// NewSlogHandler adapts log/slog to the facade:
//
//	slog.SetDefault(slog.New(logger.NewSlogHandler(logger.DebugLevel)))
package logger
