// Package core defines the shared types used across nconsole.
//
// It provides the Level type for severity filtering and the Record type
// that carries one rendered message, together with its severity and the
// package path and line it originated from.
//
// Levels are ordered from most to least severe: Error, Warn, Info, Debug,
// Trace. A level l passes a maximum m when l <= m, so a filter is a single
// integer comparison.
//
// Records are pooled via sync.Pool. Callers get a Record with GetRecord
// and must return it with PutRecord once the console has written it. A
// fresh Record reports UnknownModule and line 0 until the caller fills
// in its source location.
package core
