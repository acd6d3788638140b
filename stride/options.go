// SPDX-License-Identifier: MIT

// Package stride: functional configuration for array constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options only influence construction; an Array never re-reads them.
//   - WithOffset clamps negative values to 0 instead of panicking.
//   - WithLogger(nil) panics.
package stride

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOffset is the offset carried by arrays built without WithOffset.
	DefaultOffset = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger = "stride: WithLogger: logger must not be nil"
)

// Option configures array construction.
type Option func(*Options)

// Options holds construction settings. Fields are unexported; use WithX.
type Options struct {
	offset        int          // persistence-only offset, >= 0 after gatherOptions
	offsetClamped bool         // true when a negative offset was replaced by 0
	logger        *slog.Logger // structured logger; discard handler by default
}

// WithOffset sets the offset carried in Snapshot records.
// The offset never participates in index math. Negative values are replaced by 0.
func WithOffset(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.offset = DefaultOffset
			o.offsetClamped = true
			return
		}
		o.offset = n
		o.offsetClamped = false
	}
}

// WithLogger routes the array's debug records (axis growth, restores,
// substituted arguments) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// discardLogger is shared by arrays built without WithLogger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// logger returns the array's logger, or the discard logger for an Array
// that never went through a constructor (a zero value used with Restore).
func (a *Array[T]) logger() *slog.Logger {
	if a.opts.logger == nil {
		return discardLogger
	}

	return a.opts.logger
}

// gatherOptions applies user options over the documented defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		offset: DefaultOffset,
		logger: discardLogger,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
