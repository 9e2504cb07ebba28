// SPDX-License-Identifier: MIT

package u3coef

import (
	"fmt"
	"log/slog"
)

// Mode selects cached or direct evaluation.
type Mode int

const (
	// ModeCached builds each block once and serves lookups from it.
	ModeCached Mode = iota
	// ModeDirect evaluates every request through the kernel and stores nothing.
	// Used to check the cache against the raw kernel and for profiling.
	ModeDirect
)

// DefaultMode is the evaluation mode of a cache built without WithMode.
const DefaultMode = ModeCached

// String returns "cached" or "direct".
func (m Mode) String() string {
	switch m {
	case ModeCached:
		return "cached"
	case ModeDirect:
		return "direct"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "cached":
		return ModeCached, nil
	case "direct":
		return ModeDirect, nil
	default:
		return 0, fmt.Errorf("u3coef: unknown mode %q", s)
	}
}

const (
	panicModeInvalid = "u3coef: WithMode: unknown mode"
	panicNilObserver = "u3coef: WithObserver: nil observer"
)

// Option configures a Cache.
type Option func(*options)

type options struct {
	mode      Mode
	observers []Observer
	logger    *slog.Logger
}

// WithMode sets the evaluation mode. It panics on an unknown mode.
func WithMode(m Mode) Option {
	if m != ModeCached && m != ModeDirect {
		panic(panicModeInvalid)
	}

	return func(o *options) { o.mode = m }
}

// WithObserver adds an observer; repeated options accumulate.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicNilObserver)
	}

	return func(o *options) { o.observers = append(o.observers, obs) }
}

// WithLogger sets the logger used for block-construction events (Debug level).
// A nil logger restores slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(user ...Option) options {
	o := options{mode: DefaultMode}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
