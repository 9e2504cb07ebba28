// SPDX-License-Identifier: MIT

package u3coef

import "sync/atomic"

// Observer receives cache events. Implementations must be cheap; they run on
// every lookup.
type Observer interface {
	// Hit is a cached lookup served from an existing block.
	Hit(f Family)
	// Miss is a cached lookup that had to build its block.
	Miss(f Family)
	// Build reports a finished block construction with its value count.
	Build(f Family, values int)
	// Direct is a lookup evaluated through the kernel in ModeDirect.
	Direct(f Family)
}

// Stats is an Observer counting events. The zero value is ready to use and
// safe for concurrent use.
type Stats struct {
	hits, misses, builds, directs, values atomic.Int64
}

var _ Observer = (*Stats)(nil)

// Hit implements Observer.
func (s *Stats) Hit(Family) { s.hits.Add(1) }

// Miss implements Observer.
func (s *Stats) Miss(Family) { s.misses.Add(1) }

// Build implements Observer.
func (s *Stats) Build(_ Family, values int) {
	s.builds.Add(1)
	s.values.Add(int64(values))
}

// Direct implements Observer.
func (s *Stats) Direct(Family) { s.directs.Add(1) }

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Hits, Misses, Builds, Directs, Values int64
}

// Snapshot reads all counters.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Builds:  s.builds.Load(),
		Directs: s.directs.Load(),
		Values:  s.values.Load(),
	}
}
