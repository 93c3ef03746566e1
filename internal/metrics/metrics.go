package metrics

import (
	"sync"
	"time"
)

type registryStats struct {
	adds       int
	duplicates int
	lookups    int
	misses     int
	seeded     int
}

// Recorder captures lightweight, in-memory metrics about registry operations.
// Counters are mirrored to OpenTelemetry instruments when telemetry is configured.
type Recorder struct {
	mu    sync.Mutex
	stats registryStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{otel: otel}
}

// RecordHTTPRequest records one HTTP request with its status and latency.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// RecordAdd counts an add attempt; duplicate marks a rejected duplicate name.
func (r *Recorder) RecordAdd(duplicate bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.adds++
	if duplicate {
		r.stats.duplicates++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAdd(duplicate)
	}
}

// RecordLookup counts a lookup; hit reports whether a record matched.
func (r *Recorder) RecordLookup(hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.lookups++
	if !hit {
		r.stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLookup(hit)
	}
}

// RecordSeed counts records loaded from the seed file at startup.
func (r *Recorder) RecordSeed(count int) {
	if r == nil || count <= 0 {
		return
	}

	r.mu.Lock()
	r.stats.seeded += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSeed(count)
	}
}

// Adds returns the total add attempts recorded.
func (r *Recorder) Adds() int {
	return r.snapshot().adds
}

// Duplicates returns the number of rejected duplicate adds.
func (r *Recorder) Duplicates() int {
	return r.snapshot().duplicates
}

// Lookups returns the total lookups recorded.
func (r *Recorder) Lookups() int {
	return r.snapshot().lookups
}

// Misses returns the number of lookups that matched no record.
func (r *Recorder) Misses() int {
	return r.snapshot().misses
}

// Seeded returns the number of records loaded at startup.
func (r *Recorder) Seeded() int {
	return r.snapshot().seeded
}

func (r *Recorder) snapshot() registryStats {
	if r == nil {
		return registryStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
