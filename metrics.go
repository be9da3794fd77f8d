package framepress

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks per-frame tracker activity. Install one on a tracker with
// SetMetrics; a single Metrics may be shared by several trackers.
type Metrics struct {
	// Counters
	framesTotal      atomic.Uint64
	inputEventsTotal atomic.Uint64
	unmappedTotal    atomic.Uint64
	clearsTotal      atomic.Uint64
	hookFiresTotal   atomic.Uint64

	// Update latency tracking
	mu             sync.RWMutex
	frameLatencies []time.Duration
	maxSamples     int
	latencyIdx     int

	// Peak latency (all time)
	peakFrameLatency atomic.Int64

	// Start time for uptime calculation
	startTime time.Time

	// Enable flag
	enabled atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		frameLatencies: make([]time.Duration, 1000),
		maxSamples:     1000,
		startTime:      time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// RecordFrame records one Update pass with its processing time.
func (m *Metrics) RecordFrame(latency time.Duration) {
	if !m.enabled.Load() {
		return
	}

	m.framesTotal.Add(1)

	// Update peak latency
	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakFrameLatency.Load()
		if latencyNs <= current {
			break
		}
		if m.peakFrameLatency.CompareAndSwap(current, latencyNs) {
			break
		}
	}

	// Store in circular buffer
	m.mu.Lock()
	m.frameLatencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % m.maxSamples
	m.mu.Unlock()
}

// RecordInputEvent records one mapped input notification.
func (m *Metrics) RecordInputEvent() {
	if !m.enabled.Load() {
		return
	}
	m.inputEventsTotal.Add(1)
}

// RecordUnmapped records a notification or snapshot entry for an input with
// no configured control.
func (m *Metrics) RecordUnmapped() {
	if !m.enabled.Load() {
		return
	}
	m.unmappedTotal.Add(1)
}

// RecordClear records a ClearInputs call.
func (m *Metrics) RecordClear() {
	if !m.enabled.Load() {
		return
	}
	m.clearsTotal.Add(1)
}

// RecordHookFire records one hook dispatch for a control transition.
func (m *Metrics) RecordHookFire() {
	if !m.enabled.Load() {
		return
	}
	m.hookFiresTotal.Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	// Counters
	FramesTotal      uint64
	InputEventsTotal uint64
	UnmappedTotal    uint64
	ClearsTotal      uint64
	HookFiresTotal   uint64

	// Update latency stats
	AvgFrameLatency  time.Duration
	MaxFrameLatency  time.Duration
	P99FrameLatency  time.Duration
	PeakFrameLatency time.Duration

	// Rates
	FramesPerSecond float64

	// Uptime
	Uptime time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	latencies := make([]time.Duration, len(m.frameLatencies))
	copy(latencies, m.frameLatencies)
	m.mu.RUnlock()

	frames := m.framesTotal.Load()
	uptime := time.Since(m.startTime)

	snap := MetricsSnapshot{
		FramesTotal:      frames,
		InputEventsTotal: m.inputEventsTotal.Load(),
		UnmappedTotal:    m.unmappedTotal.Load(),
		ClearsTotal:      m.clearsTotal.Load(),
		HookFiresTotal:   m.hookFiresTotal.Load(),
		PeakFrameLatency: time.Duration(m.peakFrameLatency.Load()),
		Uptime:           uptime,
	}

	if uptime > 0 {
		snap.FramesPerSecond = float64(frames) / uptime.Seconds()
	}

	snap.AvgFrameLatency, snap.MaxFrameLatency, snap.P99FrameLatency = latencyStats(latencies)

	return snap
}

// latencyStats computes average, max, and p99 from a slice of latencies.
func latencyStats(latencies []time.Duration) (avg, maxLat, p99 time.Duration) {
	// Filter non-zero latencies
	valid := make([]time.Duration, 0, len(latencies))
	for _, l := range latencies {
		if l > 0 {
			valid = append(valid, l)
		}
	}

	if len(valid) == 0 {
		return 0, 0, 0
	}

	var sum time.Duration
	for _, l := range valid {
		sum += l
		if l > maxLat {
			maxLat = l
		}
	}
	avg = sum / time.Duration(len(valid))

	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })
	idx := int(float64(len(valid)) * 0.99)
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	p99 = valid[idx]

	return avg, maxLat, p99
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.framesTotal.Store(0)
	m.inputEventsTotal.Store(0)
	m.unmappedTotal.Store(0)
	m.clearsTotal.Store(0)
	m.hookFiresTotal.Store(0)
	m.peakFrameLatency.Store(0)

	m.mu.Lock()
	m.frameLatencies = make([]time.Duration, m.maxSamples)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}

// FramesTotal returns the total number of Update passes recorded.
func (m *Metrics) FramesTotal() uint64 {
	return m.framesTotal.Load()
}

// InputEventsTotal returns the total number of mapped input notifications.
func (m *Metrics) InputEventsTotal() uint64 {
	return m.inputEventsTotal.Load()
}

// UnmappedTotal returns the total number of unmapped input observations.
func (m *Metrics) UnmappedTotal() uint64 {
	return m.unmappedTotal.Load()
}
