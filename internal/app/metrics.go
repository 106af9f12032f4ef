package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame loop performance.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64
	slowFrames   atomic.Uint64

	eventCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	// Initialize min to max int64 so first frame will be smaller
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records the processing time of one frame and the number of
// input events it applied. Frames slower than budget are counted as slow.
func (m *Metrics) RecordFrame(duration time.Duration, events int, budget time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)
	m.eventCount.Add(uint64(max(events, 0)))
	if budget > 0 && duration > budget {
		m.slowFrames.Add(1)
	}

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// MetricsSnapshot is a point-in-time copy of the metrics.
type MetricsSnapshot struct {
	FrameCount uint64
	FrameAvg   time.Duration
	FrameMin   time.Duration
	FrameMax   time.Duration
	FrameLast  time.Duration
	SlowFrames uint64
	EventCount uint64
	Uptime     time.Duration
}

// Snapshot returns the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		FrameCount: m.frameCount.Load(),
		FrameMax:   time.Duration(m.frameMaxNs.Load()),
		FrameLast:  time.Duration(m.lastFrameNs.Load()),
		SlowFrames: m.slowFrames.Load(),
		EventCount: m.eventCount.Load(),
		Uptime:     time.Since(m.startTime),
	}
	if s.FrameCount > 0 {
		s.FrameAvg = time.Duration(m.frameTotalNs.Load() / int64(s.FrameCount))
		s.FrameMin = time.Duration(m.frameMinNs.Load())
	}
	return s
}

// AvgFPS returns the average frames per second over the uptime.
func (s MetricsSnapshot) AvgFPS() float64 {
	if s.Uptime <= 0 {
		return 0
	}
	return float64(s.FrameCount) / s.Uptime.Seconds()
}
