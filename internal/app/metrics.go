package app

import (
	"fmt"
	"time"
)

// Metrics tracks counters for one editing session. They are logged at debug
// level when the session ends.
type Metrics struct {
	// Frame timing
	frameCount   uint64
	frameTotalNs int64
	frameMaxNs   int64

	// Input handling
	keyCount     uint64
	insertCount  uint64
	unboundCount uint64

	// Persistence
	saveCount    uint64
	saveFailures uint64
	bytesWritten int64

	resizeCount uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker started at now.
func NewMetrics(now time.Time) *Metrics {
	return &Metrics{startTime: now}
}

// RecordFrame records the time spent composing and writing one frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.frameCount++
	m.frameTotalNs += ns
	if ns > m.frameMaxNs {
		m.frameMaxNs = ns
	}
}

// RecordKey records one decoded key event.
func (m *Metrics) RecordKey() {
	m.keyCount++
}

// RecordInsert records one byte inserted into the buffer.
func (m *Metrics) RecordInsert() {
	m.insertCount++
}

// RecordUnbound records a key that was neither bound nor insertable.
func (m *Metrics) RecordUnbound() {
	m.unboundCount++
}

// RecordSave records a save attempt.
func (m *Metrics) RecordSave(n int, err error) {
	if err != nil {
		m.saveFailures++
		return
	}
	m.saveCount++
	m.bytesWritten += int64(n)
}

// RecordResize records a terminal resize.
func (m *Metrics) RecordResize() {
	m.resizeCount++
}

// Snapshot returns a point-in-time view of the counters.
func (m *Metrics) Snapshot(now time.Time) MetricsSnapshot {
	s := MetricsSnapshot{
		Frames:       m.frameCount,
		MaxFrame:     time.Duration(m.frameMaxNs),
		Keys:         m.keyCount,
		Inserts:      m.insertCount,
		Unbound:      m.unboundCount,
		Saves:        m.saveCount,
		SaveFailures: m.saveFailures,
		BytesWritten: m.bytesWritten,
		Resizes:      m.resizeCount,
		Uptime:       now.Sub(m.startTime),
	}
	if m.frameCount > 0 {
		s.AvgFrame = time.Duration(m.frameTotalNs / int64(m.frameCount))
	}
	return s
}

// MetricsSnapshot is a copy of the session counters.
type MetricsSnapshot struct {
	Frames       uint64
	AvgFrame     time.Duration
	MaxFrame     time.Duration
	Keys         uint64
	Inserts      uint64
	Unbound      uint64
	Saves        uint64
	SaveFailures uint64
	BytesWritten int64
	Resizes      uint64
	Uptime       time.Duration
}

// String formats the snapshot as key=value pairs for the log.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("frames=%d avg_frame=%s max_frame=%s keys=%d inserts=%d unbound=%d saves=%d save_failures=%d bytes_written=%d resizes=%d uptime=%s",
		s.Frames, s.AvgFrame, s.MaxFrame, s.Keys, s.Inserts, s.Unbound,
		s.Saves, s.SaveFailures, s.BytesWritten, s.Resizes, s.Uptime)
}

// Timer measures an elapsed duration.
type Timer struct {
	start time.Time
	now   func() time.Time
}

// StartTimer starts a timer using the given clock.
func StartTimer(now func() time.Time) Timer {
	return Timer{start: now(), now: now}
}

// Elapsed returns the time since the timer started.
func (t Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}
