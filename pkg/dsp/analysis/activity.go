package analysis

import (
	"math"
	"sync/atomic"
)

// Activity detection constants.
const (
	ActivitySmoothing = 0.8 // weight of the previous level
	ActivityThreshold = 0.1 // absolute smoothed level counted as activity
)

type activityCounters struct {
	remaining []atomic.Int32
}

// ActivityMonitor tracks, per channel, whether a signal has been present
// within the last half second. The audio thread calls Process; any
// goroutine may call IsActive.
type ActivityMonitor struct {
	levels     []float32
	remaining  []int
	holdLength int

	published atomic.Pointer[activityCounters]
}

// NewActivityMonitor creates a monitor for channels at sampleRate.
func NewActivityMonitor(channels int, sampleRate float64) *ActivityMonitor {
	m := &ActivityMonitor{}
	m.Prepare(channels, sampleRate)
	return m
}

// Prepare sizes the monitor. Per-channel levels are reallocated, and their
// history lost, only when the channel count changes. Activity is cleared.
func (m *ActivityMonitor) Prepare(channels int, sampleRate float64) {
	if channels < 0 {
		channels = 0
	}
	m.holdLength = int(math.Round(sampleRate / 2))

	if channels != len(m.levels) || m.published.Load() == nil {
		m.levels = make([]float32, channels)
		m.remaining = make([]int, channels)
		m.published.Store(&activityCounters{remaining: make([]atomic.Int32, channels)})
	}
	m.Reset()
}

// Reset marks every channel inactive. Smoothed levels are kept.
func (m *ActivityMonitor) Reset() {
	pub := m.published.Load()
	for ch := range m.remaining {
		m.remaining[ch] = 0
		pub.remaining[ch].Store(0)
	}
}

// Process analyses one block. Each sample updates the channel's level as
// 0.8*level + 0.2*x and re-arms a half-second countdown when |level|
// reaches 0.1. The countdown then drops by the block length, so decay is
// block-granular. Channels beyond the prepared count are ignored.
func (m *ActivityMonitor) Process(channels [][]float32) {
	pub := m.published.Load()
	n := len(channels)
	if n > len(m.levels) {
		n = len(m.levels)
	}

	for ch := 0; ch < n; ch++ {
		samples := channels[ch]
		level := m.levels[ch]
		remaining := m.remaining[ch]

		for _, x := range samples {
			level = ActivitySmoothing*level + (1-ActivitySmoothing)*x
			if abs32(level) >= ActivityThreshold {
				remaining = m.holdLength
			}
		}

		remaining -= len(samples)
		if remaining < 0 {
			remaining = 0
		}

		m.levels[ch] = level
		m.remaining[ch] = remaining
		pub.remaining[ch].Store(int32(remaining))
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// IsActive reports whether channel ch saw activity recently. Out of range
// channels are inactive.
func (m *ActivityMonitor) IsActive(ch int) bool {
	return m.Remaining(ch) > 0
}

// Remaining returns the published countdown for channel ch.
func (m *ActivityMonitor) Remaining(ch int) int {
	pub := m.published.Load()
	if pub == nil || ch < 0 || ch >= len(pub.remaining) {
		return 0
	}
	return int(pub.remaining[ch].Load())
}

// Snapshot fills dst with the activity of each channel and returns it,
// growing dst if needed. It is meant for UI polling.
func (m *ActivityMonitor) Snapshot(dst []bool) []bool {
	pub := m.published.Load()
	if pub == nil {
		return dst[:0]
	}
	dst = dst[:0]
	for ch := range pub.remaining {
		dst = append(dst, pub.remaining[ch].Load() > 0)
	}
	return dst
}

// NumChannels returns the prepared channel count.
func (m *ActivityMonitor) NumChannels() int {
	pub := m.published.Load()
	if pub == nil {
		return 0
	}
	return len(pub.remaining)
}

// HoldLength returns the countdown armed by activity, in samples.
func (m *ActivityMonitor) HoldLength() int {
	return m.holdLength
}
