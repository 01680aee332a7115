package debug

import (
	"fmt"
	"strings"
	"time"
)

// BlockProfiler accumulates ProcessBlock timings for one processor and
// relates them to the real-time budget of a block.
//
// It is owned by the host loop, which measures around ProcessBlock; it is
// not safe for concurrent use.
type BlockProfiler struct {
	name       string
	sampleRate float64

	count   uint64
	total   time.Duration
	min     time.Duration
	max     time.Duration
	last    time.Duration
	samples uint64
}

// NewBlockProfiler creates a profiler for the named processor.
func NewBlockProfiler(name string, sampleRate float64) *BlockProfiler {
	return &BlockProfiler{name: name, sampleRate: sampleRate}
}

// Start begins timing one block of blockLength samples. The returned
// function stops the timer.
func (p *BlockProfiler) Start(blockLength int) func() {
	start := time.Now()
	return func() {
		p.Record(blockLength, time.Since(start))
	}
}

// Record stores a single block measurement.
func (p *BlockProfiler) Record(blockLength int, elapsed time.Duration) {
	if p.count == 0 || elapsed < p.min {
		p.min = elapsed
	}
	if elapsed > p.max {
		p.max = elapsed
	}
	p.count++
	p.total += elapsed
	p.last = elapsed
	p.samples += uint64(blockLength)
}

// Count returns the number of recorded blocks.
func (p *BlockProfiler) Count() uint64 { return p.count }

// Min returns the fastest recorded block.
func (p *BlockProfiler) Min() time.Duration { return p.min }

// Max returns the slowest recorded block.
func (p *BlockProfiler) Max() time.Duration { return p.max }

// Average returns the mean block time.
func (p *BlockProfiler) Average() time.Duration {
	if p.count == 0 {
		return 0
	}
	return p.total / time.Duration(p.count)
}

// Load returns processing time as a percentage of the audio time covered
// by the recorded blocks.
func (p *BlockProfiler) Load() float64 {
	if p.samples == 0 || p.sampleRate <= 0 {
		return 0
	}
	audio := time.Duration(float64(p.samples) / p.sampleRate * float64(time.Second))
	if audio == 0 {
		return 0
	}
	return float64(p.total) / float64(audio) * 100.0
}

// Reset clears all measurements.
func (p *BlockProfiler) Reset() {
	*p = BlockProfiler{name: p.name, sampleRate: p.sampleRate}
}

// Report formats the measurements for logs and CLI output.
func (p *BlockProfiler) Report() string {
	if p.count == 0 {
		return fmt.Sprintf("%s: no blocks recorded", p.name)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d blocks, %d samples\n", p.name, p.count, p.samples)
	fmt.Fprintf(&sb, "  min %v  avg %v  max %v  last %v\n", p.min, p.Average(), p.max, p.last)
	fmt.Fprintf(&sb, "  load %.3f%% of real time", p.Load())
	return sb.String()
}
