// Package dynamics provides level-driven gain processors.
package dynamics

import (
	"math"

	"github.com/justyntemme/blockfx/pkg/dsp"
)

// EnvelopeGate passes the main signal while a low-passed sidechain level
// has recently reached a threshold. Each crossing holds the gate open for
// one second of samples; the hold restarts on every crossing rather than
// accumulating.
type EnvelopeGate struct {
	sampleRate  float64
	holdSamples int

	level     float32
	countdown int
}

// NewEnvelopeGate creates a gate prepared for sampleRate.
func NewEnvelopeGate(sampleRate float64) *EnvelopeGate {
	g := &EnvelopeGate{}
	g.Prepare(sampleRate)
	return g
}

// Prepare sets the sample rate and closes the gate.
func (g *EnvelopeGate) Prepare(sampleRate float64) {
	g.sampleRate = sampleRate
	g.holdSamples = int(math.Round(sampleRate))
	g.Reset()
}

// Reset clears the filtered level and closes the gate.
func (g *EnvelopeGate) Reset() {
	g.level = 0
	g.countdown = 0
}

// Process gates in into out, sample by sample. in and out may be the same
// buffers. For each sample the sidechain channels are averaged (0 with no
// sidechain), smoothed as level = alpha*level + (1-alpha)*mixed, and a
// level at or above threshold re-arms the hold. A main sample passes
// unchanged while the hold is non-zero and is zeroed otherwise.
func (g *EnvelopeGate) Process(in, out, sidechain [][]float32, threshold, alpha float32) {
	n := blockLength(in, sidechain)
	for j := 0; j < n; j++ {
		mixed := dsp.ChannelMean(sidechain, j)
		g.level = alpha*g.level + (1-alpha)*mixed

		if g.level >= threshold {
			g.countdown = g.holdSamples
		}

		open := g.countdown > 0
		for ch := range out {
			if open {
				out[ch][j] = in[ch][j]
			} else {
				out[ch][j] = 0
			}
		}

		if g.countdown > 0 {
			g.countdown--
		}
	}
}

func blockLength(main, sidechain [][]float32) int {
	if len(main) > 0 {
		return len(main[0])
	}
	if len(sidechain) > 0 {
		return len(sidechain[0])
	}
	return 0
}

// IsOpen reports whether the next sample would pass if no new crossing
// occurs.
func (g *EnvelopeGate) IsOpen() bool {
	return g.countdown > 0
}

// Level returns the filtered sidechain level.
func (g *EnvelopeGate) Level() float32 {
	return g.level
}

// HoldRemaining returns the samples left before the gate closes.
func (g *EnvelopeGate) HoldRemaining() int {
	return g.countdown
}

// HoldSamples returns the hold length set at prepare.
func (g *EnvelopeGate) HoldSamples() int {
	return g.holdSamples
}
