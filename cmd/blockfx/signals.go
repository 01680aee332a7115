package main

import (
	"encoding/binary"
	"math"

	"github.com/justyntemme/blockfx/pkg/dsp/oscillator"
)

// channels allocates n channels of length samples.
func channels(n, length int) [][]float32 {
	out := make([][]float32, n)
	for ch := range out {
		out[ch] = make([]float32, length)
	}
	return out
}

// toneSignal is a sine at freq and level copied to every channel.
func toneSignal(n, length int, sampleRate, freq float64, level float32) [][]float32 {
	out := channels(n, length)
	if n == 0 {
		return out
	}
	osc := oscillator.New(sampleRate, freq)
	osc.SetAmplitude(level)
	osc.FillSine(out[0])
	for ch := 1; ch < n; ch++ {
		copy(out[ch], out[0])
	}
	return out
}

// pulseSignal is a unipolar gate pulse at rate Hz, high for width of each
// cycle, copied to every channel.
func pulseSignal(n, length int, sampleRate, rate, width float64) [][]float32 {
	out := channels(n, length)
	if n == 0 {
		return out
	}
	osc := oscillator.New(sampleRate, rate)
	osc.FillGate(out[0], width)
	for ch := 1; ch < n; ch++ {
		copy(out[ch], out[0])
	}
	return out
}

// blockViews points views at [start, start+n) of each channel in src.
func blockViews(views, src [][]float32, start, n int) [][]float32 {
	views = views[:len(src)]
	for ch := range src {
		views[ch] = src[ch][start : start+n]
	}
	return views
}

// interleave packs planar channels frame by frame.
func interleave(planar [][]float32) []float32 {
	if len(planar) == 0 {
		return nil
	}
	frames := len(planar[0])
	out := make([]float32, frames*len(planar))
	for i := 0; i < frames; i++ {
		for ch := range planar {
			out[i*len(planar)+ch] = planar[ch][i]
		}
	}
	return out
}

// float32LE encodes samples as little-endian IEEE-754.
func float32LE(samples []float32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(s))
	}
	return buf
}
