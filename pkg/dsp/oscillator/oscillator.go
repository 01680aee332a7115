// Package oscillator generates the periodic test signals used to exercise
// processors, and the probe tone used to identify output channels.
package oscillator

import "math"

// Oscillator is a phase-accumulating signal source.
type Oscillator struct {
	sampleRate float64
	frequency  float64
	amplitude  float32
	phase      float64
	phaseInc   float64
}

// New creates a full-scale oscillator at frequency.
func New(sampleRate, frequency float64) *Oscillator {
	o := &Oscillator{sampleRate: sampleRate, amplitude: 1}
	o.SetFrequency(frequency)
	return o
}

// SetFrequency sets the oscillator frequency
func (o *Oscillator) SetFrequency(freq float64) {
	o.frequency = freq
	o.phaseInc = freq / o.sampleRate
}

// SetAmplitude sets the peak level of generated samples.
func (o *Oscillator) SetAmplitude(a float32) {
	o.amplitude = a
}

// SetPhase sets the oscillator phase (0-1)
func (o *Oscillator) SetPhase(phase float64) {
	o.phase = phase - math.Floor(phase)
}

// Reset resets the oscillator phase to 0
func (o *Oscillator) Reset() {
	o.phase = 0.0
}

func (o *Oscillator) advance() {
	o.phase += o.phaseInc
	if o.phase >= 1.0 {
		o.phase -= math.Floor(o.phase)
	}
}

// Sine generates a sine wave sample
func (o *Oscillator) Sine() float32 {
	sample := o.amplitude * float32(math.Sin(2.0*math.Pi*o.phase))
	o.advance()
	return sample
}

// Gate generates a unipolar pulse: the amplitude for the first width of
// each cycle, 0 for the rest. Useful as a sidechain key.
func (o *Oscillator) Gate(width float64) float32 {
	var sample float32
	if o.phase < width {
		sample = o.amplitude
	}
	o.advance()
	return sample
}

// FillSine overwrites buffer with sine samples - no allocations
func (o *Oscillator) FillSine(buffer []float32) {
	for i := range buffer {
		buffer[i] = o.Sine()
	}
}

// AddSine mixes sine samples into buffer - no allocations
func (o *Oscillator) AddSine(buffer []float32) {
	for i := range buffer {
		buffer[i] += o.Sine()
	}
}

// FillGate overwrites buffer with gate pulses - no allocations
func (o *Oscillator) FillGate(buffer []float32, width float64) {
	for i := range buffer {
		buffer[i] = o.Gate(width)
	}
}
