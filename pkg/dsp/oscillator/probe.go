package oscillator

import "math"

// ProbeFrequency is the pitch of the channel identification tone.
const ProbeFrequency = 440.0

// ProbeTone adds a one-second sine burst to a selected channel. Its phase
// is addressed by a running sample offset, so a burst always starts at
// phase zero.
type ProbeTone struct {
	sampleRate float64
	phaseInc   float64
	length     int

	channel int
	offset  int
}

// NewProbeTone creates a silent probe tone for sampleRate.
func NewProbeTone(sampleRate float64) *ProbeTone {
	p := &ProbeTone{}
	p.Prepare(sampleRate)
	return p
}

// Prepare sets the sample rate, selects channel 0 and leaves the burst
// exhausted, so nothing sounds until Trigger.
func (p *ProbeTone) Prepare(sampleRate float64) {
	p.sampleRate = sampleRate
	p.phaseInc = 2 * math.Pi * ProbeFrequency / sampleRate
	p.length = int(math.Ceil(sampleRate))
	p.channel = 0
	p.offset = p.length
}

// Trigger selects channel ch and restarts the burst.
func (p *ProbeTone) Trigger(ch int) {
	p.channel = ch
	p.offset = 0
}

// Process adds the next part of the burst to the selected channel. Nothing
// is added, and the burst does not advance, when the channel is outside
// channels.
func (p *ProbeTone) Process(channels [][]float32) {
	if p.channel < 0 || p.channel >= len(channels) {
		return
	}
	buf := channels[p.channel]

	fill := p.length - p.offset
	if fill > len(buf) {
		fill = len(buf)
	}
	for i := 0; i < fill; i++ {
		buf[i] += float32(math.Sin(p.phaseInc * float64(p.offset)))
		p.offset++
	}
}

// Active reports whether part of the burst is still to be played.
func (p *ProbeTone) Active() bool {
	return p.offset < p.length
}

// Channel returns the selected channel.
func (p *ProbeTone) Channel() int {
	return p.channel
}

// Remaining returns the samples left in the burst.
func (p *ProbeTone) Remaining() int {
	if p.offset >= p.length {
		return 0
	}
	return p.length - p.offset
}
