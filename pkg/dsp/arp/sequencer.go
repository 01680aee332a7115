package arp

import (
	"math"

	"github.com/justyntemme/blockfx/pkg/midi"
)

// Channel is the MIDI channel generated notes are sent on (channel 1 on
// the wire).
const Channel uint8 = 0

// StepLength returns the number of samples between steps for speed in
// [0, 1]: sampleRate/4 scaled by 0.1 + (1 - speed), rounded up. Faster
// speeds give shorter steps. The result is at least 1.
func StepLength(speed, sampleRate float64) int {
	n := int(math.Ceil(sampleRate * 0.25 * (0.1 + (1 - speed))))
	if n < 1 {
		return 1
	}
	return n
}

// Sequencer cycles through the held notes, sounding one at a time. State
// persists across blocks and is cleared by Reset.
type Sequencer struct {
	notes NoteSet

	currentIndex int
	lastNote     uint8
	hasLast      bool
	elapsed      int
	stepLength   int
}

// NewSequencer returns a sequencer in its reset state.
func NewSequencer() *Sequencer {
	s := &Sequencer{}
	s.Reset()
	return s
}

// Reset forgets held notes and timing. A sounding note is dropped without
// a note-off.
func (s *Sequencer) Reset() {
	s.notes.Clear()
	s.currentIndex = 0
	s.lastNote = 0
	s.hasLast = false
	s.elapsed = 0
	s.stepLength = 0
}

// ProcessBlock applies the note-ons and note-offs in events to the held
// set, then advances time by blockLength samples. When a step boundary
// falls in the block, the sounding note is released and the next held
// note started at the boundary offset (clamped into the block). At most
// one step happens per block, however short the step length.
//
// Generated events are appended to out in order: note-off before note-on.
// Other input events are consumed and not forwarded.
func (s *Sequencer) ProcessBlock(events []midi.Event, blockLength int, speed, sampleRate float64, out *midi.List) {
	s.stepLength = StepLength(speed, sampleRate)

	for _, e := range events {
		switch {
		case e.IsNoteOn():
			s.notes.Insert(e.Note())
		case e.IsNoteOff():
			s.notes.Remove(e.Note())
		}
	}

	if s.elapsed+blockLength >= s.stepLength {
		offset := s.stepLength - s.elapsed
		if offset > blockLength-1 {
			offset = blockLength - 1
		}
		if offset < 0 {
			offset = 0
		}

		if s.hasLast {
			out.Add(midi.NoteOff(Channel, s.lastNote, int32(offset)))
			s.hasLast = false
		}

		if n := s.notes.Len(); n > 0 {
			s.currentIndex = (s.currentIndex + 1) % n
			s.lastNote = s.notes.At(s.currentIndex)
			s.hasLast = true
			out.Add(midi.NoteOn(Channel, s.lastNote, midi.MaxVelocity, int32(offset)))
		}
	}

	s.elapsed = (s.elapsed + blockLength) % s.stepLength
}

// Notes returns the held notes in ascending order.
func (s *Sequencer) Notes() []uint8 {
	return s.notes.Notes()
}

// Sounding returns the note started by the last step, if it has not been
// released.
func (s *Sequencer) Sounding() (uint8, bool) {
	return s.lastNote, s.hasLast
}

// Elapsed returns the samples elapsed in the current step.
func (s *Sequencer) Elapsed() int {
	return s.elapsed
}

// CurrentStepLength returns the step length used by the last block.
func (s *Sequencer) CurrentStepLength() int {
	return s.stepLength
}
