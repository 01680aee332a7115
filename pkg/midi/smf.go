package midi

import (
	"errors"
	"fmt"
	"math"
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultBPM is assumed for files without a tempo change.
const DefaultBPM = 120.0

// filePPQ is the resolution of files written by WriteSMF.
const filePPQ = 960

// TimedEvent is an event at an absolute sample position in a stream. The
// Offset field of Event is ignored.
type TimedEvent struct {
	Position int64
	Event    Event
}

// Timeline is the note content of a Standard MIDI File mapped onto samples.
type Timeline struct {
	Events []TimedEvent
	BPM    float64
}

// Length returns the position one past the last event.
func (t *Timeline) Length() int64 {
	if len(t.Events) == 0 {
		return 0
	}
	return t.Events[len(t.Events)-1].Position + 1
}

// ReadSMF loads note and controller events from all tracks of path and
// places them on a sample timeline using the file's first tempo.
func ReadSMF(path string, sampleRate float64) (*Timeline, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %f", sampleRate)
	}

	rd, err := smf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ticks, ok := rd.TimeFormat.(smf.MetricTicks)
	if !ok || ticks == 0 {
		return nil, errors.New("only metric (PPQ) time formats are supported")
	}

	tl := &Timeline{BPM: DefaultBPM}
	if changes := rd.TempoChanges(); len(changes) > 0 && changes[0].BPM > 0 {
		tl.BPM = changes[0].BPM
	}

	samplesPerTick := sampleRate * 60.0 / tl.BPM / float64(ticks)
	for _, track := range rd.Tracks {
		var abs uint64
		for _, ev := range track {
			abs += uint64(ev.Delta)
			e, ok := FromMessage(gomidi.Message(ev.Message), 0)
			if !ok {
				continue
			}
			tl.Events = append(tl.Events, TimedEvent{
				Position: int64(math.Round(float64(abs) * samplesPerTick)),
				Event:    e,
			})
		}
	}

	sort.SliceStable(tl.Events, func(i, j int) bool {
		return tl.Events[i].Position < tl.Events[j].Position
	})
	return tl, nil
}

// WriteSMF writes events as a format 1 file with a tempo track and one
// note track, at 960 ticks per quarter note. Events must be sorted by
// position.
func WriteSMF(path string, events []TimedEvent, sampleRate, bpm float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %f", sampleRate)
	}
	if bpm <= 0 {
		bpm = DefaultBPM
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(filePPQ)

	var tempo smf.Track
	tempo.Add(0, smf.MetaTempo(bpm))
	tempo.Close(0)
	if err := s.Add(tempo); err != nil {
		return fmt.Errorf("add tempo track: %w", err)
	}

	ticksPerSample := bpm / 60.0 * filePPQ / sampleRate
	var notes smf.Track
	var last uint32
	for _, te := range events {
		msg := te.Event.Message()
		if msg == nil {
			continue
		}
		tick := uint32(math.Round(float64(te.Position) * ticksPerSample))
		if tick < last {
			return fmt.Errorf("events not sorted at position %d", te.Position)
		}
		notes.Add(tick-last, msg)
		last = tick
	}
	notes.Close(0)
	if err := s.Add(notes); err != nil {
		return fmt.Errorf("add note track: %w", err)
	}

	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
