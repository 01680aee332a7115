// Package midi defines the note events exchanged with processors, a
// fixed-capacity event list for the audio thread, and conversion to and
// from raw MIDI messages and Standard MIDI Files.
package midi

import (
	"fmt"
)

// EventType identifies the kind of an Event.
type EventType uint8

const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
	EventTypeControlChange
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventTypeNoteOff:
		return "NoteOff"
	case EventTypeNoteOn:
		return "NoteOn"
	case EventTypeControlChange:
		return "CC"
	default:
		return "Unknown"
	}
}

// MaxVelocity is the velocity used for generated notes.
const MaxVelocity uint8 = 127

// Event is a channel message positioned within a block. It is a plain
// value so that lists of events can be filled on the audio thread without
// allocating.
type Event struct {
	Type    EventType
	Channel uint8
	Offset  int32 // sample offset within the block
	Data1   uint8 // note number or controller
	Data2   uint8 // velocity or controller value
}

// NoteOn returns a note-on event.
func NoteOn(channel, note, velocity uint8, offset int32) Event {
	return Event{Type: EventTypeNoteOn, Channel: channel, Offset: offset, Data1: note, Data2: velocity}
}

// NoteOff returns a note-off event.
func NoteOff(channel, note uint8, offset int32) Event {
	return Event{Type: EventTypeNoteOff, Channel: channel, Offset: offset, Data1: note}
}

// ControlChange returns a controller event.
func ControlChange(channel, controller, value uint8, offset int32) Event {
	return Event{Type: EventTypeControlChange, Channel: channel, Offset: offset, Data1: controller, Data2: value}
}

// Note returns the note number of a note event.
func (e Event) Note() uint8 { return e.Data1 }

// Velocity returns the velocity of a note event.
func (e Event) Velocity() uint8 { return e.Data2 }

// IsNoteOn reports whether e starts a note. A note-on with velocity 0 is
// a note-off, as on the wire.
func (e Event) IsNoteOn() bool {
	return e.Type == EventTypeNoteOn && e.Data2 > 0
}

// IsNoteOff reports whether e ends a note.
func (e Event) IsNoteOff() bool {
	return e.Type == EventTypeNoteOff || (e.Type == EventTypeNoteOn && e.Data2 == 0)
}

// WithOffset returns a copy of e at a different sample offset.
func (e Event) WithOffset(offset int32) Event {
	e.Offset = offset
	return e
}

func (e Event) String() string {
	switch e.Type {
	case EventTypeNoteOn:
		return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.Offset)
	case EventTypeNoteOff:
		return fmt.Sprintf("NoteOff{ch:%d, note:%d, offset:%d}", e.Channel, e.Data1, e.Offset)
	case EventTypeControlChange:
		return fmt.Sprintf("CC{ch:%d, ctrl:%d, val:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.Offset)
	}
	return fmt.Sprintf("Event{type:%d, offset:%d}", e.Type, e.Offset)
}

// NoteNumberToName returns names like "C4" (MIDI 60).
func NoteNumberToName(note uint8) string {
	names := [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	return fmt.Sprintf("%s%d", names[note%12], int(note/12)-1)
}
