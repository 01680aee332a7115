package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"
)

// FromMessage converts a raw MIDI message into an Event at the given block
// offset. Note-on with velocity 0 becomes a note-off. Messages other than
// notes and controllers are reported as not converted.
func FromMessage(msg gomidi.Message, offset int32) (Event, bool) {
	var channel, data1, data2 uint8

	switch {
	case msg.GetNoteStart(&channel, &data1, &data2):
		return NoteOn(channel, data1, data2, offset), true
	case msg.GetNoteEnd(&channel, &data1):
		return NoteOff(channel, data1, offset), true
	case msg.GetControlChange(&channel, &data1, &data2):
		return ControlChange(channel, data1, data2, offset), true
	}
	return Event{}, false
}

// Message returns the raw MIDI encoding of e. The sample offset is not part
// of the message.
func (e Event) Message() gomidi.Message {
	switch e.Type {
	case EventTypeNoteOn:
		return gomidi.NoteOn(e.Channel, e.Data1, e.Data2)
	case EventTypeNoteOff:
		return gomidi.NoteOff(e.Channel, e.Data1)
	case EventTypeControlChange:
		return gomidi.ControlChange(e.Channel, e.Data1, e.Data2)
	}
	return nil
}

// ToMessage is the function form of Event.Message.
func ToMessage(e Event) gomidi.Message {
	return e.Message()
}
