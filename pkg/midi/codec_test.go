package midi

import (
	"path/filepath"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestMessageRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		event Event
	}{
		{"note on", NoteOn(0, 60, 127, 0)},
		{"note off", NoteOff(3, 72, 0)},
		{"control change", ControlChange(1, 7, 100, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromMessage(ToMessage(tt.event), 42)
			if !ok {
				t.Fatalf("FromMessage rejected %v", tt.event)
			}
			want := tt.event.WithOffset(42)
			if got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestFromMessageZeroVelocity(t *testing.T) {
	got, ok := FromMessage(gomidi.NoteOn(2, 64, 0), 7)
	if !ok {
		t.Fatal("note-on with velocity 0 not converted")
	}
	if got.Type != EventTypeNoteOff || got.Note() != 64 || got.Channel != 2 {
		t.Errorf("got %v, want NoteOff ch 2 note 64", got)
	}
}

func TestFromMessageIgnoresOtherMessages(t *testing.T) {
	if _, ok := FromMessage(gomidi.Pitchbend(0, 100), 0); ok {
		t.Error("pitch bend should not convert")
	}
}

func TestSMFRoundTrip(t *testing.T) {
	const sampleRate = 44100.0
	path := filepath.Join(t.TempDir(), "notes.mid")

	events := []TimedEvent{
		{Position: 0, Event: NoteOn(0, 60, 100, 0)},
		{Position: 0, Event: NoteOn(0, 64, 100, 0)},
		{Position: 22050, Event: NoteOff(0, 60, 0)},
		{Position: 44100, Event: NoteOff(0, 64, 0)},
	}

	if err := WriteSMF(path, events, sampleRate, 120); err != nil {
		t.Fatalf("WriteSMF: %v", err)
	}

	tl, err := ReadSMF(path, sampleRate)
	if err != nil {
		t.Fatalf("ReadSMF: %v", err)
	}
	if tl.BPM != 120 {
		t.Errorf("BPM = %f, want 120", tl.BPM)
	}
	if len(tl.Events) != len(events) {
		t.Fatalf("read %d events, want %d", len(tl.Events), len(events))
	}
	for i := range events {
		if tl.Events[i].Position != events[i].Position || tl.Events[i].Event != events[i].Event {
			t.Errorf("event %d = %+v, want %+v", i, tl.Events[i], events[i])
		}
	}
	if tl.Length() != 44101 {
		t.Errorf("Length = %d, want 44101", tl.Length())
	}
}

func TestWriteSMFRejectsUnsorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mid")
	events := []TimedEvent{
		{Position: 100, Event: NoteOn(0, 60, 100, 0)},
		{Position: 0, Event: NoteOff(0, 60, 0)},
	}
	if err := WriteSMF(path, events, 44100, 120); err == nil {
		t.Error("expected error for unsorted events")
	}
}

func TestReadSMFMissingFile(t *testing.T) {
	if _, err := ReadSMF(filepath.Join(t.TempDir(), "missing.mid"), 44100); err == nil {
		t.Error("expected error for missing file")
	}
}
