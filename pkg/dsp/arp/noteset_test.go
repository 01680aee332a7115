package arp

import (
	"math/rand"
	"sort"
	"testing"
)

func TestNoteSetOrderedUnique(t *testing.T) {
	var s NoteSet
	for _, n := range []uint8{64, 60, 67, 60, 72, 64} {
		s.Insert(n)
	}

	want := []uint8{60, 64, 67, 72}
	got := s.Notes()
	if len(got) != len(want) {
		t.Fatalf("Notes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Notes() = %v, want %v", got, want)
		}
	}

	s.Remove(64)
	s.Remove(99)
	if s.Contains(64) || s.Len() != 3 {
		t.Errorf("after Remove: %v", s.Notes())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Clear left %v", s.Notes())
	}
}

func TestNoteSetIgnoresOutOfRange(t *testing.T) {
	var s NoteSet
	s.Insert(128)
	s.Insert(255)
	if s.Len() != 0 {
		t.Errorf("out of range notes inserted: %v", s.Notes())
	}
}

func TestNoteSetRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var s NoteSet
	ref := map[uint8]bool{}

	for i := 0; i < 5000; i++ {
		note := uint8(rng.Intn(128))
		if rng.Intn(2) == 0 {
			s.Insert(note)
			ref[note] = true
		} else {
			s.Remove(note)
			delete(ref, note)
		}

		if s.Len() != len(ref) {
			t.Fatalf("op %d: len %d, want %d", i, s.Len(), len(ref))
		}
		notes := s.Notes()
		if !sort.SliceIsSorted(notes, func(a, b int) bool { return notes[a] < notes[b] }) {
			t.Fatalf("op %d: not sorted: %v", i, notes)
		}
		for j := 1; j < len(notes); j++ {
			if notes[j] == notes[j-1] {
				t.Fatalf("op %d: duplicate %d", i, notes[j])
			}
		}
		for _, n := range notes {
			if !ref[n] {
				t.Fatalf("op %d: unexpected note %d", i, n)
			}
		}
	}
}

func TestNoteSetFull(t *testing.T) {
	var s NoteSet
	for n := 127; n >= 0; n-- {
		s.Insert(uint8(n))
	}
	if s.Len() != 128 || s.At(0) != 0 || s.At(127) != 127 {
		t.Errorf("full set: len %d first %d last %d", s.Len(), s.At(0), s.At(127))
	}
}
