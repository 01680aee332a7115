// Package arp implements a block-based arpeggiator: a set of held notes
// and a sequencer that steps through them at a speed-dependent rate.
package arp

// NoteSet is an ascending, duplicate-free set of MIDI note numbers. The
// zero value is an empty set. It never allocates.
type NoteSet struct {
	notes [128]uint8
	n     int
}

// Insert adds note, keeping the set sorted. Notes above 127 are ignored.
func (s *NoteSet) Insert(note uint8) {
	if note > 127 {
		return
	}
	i := s.search(note)
	if i < s.n && s.notes[i] == note {
		return
	}
	copy(s.notes[i+1:s.n+1], s.notes[i:s.n])
	s.notes[i] = note
	s.n++
}

// Remove deletes note if present.
func (s *NoteSet) Remove(note uint8) {
	i := s.search(note)
	if i == s.n || s.notes[i] != note {
		return
	}
	copy(s.notes[i:s.n-1], s.notes[i+1:s.n])
	s.n--
}

// Contains reports whether note is held.
func (s *NoteSet) Contains(note uint8) bool {
	i := s.search(note)
	return i < s.n && s.notes[i] == note
}

// Len returns the number of held notes.
func (s *NoteSet) Len() int {
	return s.n
}

// At returns the i-th lowest note.
func (s *NoteSet) At(i int) uint8 {
	return s.notes[i]
}

// Notes returns the held notes in ascending order. The slice aliases the
// set and changes with it.
func (s *NoteSet) Notes() []uint8 {
	return s.notes[:s.n]
}

// Clear empties the set.
func (s *NoteSet) Clear() {
	s.n = 0
}

// search returns the index of the first element >= note.
func (s *NoteSet) search(note uint8) int {
	lo, hi := 0, s.n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.notes[mid] < note {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
