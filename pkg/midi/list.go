package midi

import "sort"

// List is a fixed-capacity event buffer. Capacity is reserved up front
// (at prepare time) and Add never grows it, so it is safe to fill from
// the audio thread.
type List struct {
	events  []Event
	dropped int
}

// NewList creates a list that holds up to capacity events.
func NewList(capacity int) *List {
	return &List{events: make([]Event, 0, capacity)}
}

// Add appends e. It returns false, and counts the event as dropped, when
// the list is full.
func (l *List) Add(e Event) bool {
	if len(l.events) == cap(l.events) {
		l.dropped++
		return false
	}
	l.events = append(l.events, e)
	return true
}

// Events returns the buffered events. The slice is only valid until the
// next Clear.
func (l *List) Events() []Event {
	return l.events
}

// Len returns the number of buffered events.
func (l *List) Len() int {
	return len(l.events)
}

// Cap returns the list capacity.
func (l *List) Cap() int {
	return cap(l.events)
}

// Dropped returns how many events were rejected since the last Clear.
func (l *List) Dropped() int {
	return l.dropped
}

// Clear empties the list without releasing its storage.
func (l *List) Clear() {
	l.events = l.events[:0]
	l.dropped = 0
}

// InRange returns a new slice of the events with start <= Offset < end, in
// insertion order. It allocates and is meant for host code.
func (l *List) InRange(start, end int32) []Event {
	var out []Event
	for _, e := range l.events {
		if e.Offset >= start && e.Offset < end {
			out = append(out, e)
		}
	}
	return out
}

// SortByOffset orders events by sample offset, keeping insertion order
// for equal offsets.
func SortByOffset(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Offset < events[j].Offset
	})
}
