package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Subscriber receives a fresh snapshot after every mutation.
type Subscriber func(Snapshot)

// Store owns the ordered collection of cart lines for one session. All
// mutations are serialized by an internal mutex; no other component mutates
// the lines directly.
type Store struct {
	mu    sync.Mutex
	lines []Line
	subs  []Subscriber
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a change listener. Subscribers are invoked after the
// mutation completes, outside the store lock.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// AddItem merges into an existing line with equal name and notes, or appends
// a new line with quantity 1. Price and category on a merged line keep their
// original values. Returns the resulting line.
func (s *Store) AddItem(d ItemDescriptor) Line {
	s.mu.Lock()
	var result Line
	merged := false
	for i := range s.lines {
		if s.lines[i].Name == d.Name && s.lines[i].Notes == d.Notes {
			s.lines[i].Quantity++
			result = s.lines[i]
			merged = true
			break
		}
	}
	if !merged {
		result = Line{
			ID:        uuid.NewString(),
			Name:      d.Name,
			UnitPrice: d.UnitPrice,
			Category:  d.Category,
			Quantity:  1,
			Notes:     d.Notes,
		}
		s.lines = append(s.lines, result)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return result
}

// RemoveItem deletes the line with the given id. Absent ids are a no-op, not
// an error: a second remove of the same line must not break the flow.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			removed = true
			break
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if removed {
		s.notify(snap)
	}
}

// SetQuantity sets the line's quantity. A quantity of zero or less removes
// the line; there is no upper bound.
func (s *Store) SetQuantity(id string, n int) {
	if n <= 0 {
		s.RemoveItem(id)
		return
	}

	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = n
			changed = true
			break
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.notify(snap)
	}
}

// SetNotes replaces the notes on the matching line. It deliberately does not
// re-run the merge check: two lines may end up with the same name and notes
// through this path.
func (s *Store) SetNotes(id, text string) {
	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Notes = text
			changed = true
			break
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.notify(snap)
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Totals recomputes subtotal, tax, and total from the current lines.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.lines)
}

// ItemCount is the sum of all line quantities, used for the cart badge.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return itemCount(s.lines)
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.lines...)
}

// Snapshot returns the current lines, totals, and item count.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	lines := append([]Line(nil), s.lines...)
	return Snapshot{
		Lines:     lines,
		Totals:    ComputeTotals(lines),
		ItemCount: itemCount(lines),
	}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	subs := append([]Subscriber(nil), s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

func itemCount(lines []Line) int {
	n := 0
	for _, ln := range lines {
		n += ln.Quantity
	}
	return n
}
