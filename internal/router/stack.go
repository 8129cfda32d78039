package router

// Entry is one point in navigation history: the route that produced a view,
// the view itself, and the parameter it was navigated with.
type Entry[V any] struct {
	Route string
	View  V
	Param any
}

// stack is a LIFO of entries, most recent last. A positive limit keeps only
// the newest limit entries.
type stack[V any] struct {
	entries []Entry[V]
	limit   int
}

func (s *stack[V]) push(entry Entry[V]) {
	s.entries = append(s.entries, entry)
	if s.limit > 0 && len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		// Zero the dropped slots so their views can be collected.
		clear(s.entries[:drop])
		s.entries = s.entries[drop:]
	}
}

func (s *stack[V]) pop() (Entry[V], bool) {
	if len(s.entries) == 0 {
		return Entry[V]{}, false
	}
	last := len(s.entries) - 1
	entry := s.entries[last]
	s.entries[last] = Entry[V]{}
	s.entries = s.entries[:last]
	return entry, true
}

func (s *stack[V]) len() int {
	return len(s.entries)
}

func (s *stack[V]) reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// snapshot returns a copy ordered oldest first.
func (s *stack[V]) snapshot() []Entry[V] {
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]Entry[V], len(s.entries))
	copy(dup, s.entries)
	return dup
}
