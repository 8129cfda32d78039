package state

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Navigation describes the router state right after a navigation event.
type Navigation struct {
	Route   string
	Title   string
	Param   string
	Back    []string // oldest first
	Forward []string // nearest first
}

// Snapshot represents the latest data available to the shell renderer.
type Snapshot struct {
	Route         string
	Title         string
	Param         string
	Back          []string
	Forward       []string
	Theme         string
	LastNavigated time.Time
	Navigations   int
	LastError     error
}

// CanGoBack reports whether the back history is non-empty.
func (s Snapshot) CanGoBack() bool { return len(s.Back) > 0 }

// CanGoForward reports whether the forward history is non-empty.
func (s Snapshot) CanGoForward() bool { return len(s.Forward) > 0 }

// HasRoute reports whether any navigation has been recorded yet.
func (s Snapshot) HasRoute() bool { return s.Route != "" }

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// RecordNavigation replaces the route portion of the snapshot and clears any
// previous error.
func (s *Store) RecordNavigation(nav Navigation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Route = nav.Route
	s.snapshot.Title = nav.Title
	s.snapshot.Param = nav.Param
	s.snapshot.Back = slices.Clone(nav.Back)
	s.snapshot.Forward = slices.Clone(nav.Forward)
	s.snapshot.LastNavigated = time.Now()
	s.snapshot.Navigations++
	s.snapshot.LastError = nil
}

// RecordHistory replaces the back and forward route names without counting a
// navigation.
func (s *Store) RecordHistory(back, forward []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Back = slices.Clone(back)
	s.snapshot.Forward = slices.Clone(forward)
}

// RecordTheme stores the active theme name.
func (s *Store) RecordTheme(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Theme = name
}

// RecordError keeps the previous navigation data but records err for display.
// A nil err clears the error.
func (s *Store) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Back = slices.Clone(s.snapshot.Back)
	snap.Forward = slices.Clone(s.snapshot.Forward)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
