package theme

import "sync"

// Changed is delivered to subscribers after the active scheme changes.
type Changed struct {
	Kind   Kind
	Colors Palette
}

// Manager holds the active color scheme and notifies subscribers when it
// changes. It is safe for concurrent use; handlers run on the goroutine that
// changed the theme, after the manager's lock is released.
type Manager struct {
	mu       sync.Mutex
	current  Kind
	colors   Palette
	custom   *Palette
	lastID   int
	handlers []handlerEntry
}

type handlerEntry struct {
	id int
	fn func(Changed)
}

// New creates a manager with kind active. Custom starts as Light until
// SetCustom supplies a palette.
func New(kind Kind) *Manager {
	m := &Manager{current: kind}
	m.colors = m.paletteLocked(kind)
	return m
}

// Current returns the active kind.
func (m *Manager) Current() Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Colors returns the active palette.
func (m *Manager) Colors() Palette {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.colors
}

// Palette returns the palette for kind without activating it.
func (m *Manager) Palette(kind Kind) Palette {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paletteLocked(kind)
}

// SetTheme activates kind. Setting the already active kind does nothing.
func (m *Manager) SetTheme(kind Kind) {
	m.mu.Lock()
	if m.current == kind {
		m.mu.Unlock()
		return
	}
	m.current = kind
	m.colors = m.paletteLocked(kind)
	event, handlers := m.changedLocked()
	m.mu.Unlock()

	notify(handlers, event)
}

// SetCustom stores p as the Custom palette and activates it. It always
// notifies, even if Custom was already active.
func (m *Manager) SetCustom(p Palette) {
	m.mu.Lock()
	custom := p
	m.custom = &custom
	m.current = Custom
	m.colors = custom
	event, handlers := m.changedLocked()
	m.mu.Unlock()

	notify(handlers, event)
}

// Subscribe registers fn for change notifications and returns an id for
// Unsubscribe. A nil fn is ignored and yields 0.
func (m *Manager) Subscribe(fn func(Changed)) int {
	if fn == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID++
	m.handlers = append(m.handlers, handlerEntry{id: m.lastID, fn: fn})
	return m.lastID
}

// Unsubscribe removes the handler registered under id.
func (m *Manager) Unsubscribe(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, h := range m.handlers {
		if h.id == id {
			m.handlers = append(m.handlers[:i:i], m.handlers[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Manager) paletteLocked(kind Kind) Palette {
	if kind == Custom {
		if m.custom != nil {
			return *m.custom
		}
		return lightPalette()
	}
	if p, ok := builtin(kind); ok {
		return p
	}
	return lightPalette()
}

func (m *Manager) changedLocked() (Changed, []handlerEntry) {
	handlers := make([]handlerEntry, len(m.handlers))
	copy(handlers, m.handlers)
	return Changed{Kind: m.current, Colors: m.colors}, handlers
}

func notify(handlers []handlerEntry, event Changed) {
	for _, h := range handlers {
		h.fn(event)
	}
}
