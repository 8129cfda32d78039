package router

import (
	"reflect"

	"github.com/rs/zerolog"
)

type settings struct {
	logger        zerolog.Logger
	historyLimit  int
	legacyArchive bool
}

// Option configures a Router.
type Option func(*settings)

// WithLogger sets the logger used for navigation diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithHistoryLimit keeps at most n entries in each history stack. Zero or a
// negative n leaves history unbounded.
func WithHistoryLimit(n int) Option {
	return func(s *settings) {
		if n < 0 {
			n = 0
		}
		s.historyLimit = n
	}
}

// WithLegacyArchive makes GoBack and GoForward archive the outgoing entry
// without its parameter. NavigateTo always keeps it.
func WithLegacyArchive() Option {
	return func(s *settings) {
		s.legacyArchive = true
	}
}

// Router resolves route names to views and keeps a linear back/forward
// history. It is not safe for concurrent use; drive it from one goroutine.
type Router[V any] struct {
	registry *Registry[V]
	events   emitter[V]

	current Entry[V]
	active  bool
	back    stack[V]
	forward stack[V]

	logger        zerolog.Logger
	legacyArchive bool

	emitting uint64 // incremented per emission
}

// New creates a router with no routes and no current view.
func New[V any](opts ...Option) *Router[V] {
	cfg := settings{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Router[V]{
		registry:      NewRegistry[V](),
		back:          stack[V]{limit: cfg.historyLimit},
		forward:       stack[V]{limit: cfg.historyLimit},
		logger:        cfg.logger,
		legacyArchive: cfg.legacyArchive,
	}
}

// RegisterRoute stores factory under name. A later registration of the same
// name wins; views already created are unaffected.
func (r *Router[V]) RegisterRoute(name string, factory Factory[V]) {
	r.registry.Register(name, factory)
	r.logger.Debug().Str("Function", "RegisterRoute").Str("Route", name).Msg("route registered")
}

// RegisterType registers a route whose views are zero values of t.
func (r *Router[V]) RegisterType(name string, t reflect.Type) error {
	if err := r.registry.RegisterType(name, t); err != nil {
		return err
	}
	r.logger.Debug().Str("Function", "RegisterType").Str("Route", name).Str("Type", t.String()).Msg("route registered")
	return nil
}

// Routes returns the registered route names in sorted order.
func (r *Router[V]) Routes() []string {
	return r.registry.Names()
}

// HasRoute reports whether name is registered.
func (r *Router[V]) HasRoute(name string) bool {
	return r.registry.Has(name)
}

// NavigateTo creates a new view for name and makes it current. The previous
// entry moves onto back history and forward history is discarded. If the
// route cannot be resolved the router is left untouched and no event fires.
func (r *Router[V]) NavigateTo(name string, param any) error {
	view, err := r.registry.Resolve(name)
	if err != nil {
		r.logger.Warn().Str("Function", "NavigateTo").Str("Route", name).Err(err).Msg("navigation failed")
		return err
	}

	if r.active {
		r.back.push(r.current)
	}
	r.forward.reset()
	r.current = Entry[V]{Route: name, View: view, Param: param}
	r.active = true

	r.logger.Info().Str("Function", "NavigateTo").Str("Route", name).Int("Back", r.back.len()).Msg("navigated")
	r.emit(r.current)
	return nil
}

// GoBack restores the most recent back entry. It does nothing when back
// history is empty.
func (r *Router[V]) GoBack() {
	entry, ok := r.back.pop()
	if !ok {
		return
	}
	if r.active {
		r.forward.push(r.archived(r.current))
	}
	r.current = entry
	r.active = true

	r.logger.Info().Str("Function", "GoBack").Str("Route", entry.Route).Int("Back", r.back.len()).Int("Forward", r.forward.len()).Msg("navigated")
	r.emit(entry)
}

// GoForward restores the most recent forward entry. It does nothing when
// forward history is empty.
func (r *Router[V]) GoForward() {
	entry, ok := r.forward.pop()
	if !ok {
		return
	}
	if r.active {
		r.back.push(r.archived(r.current))
	}
	r.current = entry
	r.active = true

	r.logger.Info().Str("Function", "GoForward").Str("Route", entry.Route).Int("Back", r.back.len()).Int("Forward", r.forward.len()).Msg("navigated")
	r.emit(entry)
}

// ClearHistory empties both history stacks. The current view stays.
func (r *Router[V]) ClearHistory() {
	r.back.reset()
	r.forward.reset()
	r.logger.Debug().Str("Function", "ClearHistory").Msg("history cleared")
}

// CanGoBack reports whether back history is non-empty.
func (r *Router[V]) CanGoBack() bool {
	return r.back.len() > 0
}

// CanGoForward reports whether forward history is non-empty.
func (r *Router[V]) CanGoForward() bool {
	return r.forward.len() > 0
}

// Current returns the current entry; ok is false before the first
// successful navigation.
func (r *Router[V]) Current() (entry Entry[V], ok bool) {
	return r.current, r.active
}

// CurrentView returns the current view, if any.
func (r *Router[V]) CurrentView() (view V, ok bool) {
	return r.current.View, r.active
}

// CurrentRoute returns the route name of the current view, or "".
func (r *Router[V]) CurrentRoute() string {
	return r.current.Route
}

// BackHistory returns a copy of back history, oldest first.
func (r *Router[V]) BackHistory() []Entry[V] {
	return r.back.snapshot()
}

// ForwardHistory returns a copy of forward history, oldest first. The last
// element is the entry GoForward would restore.
func (r *Router[V]) ForwardHistory() []Entry[V] {
	return r.forward.snapshot()
}

// Subscribe registers h for navigation events. Handlers run synchronously on
// the navigating goroutine in registration order. A handler may navigate;
// subscribers it preempts receive only the newer event. A nil handler is
// ignored and yields the zero Subscription.
func (r *Router[V]) Subscribe(h Handler[V]) Subscription {
	if h == nil {
		return 0
	}
	return r.events.add(h)
}

// Unsubscribe removes a handler. It reports false if sub was not registered.
func (r *Router[V]) Unsubscribe(sub Subscription) bool {
	return r.events.remove(sub)
}

func (r *Router[V]) archived(entry Entry[V]) Entry[V] {
	if r.legacyArchive {
		entry.Param = nil
	}
	return entry
}

// emit delivers entry to every subscriber. If a handler navigates, the newer
// emission supersedes this one and the remaining subscribers only see the
// newer event.
func (r *Router[V]) emit(entry Entry[V]) {
	r.emitting++
	seq := r.emitting
	event := Event[V]{Route: entry.Route, View: entry.View, Param: entry.Param}
	for _, sub := range r.events.snapshot() {
		if r.emitting != seq {
			return
		}
		r.deliver(sub, event)
	}
}

// deliver recovers a handler panic and logs it; the remaining handlers
// still run.
func (r *Router[V]) deliver(sub subscriber[V], event Event[V]) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Str("Function", "emit").
				Str("Route", event.Route).
				Uint64("Subscription", uint64(sub.id)).
				Interface("Panic", rec).
				Msg("navigation handler panicked")
		}
	}()
	sub.fn(event)
}
