package router

// Event describes the entry that just became current.
type Event[V any] struct {
	Route string
	View  V
	Param any
}

// Handler receives navigation events.
type Handler[V any] func(Event[V])

// Subscription identifies a registered handler. The zero value is never
// issued.
type Subscription uint64

type subscriber[V any] struct {
	id Subscription
	fn Handler[V]
}

type emitter[V any] struct {
	last Subscription
	subs []subscriber[V]
}

func (e *emitter[V]) add(fn Handler[V]) Subscription {
	e.last++
	e.subs = append(e.subs, subscriber[V]{id: e.last, fn: fn})
	return e.last
}

func (e *emitter[V]) remove(id Subscription) bool {
	for i, sub := range e.subs {
		if sub.id == id {
			// Copy-on-remove keeps any in-flight snapshot intact.
			next := make([]subscriber[V], 0, len(e.subs)-1)
			next = append(next, e.subs[:i]...)
			next = append(next, e.subs[i+1:]...)
			e.subs = next
			return true
		}
	}
	return false
}

// snapshot returns the subscribers in registration order.
func (e *emitter[V]) snapshot() []subscriber[V] {
	return e.subs[:len(e.subs):len(e.subs)]
}
