// Package router resolves logical route names to views and keeps a linear
// back/forward navigation history.
//
// # Overview
//
// A Router owns three things:
//
//   - a Registry mapping route names to factories
//   - the navigation state: the current entry plus back and forward stacks
//   - an observer list notified after every successful navigation
//
// The router is generic over the view type and never inspects views. It is
// independent of any UI toolkit; the shell in internal/ui hosts it.
//
// # Navigation Model
//
// NavigateTo always invokes the route's factory, so navigating to the same
// route twice yields two distinct views. The outgoing entry is pushed onto
// back history together with the parameter it was created with, and forward
// history is cleared.
//
// GoBack and GoForward move entries between the two stacks and reuse the
// stored view instances. Both are no-ops on an empty stack. ClearHistory
// empties both stacks but keeps the current view.
//
//	r := router.New[pages.Page]()
//	r.RegisterRoute("Home", newHome)
//	r.RegisterRoute("Tool", newTool)
//
//	_ = r.NavigateTo("Home", nil) // current=Home
//	_ = r.NavigateTo("Tool", 42)  // current=Tool back=[Home]
//	r.GoBack()                    // current=Home forward=[Tool]
//	r.GoForward()                 // current=Tool (same instance) back=[Home]
//
// # Parameters
//
// By default every archival path keeps the entry's parameter. WithLegacyArchive
// drops it when GoBack or GoForward archives the outgoing entry, which matches
// older hosts that only restored parameters on fresh navigations.
//
// # Errors
//
// NavigateTo is the only operation that fails:
//
//   - RouteNotFoundError: the name has no registration
//   - ViewCreationError: the factory returned an error or panicked
//
// A failed navigation leaves the router exactly as it was and emits nothing.
// RegisterType returns InvalidRouteTypeError for types that cannot produce a
// view.
//
// # Events
//
// Handlers run synchronously on the caller's goroutine, in registration
// order, after the state change has been committed. A handler that panics is
// recovered and logged; the others still run. Hosts that render on another
// goroutine must hand the event over themselves.
//
// # Concurrency
//
// Router has no locks. Call it from a single goroutine, such as a Bubble Tea
// update loop, or guard it with an external mutex.
package router
