// Package state holds the snapshot the shell renders from.
//
// Router and theme subscribers write into a Store as events fire; the shell
// reads a Snapshot when it draws. The Store is safe for concurrent use and its
// zero value is ready to use:
//
//	var store state.Store
//	store.RecordNavigation(state.Navigation{Route: "Home", Title: "Home"})
//	snap := store.Snapshot()
//
// Snapshot returns deep copies of the history slices, so callers may keep or
// modify them freely. A recorded error survives until the next successful
// navigation or an explicit RecordError(nil).
package state
