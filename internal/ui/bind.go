package ui

import (
	"github.com/five82/waypoint/internal/pages"
	"github.com/five82/waypoint/internal/router"
	"github.com/five82/waypoint/internal/state"
	"github.com/five82/waypoint/internal/theme"
)

// Bind mirrors router and theme events into store and hands navigation
// parameters to the page that receives them. The returned func removes both
// subscriptions.
func Bind(r *router.Router[pages.Page], themes *theme.Manager, store *state.Store) func() {
	navSub := r.Subscribe(func(ev router.Event[pages.Page]) {
		title := ev.Route
		if ev.View != nil {
			ev.View.SetParam(ev.Param)
			title = ev.View.Title()
		}
		store.RecordNavigation(state.Navigation{
			Route:   ev.Route,
			Title:   title,
			Param:   pages.Param(ev.Param),
			Back:    backRoutes(r),
			Forward: forwardRoutes(r),
		})
	})

	themeSub := themes.Subscribe(func(c theme.Changed) {
		store.RecordTheme(c.Kind.String())
	})
	store.RecordTheme(themes.Current().String())

	return func() {
		r.Unsubscribe(navSub)
		themes.Unsubscribe(themeSub)
	}
}

// backRoutes lists back history route names, oldest first.
func backRoutes(r *router.Router[pages.Page]) []string {
	entries := r.BackHistory()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Route
	}
	return names
}

// forwardRoutes lists forward history route names, nearest first.
func forwardRoutes(r *router.Router[pages.Page]) []string {
	entries := r.ForwardHistory()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[len(entries)-1-i] = e.Route
	}
	return names
}
