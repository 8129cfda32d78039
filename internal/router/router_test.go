package router

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type page struct {
	route  string
	serial int
}

type recorder struct {
	events []Event[*page]
}

func (rec *recorder) handle(e Event[*page]) {
	rec.events = append(rec.events, e)
}

// newTestRouter registers Home and Tool; every factory call yields a new page
// with an increasing serial.
func newTestRouter(t *testing.T, opts ...Option) (*Router[*page], *int) {
	t.Helper()
	created := 0
	r := New[*page](opts...)
	for _, name := range []string{"Home", "Tool", "Settings"} {
		r.RegisterRoute(name, func() (*page, error) {
			created++
			return &page{route: name, serial: created}, nil
		})
	}
	return r, &created
}

func routes(entries []Entry[*page]) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Route)
	}
	return out
}

func mustNavigate(t *testing.T, r *Router[*page], name string, param any) *page {
	t.Helper()
	if err := r.NavigateTo(name, param); err != nil {
		t.Fatalf("NavigateTo(%q) error = %v", name, err)
	}
	view, ok := r.CurrentView()
	if !ok {
		t.Fatalf("CurrentView() ok = false after NavigateTo(%q)", name)
	}
	return view
}

func TestNew_StartsEmpty(t *testing.T) {
	r, _ := newTestRouter(t)

	if _, ok := r.CurrentView(); ok {
		t.Fatal("CurrentView() ok = true, want false on a new router")
	}
	if r.CurrentRoute() != "" {
		t.Fatalf("CurrentRoute() = %q, want empty", r.CurrentRoute())
	}
	if r.CanGoBack() || r.CanGoForward() {
		t.Fatalf("CanGoBack=%v CanGoForward=%v, want both false", r.CanGoBack(), r.CanGoForward())
	}
}

func TestNavigateTo_SetsCurrentAndBackHistory(t *testing.T) {
	r, _ := newTestRouter(t)

	for i, name := range []string{"Home", "Tool", "Settings", "Home"} {
		view := mustNavigate(t, r, name, i)
		if view.route != name {
			t.Fatalf("CurrentView().route = %q, want %q", view.route, name)
		}
		if r.CurrentRoute() != name {
			t.Fatalf("CurrentRoute() = %q, want %q", r.CurrentRoute(), name)
		}
		if i > 0 && !r.CanGoBack() {
			t.Fatalf("CanGoBack() = false after navigation %d", i)
		}
	}

	got := routes(r.BackHistory())
	want := []string{"Home", "Tool", "Settings"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("BackHistory() = %v, want %v", got, want)
	}
}

func TestNavigateTo_CreatesNewInstanceEachTime(t *testing.T) {
	r, created := newTestRouter(t)

	first := mustNavigate(t, r, "Home", nil)
	second := mustNavigate(t, r, "Home", nil)
	if first == second {
		t.Fatal("NavigateTo reused a view instance, want a fresh one")
	}
	if *created != 2 {
		t.Fatalf("factory calls = %d, want 2", *created)
	}
}

func TestNavigateTo_ArchivesOriginalParam(t *testing.T) {
	r, _ := newTestRouter(t)

	mustNavigate(t, r, "Home", "home-param")
	mustNavigate(t, r, "Tool", "tool-param")

	back := r.BackHistory()
	if len(back) != 1 || back[0].Param != "home-param" {
		t.Fatalf("BackHistory() = %+v, want Home with home-param", back)
	}
	entry, _ := r.Current()
	if entry.Param != "tool-param" {
		t.Fatalf("Current().Param = %v, want tool-param", entry.Param)
	}
}

func TestGoBackGoForward_ReuseInstances(t *testing.T) {
	r, created := newTestRouter(t)

	home := mustNavigate(t, r, "Home", nil)
	tool := mustNavigate(t, r, "Tool", nil)

	r.GoBack()
	if view, _ := r.CurrentView(); view != home {
		t.Fatalf("after GoBack current = %+v, want original Home %+v", view, home)
	}
	r.GoForward()
	if view, _ := r.CurrentView(); view != tool {
		t.Fatalf("after GoForward current = %+v, want original Tool %+v", view, tool)
	}
	if *created != 2 {
		t.Fatalf("factory calls = %d, want 2 (no re-resolution on back/forward)", *created)
	}
	if r.CurrentRoute() != "Tool" {
		t.Fatalf("CurrentRoute() = %q, want Tool", r.CurrentRoute())
	}
}

func TestNavigateTo_ClearsForwardHistory(t *testing.T) {
	r, _ := newTestRouter(t)

	mustNavigate(t, r, "Home", nil)
	mustNavigate(t, r, "Tool", nil)
	mustNavigate(t, r, "Settings", nil)
	r.GoBack() // back=[Home] forward=[Settings]

	if got := routes(r.BackHistory()); len(got) != 1 || got[0] != "Home" {
		t.Fatalf("setup: BackHistory() = %v, want [Home]", got)
	}
	if got := routes(r.ForwardHistory()); len(got) != 1 || got[0] != "Settings" {
		t.Fatalf("setup: ForwardHistory() = %v, want [Settings]", got)
	}

	mustNavigate(t, r, "Tool", nil)
	if r.CanGoForward() {
		t.Fatalf("CanGoForward() = true after NavigateTo, want false")
	}
	if len(r.ForwardHistory()) != 0 {
		t.Fatalf("ForwardHistory() = %v, want empty", routes(r.ForwardHistory()))
	}
}

func TestGoBackGoForward_EmptyStacksAreNoOps(t *testing.T) {
	r, _ := newTestRouter(t)
	var rec recorder
	r.Subscribe(rec.handle)

	r.GoBack()
	r.GoForward()
	if _, ok := r.CurrentView(); ok {
		t.Fatal("CurrentView() ok = true after no-op back/forward on empty router")
	}

	home := mustNavigate(t, r, "Home", nil)
	rec.events = nil

	r.GoBack()
	r.GoForward()
	if view, _ := r.CurrentView(); view != home {
		t.Fatalf("current changed by no-op back/forward: got %+v want %+v", view, home)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events = %d, want 0 for no-op back/forward", len(rec.events))
	}
}

func TestClearHistory_KeepsCurrent(t *testing.T) {
	r, _ := newTestRouter(t)
	var rec recorder
	r.Subscribe(rec.handle)

	mustNavigate(t, r, "Home", nil)
	mustNavigate(t, r, "Tool", nil)
	mustNavigate(t, r, "Settings", nil)
	r.GoBack()
	rec.events = nil

	current, _ := r.CurrentView()
	r.ClearHistory()

	if r.CanGoBack() || r.CanGoForward() {
		t.Fatalf("CanGoBack=%v CanGoForward=%v after ClearHistory, want both false", r.CanGoBack(), r.CanGoForward())
	}
	if view, _ := r.CurrentView(); view != current {
		t.Fatalf("CurrentView() changed by ClearHistory: got %+v want %+v", view, current)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events = %d, want 0 for ClearHistory", len(rec.events))
	}
}

func TestRegisterRoute_LastWriteWins(t *testing.T) {
	r := New[*page]()
	r.RegisterRoute("Home", func() (*page, error) { return &page{route: "first"}, nil })
	r.RegisterRoute("Home", func() (*page, error) { return &page{route: "second"}, nil })

	view := mustNavigate(t, r, "Home", nil)
	if view.route != "second" {
		t.Fatalf("view.route = %q, want second", view.route)
	}
	if got := r.Routes(); len(got) != 1 || got[0] != "Home" {
		t.Fatalf("Routes() = %v, want [Home]", got)
	}
}

func TestRegisterRoute_AfterCreationAffectsOnlyFutureViews(t *testing.T) {
	r := New[*page]()
	r.RegisterRoute("Home", func() (*page, error) { return &page{route: "v1"}, nil })
	r.RegisterRoute("Tool", func() (*page, error) { return &page{route: "tool"}, nil })

	old := mustNavigate(t, r, "Home", nil)
	mustNavigate(t, r, "Tool", nil)
	r.RegisterRoute("Home", func() (*page, error) { return &page{route: "v2"}, nil })

	r.GoBack()
	if view, _ := r.CurrentView(); view != old || view.route != "v1" {
		t.Fatalf("GoBack restored %+v, want the original v1 instance", view)
	}
	if view := mustNavigate(t, r, "Home", nil); view.route != "v2" {
		t.Fatalf("NavigateTo after re-registration = %q, want v2", view.route)
	}
}

func TestScenario_HomeToolBackHome(t *testing.T) {
	r, _ := newTestRouter(t)

	h := mustNavigate(t, r, "Home", nil)
	if r.CanGoBack() || r.CanGoForward() {
		t.Fatalf("after Home: CanGoBack=%v CanGoForward=%v, want false/false", r.CanGoBack(), r.CanGoForward())
	}

	tool := mustNavigate(t, r, "Tool", nil)
	back := r.BackHistory()
	if len(back) != 1 || back[0].Route != "Home" || back[0].View != h {
		t.Fatalf("after Tool: back = %+v, want [Home/H]", back)
	}
	if r.CanGoForward() {
		t.Fatal("after Tool: CanGoForward() = true, want false")
	}

	r.GoBack()
	if view, _ := r.CurrentView(); view != h {
		t.Fatalf("after GoBack: current = %+v, want H", view)
	}
	if len(r.BackHistory()) != 0 {
		t.Fatalf("after GoBack: back = %v, want empty", routes(r.BackHistory()))
	}
	fwd := r.ForwardHistory()
	if len(fwd) != 1 || fwd[0].Route != "Tool" || fwd[0].View != tool {
		t.Fatalf("after GoBack: forward = %+v, want [Tool/T]", fwd)
	}

	h2 := mustNavigate(t, r, "Home", nil)
	if h2 == h {
		t.Fatal("NavigateTo(Home) reused H, want a new H2")
	}
	back = r.BackHistory()
	if len(back) != 1 || back[0].Route != "Home" || back[0].View != h {
		t.Fatalf("after Home again: back = %+v, want [Home/H]", back)
	}
	if r.CanGoForward() {
		t.Fatal("after Home again: forward not cleared")
	}
}

func TestNavigateTo_MissingRouteLeavesStateUnchanged(t *testing.T) {
	r, _ := newTestRouter(t)
	var rec recorder
	r.Subscribe(rec.handle)

	mustNavigate(t, r, "Home", nil)
	tool := mustNavigate(t, r, "Tool", nil)
	r.GoBack()
	r.GoForward()
	r.GoBack()
	rec.events = nil

	before, _ := r.CurrentView()
	canBack, canFwd := r.CanGoBack(), r.CanGoForward()

	err := r.NavigateTo("Missing", nil)
	if !IsRouteNotFound(err) {
		t.Fatalf("NavigateTo(Missing) error = %v, want RouteNotFoundError", err)
	}
	var notFound *RouteNotFoundError
	if !errors.As(err, &notFound) || notFound.Route != "Missing" {
		t.Fatalf("error = %#v, want Route=Missing", err)
	}

	if view, _ := r.CurrentView(); view != before {
		t.Fatalf("CurrentView() changed: got %+v want %+v", view, before)
	}
	if r.CanGoBack() != canBack || r.CanGoForward() != canFwd {
		t.Fatalf("CanGoBack/CanGoForward = %v/%v, want %v/%v", r.CanGoBack(), r.CanGoForward(), canBack, canFwd)
	}
	if fwd := r.ForwardHistory(); len(fwd) != 1 || fwd[0].View != tool {
		t.Fatalf("ForwardHistory() = %+v, want [Tool]", fwd)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events = %d, want 0 for a failed navigation", len(rec.events))
	}
}

func TestNavigateTo_FactoryErrorIsWrapped(t *testing.T) {
	r, _ := newTestRouter(t)
	boom := errors.New("boom")
	r.RegisterRoute("Broken", func() (*page, error) { return nil, boom })

	mustNavigate(t, r, "Home", nil)
	err := r.NavigateTo("Broken", nil)
	if !IsViewCreation(err) {
		t.Fatalf("error = %v, want ViewCreationError", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("errors.Is(err, boom) = false for %v", err)
	}
	if !strings.Contains(err.Error(), `"Broken"`) {
		t.Fatalf("error %q does not name the route", err.Error())
	}
	if r.CurrentRoute() != "Home" || r.CanGoBack() {
		t.Fatalf("state changed after factory error: route=%q back=%v", r.CurrentRoute(), r.CanGoBack())
	}
}

func TestNavigateTo_FactoryPanicIsReported(t *testing.T) {
	r := New[*page]()
	r.RegisterRoute("Panics", func() (*page, error) { panic("kaboom") })

	err := r.NavigateTo("Panics", nil)
	if !IsViewCreation(err) {
		t.Fatalf("error = %v, want ViewCreationError", err)
	}
	if !strings.Contains(err.Error(), "kaboom") {
		t.Fatalf("error %q does not carry the panic value", err.Error())
	}
	if _, ok := r.CurrentView(); ok {
		t.Fatal("CurrentView() ok = true after failed first navigation")
	}
}

func TestEvents_CarryRouteViewAndParam(t *testing.T) {
	r, _ := newTestRouter(t)
	var rec recorder
	r.Subscribe(rec.handle)

	home := mustNavigate(t, r, "Home", "p1")
	tool := mustNavigate(t, r, "Tool", "p2")
	r.GoBack()
	r.GoForward()

	want := []struct {
		route string
		view  *page
		param any
	}{
		{"Home", home, "p1"},
		{"Tool", tool, "p2"},
		{"Home", home, "p1"},
		{"Tool", tool, "p2"},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %d, want %d", len(rec.events), len(want))
	}
	for i, w := range want {
		got := rec.events[i]
		if got.Route != w.route || got.View != w.view || got.Param != w.param {
			t.Fatalf("event[%d] = {%s %+v %v}, want {%s %+v %v}", i, got.Route, got.View, got.Param, w.route, w.view, w.param)
		}
	}
}

func TestLegacyArchive_DropsParamOnBackForward(t *testing.T) {
	r, _ := newTestRouter(t, WithLegacyArchive())

	mustNavigate(t, r, "Home", "home-param")
	mustNavigate(t, r, "Tool", "tool-param")

	if back := r.BackHistory(); back[0].Param != "home-param" {
		t.Fatalf("NavigateTo archived param %v, want home-param", back[0].Param)
	}

	r.GoBack()
	fwd := r.ForwardHistory()
	if len(fwd) != 1 || fwd[0].Param != nil {
		t.Fatalf("forward after GoBack = %+v, want Tool with nil param", fwd)
	}
	if entry, _ := r.Current(); entry.Param != "home-param" {
		t.Fatalf("restored Home param = %v, want home-param", entry.Param)
	}

	r.GoForward()
	back := r.BackHistory()
	if len(back) != 1 || back[0].Param != nil {
		t.Fatalf("back after GoForward = %+v, want Home with nil param", back)
	}
}

func TestDefaultArchive_KeepsParamOnBackForward(t *testing.T) {
	r, _ := newTestRouter(t)

	mustNavigate(t, r, "Home", "home-param")
	mustNavigate(t, r, "Tool", "tool-param")
	r.GoBack()
	if fwd := r.ForwardHistory(); fwd[0].Param != "tool-param" {
		t.Fatalf("forward param = %v, want tool-param", fwd[0].Param)
	}
	r.GoForward()
	if entry, _ := r.Current(); entry.Param != "tool-param" {
		t.Fatalf("Current().Param = %v, want tool-param", entry.Param)
	}
	r.GoForward()
	if back := r.BackHistory(); back[0].Param != "home-param" {
		t.Fatalf("back param = %v, want home-param", back[0].Param)
	}
}

func TestHistoryLimit_DropsOldestEntries(t *testing.T) {
	r, _ := newTestRouter(t, WithHistoryLimit(2))

	for _, name := range []string{"Home", "Tool", "Settings", "Home", "Tool"} {
		mustNavigate(t, r, name, nil)
	}
	got := routes(r.BackHistory())
	if strings.Join(got, ",") != "Settings,Home" {
		t.Fatalf("BackHistory() = %v, want [Settings Home]", got)
	}

	r.GoBack()
	r.GoBack()
	r.GoBack() // no-op: limit left only two entries
	if r.CurrentRoute() != "Settings" {
		t.Fatalf("CurrentRoute() = %q, want Settings", r.CurrentRoute())
	}
	if got := routes(r.ForwardHistory()); strings.Join(got, ",") != "Tool,Home" {
		t.Fatalf("ForwardHistory() = %v, want [Tool Home]", got)
	}
}

func TestHistoryLimit_NegativeMeansUnbounded(t *testing.T) {
	r, _ := newTestRouter(t, WithHistoryLimit(-3))
	for i := 0; i < 10; i++ {
		mustNavigate(t, r, "Home", i)
	}
	if n := len(r.BackHistory()); n != 9 {
		t.Fatalf("len(BackHistory()) = %d, want 9", n)
	}
}

func TestSubscribe_OrderAndUnsubscribe(t *testing.T) {
	r, _ := newTestRouter(t)
	var order []string

	first := r.Subscribe(func(Event[*page]) { order = append(order, "first") })
	r.Subscribe(func(Event[*page]) { order = append(order, "second") })
	r.Subscribe(func(Event[*page]) { order = append(order, "third") })

	mustNavigate(t, r, "Home", nil)
	if strings.Join(order, ",") != "first,second,third" {
		t.Fatalf("order = %v, want [first second third]", order)
	}

	if !r.Unsubscribe(first) {
		t.Fatal("Unsubscribe(first) = false, want true")
	}
	if r.Unsubscribe(first) {
		t.Fatal("second Unsubscribe(first) = true, want false")
	}

	order = nil
	mustNavigate(t, r, "Tool", nil)
	if strings.Join(order, ",") != "second,third" {
		t.Fatalf("order after unsubscribe = %v, want [second third]", order)
	}
}

func TestSubscribe_NilHandlerIgnored(t *testing.T) {
	r, _ := newTestRouter(t)
	if sub := r.Subscribe(nil); sub != 0 {
		t.Fatalf("Subscribe(nil) = %d, want 0", sub)
	}
	mustNavigate(t, r, "Home", nil)
}

func TestSubscribe_ChangesDuringEmissionApplyNextTime(t *testing.T) {
	r, _ := newTestRouter(t)
	var calls []string
	var second Subscription

	r.Subscribe(func(Event[*page]) {
		calls = append(calls, "first")
		if second != 0 {
			r.Unsubscribe(second)
		}
		r.Subscribe(func(Event[*page]) { calls = append(calls, "late") })
	})
	second = r.Subscribe(func(Event[*page]) { calls = append(calls, "second") })

	mustNavigate(t, r, "Home", nil)
	if strings.Join(calls, ",") != "first,second" {
		t.Fatalf("calls = %v, want [first second]", calls)
	}
}

func TestEmit_NavigationFromHandlerSupersedesEvent(t *testing.T) {
	r, _ := newTestRouter(t)
	var seen []string

	r.Subscribe(func(e Event[*page]) {
		seen = append(seen, "1:"+e.Route)
		if e.Route == "Home" {
			mustNavigate(t, r, "Tool", nil)
		}
	})
	r.Subscribe(func(e Event[*page]) {
		seen = append(seen, "2:"+e.Route)
	})

	mustNavigate(t, r, "Home", nil)

	if got, want := strings.Join(seen, ","), "1:Home,1:Tool,2:Tool"; got != want {
		t.Fatalf("seen = %s, want %s", got, want)
	}
	if r.CurrentRoute() != "Tool" {
		t.Fatalf("CurrentRoute() = %q, want Tool", r.CurrentRoute())
	}
	if got := routes(r.BackHistory()); strings.Join(got, ",") != "Home" {
		t.Fatalf("BackHistory() = %v, want [Home]", got)
	}

	seen = nil
	r.GoBack()
	if got, want := strings.Join(seen, ","), "1:Home,1:Tool,2:Tool"; got != want {
		t.Fatalf("after GoBack seen = %s, want %s", got, want)
	}
}

func TestEmit_PanickingHandlerIsIsolated(t *testing.T) {
	var buf bytes.Buffer
	r, _ := newTestRouter(t, WithLogger(zerolog.New(&buf)))
	var rec recorder

	r.Subscribe(func(Event[*page]) { panic("handler exploded") })
	r.Subscribe(rec.handle)

	if err := r.NavigateTo("Home", nil); err != nil {
		t.Fatalf("NavigateTo error = %v, want nil despite handler panic", err)
	}
	if len(rec.events) != 1 || rec.events[0].Route != "Home" {
		t.Fatalf("later handler events = %+v, want one Home event", rec.events)
	}
	if r.CurrentRoute() != "Home" {
		t.Fatalf("CurrentRoute() = %q, want Home", r.CurrentRoute())
	}
	if !strings.Contains(buf.String(), "navigation handler panicked") || !strings.Contains(buf.String(), "handler exploded") {
		t.Fatalf("log = %q, want panic report", buf.String())
	}
}

func TestHistorySnapshots_AreCopies(t *testing.T) {
	r, _ := newTestRouter(t)
	mustNavigate(t, r, "Home", nil)
	mustNavigate(t, r, "Tool", nil)

	back := r.BackHistory()
	back[0].Route = "Tampered"
	if r.BackHistory()[0].Route != "Home" {
		t.Fatal("BackHistory() exposed internal storage")
	}
}
