// Package pages holds the views Waypoint's router navigates between.
//
// Each page is a small Bubble Tea component behind the Page interface. The
// shell forwards messages to the current page and renders it into the
// content area. Pages never touch the router directly; they ask for
// navigation or a theme change by returning a command that yields
// NavigateMsg or SetThemeMsg. Sizing and history-derived state arrive in
// RefreshMsg, so View only renders.
//
// Routes builds one factory per route, so every NavigateTo creates a fresh
// page while back and forward restore the instance kept in history.
package pages
