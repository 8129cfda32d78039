// Package ui implements Waypoint's terminal shell with Bubble Tea.
//
// The shell owns the screen layout and the global keys. The header carries
// the app title and a breadcrumb of back, current and forward routes. The
// sidebar lists routes with the current one highlighted. The content area
// renders the current page, and the footer shows history depth or the last
// navigation error next to the key hints.
//
// Navigation state flows one way. Bind subscribes to the router and the
// theme manager and records every event in a state.Store; View renders from
// the store's snapshot. The router itself is only touched from Update, so it
// never sees concurrent use.
//
// Keys the shell does not bind are forwarded to the current page, which may
// answer with pages.NavigateMsg or pages.SetThemeMsg.
package ui
