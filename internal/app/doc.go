// Package app is Waypoint's composition root.
//
// Build wires the application in a fixed order:
//
//  1. Load config.toml and apply command-line overrides
//  2. Load prefs.toml (theme and language)
//  3. Open the zerolog file logger
//  4. Load translations for the chosen language
//  5. Create the theme manager with the preferred theme
//  6. Create the router with the configured history limit and archive mode
//  7. Register the pages and bind router and theme events to the store
//  8. Navigate to the start route, falling back to Home if it is unknown
//
// Run calls Build and hands the session to the Bubble Tea shell, blocking
// until the user quits or the context is cancelled. Build is separate so the
// wiring can be tested without a terminal.
package app
