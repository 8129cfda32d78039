// Package theme holds the application's color schemes and notifies
// observers when the active scheme changes.
//
// The built-in schemes are Light, Dark, Blue, Green and Purple. SetCustom
// installs a caller-supplied palette under the Custom kind. NewStyles turns a
// Palette into Lipgloss styles for the shell and pages.
package theme
