package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/waypoint/internal/pages"
)

// keyMap defines the shell's keyboard bindings. Keys not bound here are
// forwarded to the current page.
type keyMap struct {
	// Routes
	Home     key.Binding
	Tool     key.Binding
	Settings key.Binding

	// History
	Back    key.Binding
	Forward key.Binding
	Clear   key.Binding

	// General
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		Tool: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Tool"),
		),
		Settings: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Settings"),
		),

		Back: key.NewBinding(
			key.WithKeys("alt+left", "["),
			key.WithHelp("[", "Back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("alt+right", "]"),
			key.WithHelp("]", "Forward"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "Clear history"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// routeBindings pairs route names with their bindings in sidebar order.
func (k keyMap) routeBindings() []routeBinding {
	return []routeBinding{
		{route: pages.RouteHome, binding: k.Home},
		{route: pages.RouteTool, binding: k.Tool},
		{route: pages.RouteSettings, binding: k.Settings},
	}
}

type routeBinding struct {
	route   string
	binding key.Binding
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.CycleTheme, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Tool, k.Settings},
		{k.Back, k.Forward, k.Clear},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
