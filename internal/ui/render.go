package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/waypoint/internal/state"
	"github.com/five82/waypoint/internal/theme"
)

const crumbSep = " › "

// renderMain composes header, sidebar, content and footer.
func (m Model) renderMain() string {
	snap := m.store.Snapshot()
	styles := theme.NewStyles(m.themes.Colors())

	header := m.renderHeader(snap, styles)
	footer := m.renderFooter(snap, styles)
	bodyHeight := m.bodyHeight(header, footer)

	sidebar := m.renderSidebar(snap, styles, bodyHeight)
	content := m.renderContent(styles, max(m.width-sidebarWidth, 1), bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// contentSize returns the space available to the current page inside the
// content frame.
func (m Model) contentSize() (width, height int) {
	snap := m.store.Snapshot()
	styles := theme.NewStyles(m.themes.Colors())
	bodyHeight := m.bodyHeight(m.renderHeader(snap, styles), m.renderFooter(snap, styles))
	frame := styles.Content
	return max(m.width-sidebarWidth-frame.GetHorizontalFrameSize(), 1),
		max(bodyHeight-frame.GetVerticalFrameSize(), 1)
}

func (m Model) bodyHeight(header, footer string) int {
	return max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
}

// renderHeader shows the app title and the breadcrumb trail.
func (m Model) renderHeader(snap state.Snapshot, styles theme.Styles) string {
	title := styles.Title.Render(m.tr.T("app.title"))
	crumbs := m.breadcrumb(snap, styles)
	return styles.Header.Width(max(m.width, 1)).Render(title + "  " + crumbs)
}

// breadcrumb renders back entries, the current route and forward entries.
// Long histories collapse to the nearest breadcrumbDepth entries per side.
func (m Model) breadcrumb(snap state.Snapshot, styles theme.Styles) string {
	if !snap.HasRoute() {
		return ""
	}
	var parts []string

	back := snap.Back
	if len(back) > breadcrumbDepth {
		parts = append(parts, styles.Breadcrumb.Render("…"))
		back = back[len(back)-breadcrumbDepth:]
	}
	for _, route := range back {
		parts = append(parts, styles.Breadcrumb.Render(m.routeTitle(route)))
	}

	parts = append(parts, styles.BreadcrumbCur.Render(snap.Title))

	forward := snap.Forward
	more := len(forward) > breadcrumbDepth
	if more {
		forward = forward[:breadcrumbDepth]
	}
	for _, route := range forward {
		parts = append(parts, styles.Breadcrumb.Render(m.routeTitle(route)))
	}
	if more {
		parts = append(parts, styles.Breadcrumb.Render("…"))
	}

	return strings.Join(parts, styles.Breadcrumb.Render(crumbSep))
}

// renderSidebar lists the routes with the current one highlighted.
func (m Model) renderSidebar(snap state.Snapshot, styles theme.Styles, height int) string {
	var b strings.Builder
	for i, rb := range m.keys.routeBindings() {
		label := rb.binding.Help().Key + " " + m.routeTitle(rb.route)
		style := styles.NavItem
		if rb.route == snap.Route {
			style = styles.NavActive
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(style.Width(sidebarWidth - 4).Render(label))
	}
	return styles.Sidebar.Width(sidebarWidth - 1).Height(height).Render(b.String())
}

// renderContent renders the current page inside the content frame.
func (m Model) renderContent(styles theme.Styles, width, height int) string {
	frame := styles.Content
	innerWidth := max(width-frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-frame.GetVerticalFrameSize(), 1)

	body := ""
	if page, ok := m.currentPage(); ok {
		body = page.View(innerWidth, innerHeight)
	}
	return frame.Width(width).Height(height).Render(body)
}

// renderFooter shows the last navigation error or the history depth, then
// the key hints.
func (m Model) renderFooter(snap state.Snapshot, styles theme.Styles) string {
	var status string
	if snap.LastError != nil {
		status = styles.DangerText.Render(m.tr.Tf("shell.error", map[string]any{"Error": snap.LastError.Error()}))
	} else {
		status = styles.MutedText.Render(m.tr.Tf("shell.history", map[string]any{
			"Back":    len(snap.Back),
			"Forward": len(snap.Forward),
		}))
	}
	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	return styles.Footer.Width(max(m.width, 1)).Render(status + "  " + hints)
}

// renderHelp renders the full key map as a centered overlay.
func (m Model) renderHelp() string {
	p := m.themes.Colors()
	styles := theme.NewStyles(p)

	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	full := m.help
	full.ShowAll = true
	b.WriteString(full.FullHelpView(m.keys.FullHelp()))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Primary)).
		Padding(1, 2).
		Width(helpWidth).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(p.Background)),
	)
}

// routeTitle translates a route name, falling back to the name itself.
func (m Model) routeTitle(route string) string {
	id := "route." + route
	if title := m.tr.T(id); title != id {
		return title
	}
	return route
}
