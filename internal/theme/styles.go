package theme

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-built Lipgloss styles for a palette.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Shell
	Header        lipgloss.Style
	Title         lipgloss.Style
	Breadcrumb    lipgloss.Style
	BreadcrumbCur lipgloss.Style
	Sidebar       lipgloss.Style
	NavItem       lipgloss.Style
	NavActive     lipgloss.Style
	Content       lipgloss.Style
	Footer        lipgloss.Style
	Button        lipgloss.Style
	Disabled      lipgloss.Style

	border string
}

// NewStyles builds styles for p.
func NewStyles(p Palette) Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.OnSurface)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextPrimary)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextSecondary)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Primary)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Primary)).
			Foreground(lipgloss.Color(p.OnPrimary)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.OnPrimary)).
			Bold(true),

		Breadcrumb: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.OnPrimary)).
			Faint(true),

		BreadcrumbCur: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Secondary)).
			Bold(true),

		Sidebar: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.OnSurface)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(1, 1),

		NavItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextPrimary)).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Primary)).
			Foreground(lipgloss.Color(p.OnPrimary)).
			Bold(true).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Background)).
			Foreground(lipgloss.Color(p.OnBackground)).
			Padding(1, 2),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.TextSecondary)).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Primary)).
			Foreground(lipgloss.Color(p.OnPrimary)).
			Bold(true).
			Padding(0, 2),

		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Disabled)),

		border: p.Border,
	}
}

// Panel returns a bordered box style using the palette's border color.
func (s Styles) Panel() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.border)).
		Padding(0, 1)
}

// Swatch renders a two-space block in color, used to preview palettes.
func Swatch(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}
