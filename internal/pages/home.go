package pages

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var startKey = key.NewBinding(
	key.WithKeys("enter", " "),
	key.WithHelp("enter", "Get started"),
)

// Home is the landing page.
type Home struct {
	deps  Deps
	param any
}

// NewHome creates the landing page.
func NewHome(deps Deps) *Home {
	return &Home{deps: deps}
}

func (p *Home) Title() string { return p.deps.Translator.T("route.Home") }

func (p *Home) SetParam(param any) { p.param = param }

func (p *Home) Init() tea.Cmd { return nil }

// Update sends the user to the Tool page on enter.
func (p *Home) Update(msg tea.Msg) (Page, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, startKey) {
		return p, func() tea.Msg {
			return NavigateMsg{Route: RouteTool, Param: RouteHome}
		}
	}
	return p, nil
}

func (p *Home) View(width, height int) string {
	tr := p.deps.Translator
	styles := stylesFor(p.deps.Themes)

	var b strings.Builder
	b.WriteString(styles.AccentText.Render(tr.T("home.welcome")))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Width(max(width, 1)).Render(tr.T("home.intro")))
	b.WriteString("\n\n")
	b.WriteString(styles.Button.Render(tr.T("home.get_started")))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(tr.T("home.hint")))

	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(b.String())
}
