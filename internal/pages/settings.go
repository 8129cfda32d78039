package pages

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/waypoint/internal/theme"
)

const (
	defaultListWidth  = 40
	defaultListHeight = 20
)

var applyKey = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "Apply theme"),
)

type themeItem struct {
	kind    theme.Kind
	palette theme.Palette
}

func (i themeItem) Title() string { return i.kind.String() }

func (i themeItem) Description() string {
	p := i.palette
	return theme.Swatch(p.Primary) + theme.Swatch(p.Secondary) + theme.Swatch(p.Background) + theme.Swatch(p.Surface)
}

func (i themeItem) FilterValue() string { return i.kind.String() }

// Settings lets the user pick a color scheme.
type Settings struct {
	deps  Deps
	param any
	list  list.Model
}

// NewSettings creates the theme picker with the active theme selected.
func NewSettings(deps Deps) *Settings {
	names := theme.Names()
	items := make([]list.Item, 0, len(names))
	selected := 0
	current := deps.Themes.Current()
	for i, name := range names {
		kind, err := theme.ParseKind(name)
		if err != nil {
			continue
		}
		if kind == current {
			selected = i
		}
		items = append(items, themeItem{kind: kind, palette: deps.Themes.Palette(kind)})
	}

	l := list.New(items, list.NewDefaultDelegate(), defaultListWidth, defaultListHeight)
	l.Title = deps.Translator.T("settings.theme")
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Select(selected)

	return &Settings{deps: deps, list: l}
}

func (p *Settings) Title() string { return p.deps.Translator.T("route.Settings") }

func (p *Settings) SetParam(param any) { p.param = param }

func (p *Settings) Init() tea.Cmd { return nil }

// Update moves the selection and emits SetThemeMsg on enter.
func (p *Settings) Update(msg tea.Msg) (Page, tea.Cmd) {
	if msg, ok := msg.(RefreshMsg); ok {
		// Resizing repaginates; keep the selection on the same item.
		selected := p.list.Index()
		p.list.SetSize(max(msg.Width, 1), max(msg.Height-4, 3))
		p.list.Select(selected)
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, applyKey) {
		item, ok := p.list.SelectedItem().(themeItem)
		if !ok {
			return p, nil
		}
		return p, func() tea.Msg { return SetThemeMsg{Kind: item.kind} }
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// Selected returns the highlighted theme.
func (p *Settings) Selected() (theme.Kind, bool) {
	item, ok := p.list.SelectedItem().(themeItem)
	return item.kind, ok
}

func (p *Settings) View(width, height int) string {
	tr := p.deps.Translator
	styles := stylesFor(p.deps.Themes)

	var b strings.Builder
	b.WriteString(styles.AccentText.Render(tr.T("settings.title")))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(tr.Tf("settings.current", map[string]any{"Theme": p.deps.Themes.Current().String()})))
	b.WriteString("\n\n")

	b.WriteString(p.list.View())
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(tr.T("settings.hint")))

	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(b.String())
}
