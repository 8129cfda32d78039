package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/waypoint/internal/logtail"
)

const activityLines = 200

type activityMsg struct {
	records []logtail.Record
	err     error
}

// Tool inspects navigation history and recent router activity.
type Tool struct {
	deps     Deps
	param    any
	table    table.Model
	activity []logtail.Record
	readErr  error
}

// NewTool creates the history inspector.
func NewTool(deps Deps) *Tool {
	tr := deps.Translator
	columns := []table.Column{
		{Title: tr.T("tool.col.position"), Width: 12},
		{Title: tr.T("tool.col.route"), Width: 14},
		{Title: tr.T("tool.col.param"), Width: 24},
	}
	return &Tool{
		deps:  deps,
		table: table.New(table.WithColumns(columns), table.WithFocused(true)),
	}
}

func (p *Tool) Title() string { return p.deps.Translator.T("route.Tool") }

func (p *Tool) SetParam(param any) { p.param = param }

// Init reloads the activity feed from the log file.
func (p *Tool) Init() tea.Cmd {
	path := p.deps.LogPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		records, err := logtail.Tail(path, activityLines)
		return activityMsg{records: records, err: err}
	}
}

func (p *Tool) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		p.refresh(msg.Width, msg.Height)
		return p, nil
	case activityMsg:
		p.activity = navigationRecords(msg.records)
		p.readErr = msg.err
		if msg.err != nil {
			p.deps.Logger.Warn().Str("Function", "Tool.Update").Err(msg.err).Msg("read activity log")
		}
		return p, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		p.table, cmd = p.table.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *Tool) View(width, height int) string {
	tr := p.deps.Translator
	styles := stylesFor(p.deps.Themes)

	var b strings.Builder
	b.WriteString(styles.AccentText.Render(tr.T("tool.title")))
	b.WriteString("\n")
	if text := Param(p.param); text != "" {
		b.WriteString(styles.MutedText.Render(tr.Tf("tool.visits", map[string]any{"Param": text})))
		b.WriteString("\n")
	}
	b.WriteString(p.table.View())
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render(tr.T("tool.activity")))
	b.WriteString("\n")

	feed := height - p.table.Height() - 6
	switch {
	case p.readErr != nil:
		b.WriteString(styles.DangerText.Render(p.readErr.Error()))
	case len(p.activity) == 0:
		b.WriteString(styles.MutedText.Render(tr.T("tool.no_activity")))
	default:
		b.WriteString(renderActivity(p.activity, feed, styles.MutedText, styles.Text))
	}

	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(b.String())
}

// refresh reloads the history rows and fits the table to the content area.
func (p *Tool) refresh(width, height int) {
	tr := p.deps.Translator
	rows := historyRows(p.deps.History, tr.T("tool.pos.back"), tr.T("tool.pos.current"), tr.T("tool.pos.forward"))
	p.table.SetRows(rows)
	p.table.SetWidth(max(width, 1))
	p.table.SetHeight(min(len(rows)+1, max(height/2, 3)))
}

// historyRows lists history in visiting order: back entries oldest first,
// then the current entry, then forward entries nearest first.
func historyRows(h History, backLabel, currentLabel, forwardLabel string) []table.Row {
	if h == nil {
		return nil
	}
	back := h.BackHistory()
	forward := h.ForwardHistory()

	rows := make([]table.Row, 0, len(back)+len(forward)+1)
	for i, entry := range back {
		pos := fmt.Sprintf("%s %d", backLabel, len(back)-i)
		rows = append(rows, table.Row{pos, entry.Route, Param(entry.Param)})
	}
	if current, ok := h.Current(); ok {
		rows = append(rows, table.Row{currentLabel, current.Route, Param(current.Param)})
	}
	for i := len(forward) - 1; i >= 0; i-- {
		pos := fmt.Sprintf("%s %d", forwardLabel, len(forward)-i)
		rows = append(rows, table.Row{pos, forward[i].Route, Param(forward[i].Param)})
	}
	return rows
}

func navigationRecords(records []logtail.Record) []logtail.Record {
	var out []logtail.Record
	for _, rec := range records {
		if rec.Route != "" {
			out = append(out, rec)
		}
	}
	return out
}

func renderActivity(records []logtail.Record, limit int, muted, text lipgloss.Style) string {
	if limit < 1 {
		limit = 1
	}
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	lines := make([]string, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		stamp := "--:--:--"
		if !rec.Time.IsZero() {
			stamp = rec.Time.Local().Format("15:04:05")
		}
		lines = append(lines, muted.Render(stamp+" "+strings.ToUpper(rec.Level))+" "+text.Render(rec.Route+" "+rec.Message))
	}
	return strings.Join(lines, "\n")
}
