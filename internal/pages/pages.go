package pages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/waypoint/internal/locale"
	"github.com/five82/waypoint/internal/router"
	"github.com/five82/waypoint/internal/theme"
)

// Route names registered by RegisterAll.
const (
	RouteHome     = "Home"
	RouteTool     = "Tool"
	RouteSettings = "Settings"
)

// Page is a view the router creates and the shell renders.
type Page interface {
	Title() string
	Init() tea.Cmd
	Update(tea.Msg) (Page, tea.Cmd)
	View(width, height int) string
	SetParam(any)
}

// NavigateMsg asks the shell to navigate to Route with Param.
type NavigateMsg struct {
	Route string
	Param any
}

// RefreshMsg gives the current page the size of its content area. The shell
// sends it after a resize and after every history change.
type RefreshMsg struct {
	Width  int
	Height int
}

// SetThemeMsg asks the shell to activate a theme.
type SetThemeMsg struct {
	Kind theme.Kind
}

// History is the read side of the router the Tool page inspects.
type History interface {
	Current() (router.Entry[Page], bool)
	BackHistory() []router.Entry[Page]
	ForwardHistory() []router.Entry[Page]
}

// Deps are shared by every page factory.
type Deps struct {
	Translator *locale.Translator
	Themes     *theme.Manager
	History    History
	LogPath    string
	Logger     zerolog.Logger
}

// Routes returns a factory per route name.
func Routes(deps Deps) map[string]router.Factory[Page] {
	return map[string]router.Factory[Page]{
		RouteHome: func() (Page, error) {
			return NewHome(deps), nil
		},
		RouteTool: func() (Page, error) {
			if deps.History == nil {
				return nil, fmt.Errorf("tool page needs navigation history")
			}
			return NewTool(deps), nil
		},
		RouteSettings: func() (Page, error) {
			if deps.Themes == nil {
				return nil, fmt.Errorf("settings page needs a theme manager")
			}
			return NewSettings(deps), nil
		},
	}
}

// RegisterAll registers every page with r. When deps has no History the
// router itself is used.
func RegisterAll(r *router.Router[Page], deps Deps) {
	if deps.History == nil {
		deps.History = r
	}
	routes := Routes(deps)
	for _, name := range []string{RouteHome, RouteTool, RouteSettings} {
		r.RegisterRoute(name, routes[name])
	}
}

// Param renders a navigation parameter for display.
func Param(param any) string {
	switch v := param.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func stylesFor(themes *theme.Manager) theme.Styles {
	if themes == nil {
		return theme.NewStyles(theme.New(theme.Light).Colors())
	}
	return theme.NewStyles(themes.Colors())
}
