package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/five82/waypoint/internal/config"
	"github.com/five82/waypoint/internal/locale"
	"github.com/five82/waypoint/internal/logging"
	"github.com/five82/waypoint/internal/pages"
	"github.com/five82/waypoint/internal/prefs"
	"github.com/five82/waypoint/internal/router"
	"github.com/five82/waypoint/internal/state"
	"github.com/five82/waypoint/internal/theme"
	"github.com/five82/waypoint/internal/ui"
)

// Options configure the Waypoint application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/waypoint/prefs.toml
	StartRoute string // overrides start_route from the config file
	LogLevel   string // overrides log_level from the config file
}

// Session is a fully wired application ready to hand to the shell.
type Session struct {
	Config     config.Config
	Prefs      prefs.Prefs
	PrefsPath  string
	Logger     zerolog.Logger
	Translator *locale.Translator
	Themes     *theme.Manager
	Router     *router.Router[pages.Page]
	Store      *state.Store

	closers []io.Closer
	unbind  func()
}

// Close releases the log file and event subscriptions.
func (s *Session) Close() error {
	if s.unbind != nil {
		s.unbind()
		s.unbind = nil
	}
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}

// Build loads configuration and preferences, then wires logging, locale,
// theme, router and pages, and navigates to the start route.
func Build(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.StartRoute != "" {
		cfg.StartRoute = opts.StartRoute
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, prefsErr := prefs.Load(prefsPath)

	logger, logCloser, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	s := &Session{
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		Logger:    logger,
		Store:     &state.Store{},
		closers:   []io.Closer{logCloser},
	}
	if prefsErr != nil {
		logger.Warn().Str("Function", "app.Build").Err(prefsErr).Msg("using default preferences")
	}

	lang := cfg.Language
	if userPrefs.Language != "" {
		lang = userPrefs.Language
	}
	s.Translator, err = locale.New(lang)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("load translations: %w", err)
	}

	kind, err := theme.ParseKind(userPrefs.Theme)
	if err != nil {
		logger.Warn().Str("Function", "app.Build").Str("Theme", userPrefs.Theme).Msg("unknown theme, using Light")
		kind = theme.Light
	}
	s.Themes = theme.New(kind)

	routerOpts := []router.Option{
		router.WithLogger(logger.With().Str("Component", "router").Logger()),
		router.WithHistoryLimit(cfg.HistoryLimit),
	}
	if cfg.LegacyArchive {
		routerOpts = append(routerOpts, router.WithLegacyArchive())
	}
	s.Router = router.New[pages.Page](routerOpts...)

	pages.RegisterAll(s.Router, pages.Deps{
		Translator: s.Translator,
		Themes:     s.Themes,
		LogPath:    cfg.LogFile,
		Logger:     logger,
	})
	s.unbind = ui.Bind(s.Router, s.Themes, s.Store)

	if err := s.start(cfg.StartRoute); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// start navigates to route, falling back to Home when route is unknown.
func (s *Session) start(route string) error {
	err := s.Router.NavigateTo(route, nil)
	if err == nil {
		return nil
	}
	if !router.IsRouteNotFound(err) || route == pages.RouteHome {
		return fmt.Errorf("open start route: %w", err)
	}
	s.Logger.Warn().Str("Function", "app.start").Str("Route", route).Err(err).Msg("falling back to Home")
	if err := s.Router.NavigateTo(pages.RouteHome, nil); err != nil {
		return fmt.Errorf("open start route: %w", err)
	}
	s.Store.RecordError(fmt.Errorf("start route: %w", err))
	return nil
}

// Run boots the Waypoint TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := Build(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Logger.Info().Str("Function", "app.Run").Str("StartRoute", s.Router.CurrentRoute()).Msg("starting shell")
	return ui.Run(ui.Options{
		Context:    ctx,
		Router:     s.Router,
		Themes:     s.Themes,
		Store:      s.Store,
		Translator: s.Translator,
		Prefs:      s.Prefs,
		PrefsPath:  s.PrefsPath,
		Logger:     s.Logger,
	})
}
