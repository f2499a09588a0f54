package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/customizer/internal/application/panel"
	"github.com/alexisbeaulieu97/customizer/internal/config"
	"github.com/alexisbeaulieu97/customizer/internal/i18n"
	"github.com/alexisbeaulieu97/customizer/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/customizer/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/customizer/internal/infrastructure/store"
	"github.com/alexisbeaulieu97/customizer/internal/infrastructure/style"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
	customizererrors "github.com/alexisbeaulieu97/customizer/pkg/errors"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config     *config.Config
	Logger     ports.Logger
	Events     *events.LoggingPublisher
	Store      *store.Store
	Persister  ports.Persister
	Document   *style.Document
	Binding    *style.Binding
	Translator *i18n.Translator
	Panel      *panel.Panel
	Route      string

	closers []func() error
}

type appOptions struct {
	logWriter io.Writer
}

// newAppContext loads configuration and wires the store, document and panel.
// Entries logged before the real logger exists are buffered and replayed.
func newAppContext(ctx context.Context, flags *rootFlags, opts appOptions) (*AppContext, error) {
	buffer := logging.NewEventBuffer(0)
	boot := logging.NewBufferedLogger(buffer)

	configPath := flags.configPath
	explicit := configPath != ""
	if !explicit {
		configPath = config.DefaultPath()
	}

	var (
		cfg *config.Config
		err error
	)
	if explicit {
		cfg, err = config.ParseConfig(configPath)
	} else {
		cfg, err = config.LoadOrDefault(configPath)
	}
	if err != nil {
		return nil, newCommandError("load configuration", configPath, err, "Fix the config file or pass --config with a valid path.")
	}
	boot.Debug(ctx, "configuration loaded", "config_path", configPath, "backend", cfg.Store.Backend)

	logger, err := buildLogger(cfg, flags, opts.logWriter)
	if err != nil {
		return nil, newCommandError("configure logging", "building logger", err, "Use one of trace, debug, info, warn, error for --log-level.")
	}
	buffer.Flush(logger)

	app := &AppContext{Config: cfg, Logger: logger, Route: cfg.Route}
	if flags.route != "" {
		app.Route = flags.route
	}

	catalog, err := style.LoadCatalog(cfg.DefinitionsPath())
	if err != nil {
		return nil, newCommandError("load themes", cfg.DefinitionsPath(), err, "Check the theme definitions file referenced by theme.definitions.")
	}
	if _, ok := catalog.Lookup(cfg.Theme.Default); !ok {
		err := customizererrors.NewValidationError("theme.default", fmt.Sprintf("unknown theme %q", cfg.Theme.Default), nil)
		return nil, newCommandError("load themes", "resolving default theme", err, "Run 'customizer themes' to list available themes.")
	}

	persister, closer, err := openPersister(ctx, cfg)
	if err != nil {
		return nil, newCommandError("open store", cfg.StorePath(), err, "Check that the store path is writable.")
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	app.Persister = persister

	app.Events = events.NewLoggingPublisher(logger.With("layer", "infrastructure"))
	app.Store = store.New(store.Options{
		Persister:    persister,
		Events:       app.Events,
		Logger:       logger.With("layer", "infrastructure"),
		DefaultTheme: cfg.Theme.Default,
		UserLoggedIn: cfg.Session.LoggedIn,
	})

	app.Document = style.NewDocument(catalog)
	app.Binding, err = style.Bind(app.Document, app.Store, app.Events, logger.With("layer", "infrastructure"))
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "binding document to store", err, "This is a bug; please report it.")
	}

	if err := app.Store.Load(ctx); err != nil {
		app.Close()
		return nil, newCommandError("load customization", persister.Name(), err, "Check the store file or remove it to start fresh.")
	}
	if app.Document.Applied() != app.Store.CurrentColorTheme() {
		logger.Warn(ctx, "saved theme is not available, falling back", "saved_theme", app.Store.CurrentColorTheme(), "theme_id", cfg.Theme.Default)
		app.Store.ChangeColorTheme(ctx, cfg.Theme.Default)
	}

	bundle, err := i18n.Load()
	if err != nil {
		app.Close()
		return nil, newCommandError("load translations", "embedded catalogues", err, "This is a bug; please report it.")
	}
	locale := cfg.Locale
	if flags.locale != "" {
		locale = flags.locale
	}
	app.Translator = bundle.Translator(locale)

	app.Panel, err = panel.New(panel.Options{
		Store:      app.Store,
		Styles:     app.Document,
		Translator: app.Translator,
		Logger:     logger,
		Events:     app.Events,
	})
	if err != nil {
		app.Close()
		return nil, err
	}

	logger.Debug(ctx, "application ready", "backend", persister.Name(), "theme_id", app.Store.CurrentColorTheme(), "locale", app.Translator.Locale())
	return app, nil
}

// runWithApp builds the application inside a context carrying a fresh
// correlation id, runs the command body and releases resources afterwards.
func runWithApp(cmd *cobra.Command, flags *rootFlags, name string, opts appOptions, run func(ctx context.Context, app *AppContext, logger ports.Logger) error) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, _ := logging.NewCommandContext(parent)
	if opts.logWriter == nil {
		opts.logWriter = cmd.ErrOrStderr()
	}

	app, err := newAppContext(ctx, flags, opts)
	if err != nil {
		return err
	}
	logger := app.Logger.With("command", name)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn(ctx, "failed to release resources", "error", err)
		}
	}()

	logger.Debug(ctx, "command started")
	if err := run(ctx, app, logger); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		return err
	}
	return nil
}

// Close releases backend resources.
func (a *AppContext) Close() error {
	if a == nil {
		return nil
	}
	if a.Binding != nil {
		a.Binding.Close()
	}
	var errs []string
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	a.closers = nil
	if len(errs) > 0 {
		return fmt.Errorf("close: %s", strings.Join(errs, "; "))
	}
	return nil
}

func buildLogger(cfg *config.Config, flags *rootFlags, writer io.Writer) (ports.Logger, error) {
	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	logger, err := logging.New(logging.Options{
		Writer:        writer,
		Level:         level,
		HumanReadable: cfg.Log.Human,
		Layer:         "cli",
		Component:     "customizer",
	})
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func openPersister(ctx context.Context, cfg *config.Config) (ports.Persister, func() error, error) {
	path := cfg.StorePath()
	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemoryPersister(), nil, nil
	case "git":
		return store.NewGitPersister(store.GitOptions{Dir: path, AuthorName: cfg.Session.User}), nil, nil
	case "sqlite":
		persister, err := store.OpenSQLitePersister(ctx, path)
		if err != nil {
			return nil, nil, customizererrors.NewPersistenceError("sqlite", "open", err)
		}
		return persister, persister.Close, nil
	default:
		return store.NewFilePersister(path), nil, nil
	}
}
