package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/llfarm/llfarm-faq/internal/catalog"
	"github.com/llfarm/llfarm-faq/internal/domain"
	"github.com/llfarm/llfarm-faq/internal/logging"
)

// App wires the logger, configuration and FAQ catalogue together and
// owns the Fyne application lifecycle.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger
	catalog domain.Catalog
}

// New creates an App writing logs to the platform log file.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger("llfarm-faq", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(fyneApp, cfg, logger)
}

// NewWithLogger creates an App using the given logger.
func NewWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing LL-FARM FAQ",
		slog.Bool("debug", cfg.Debug),
		slog.String("theme", cfg.Theme),
	)

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load faq catalog: %w", err)
	}

	logger.Info("application initialized successfully", slog.Int("faq_items", cat.Len()))

	return &App{
		fyneApp: fyneApp,
		config:  cfg,
		logger:  logger,
		catalog: cat,
	}, nil
}

// Run shows the window and blocks in the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Catalog returns the FAQ catalogue.
func (a *App) Catalog() domain.Catalog {
	return a.catalog
}

// Config returns the active configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
