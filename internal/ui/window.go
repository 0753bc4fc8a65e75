package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/llfarm/llfarm-faq/internal/domain"
	"github.com/llfarm/llfarm-faq/internal/ui/faq"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	Catalog() domain.Catalog
	Logger() *slog.Logger
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window fyne.Window
	logger *slog.Logger

	faqPanel *faq.Panel
}

// NewMainWindow creates the FAQ window: the accordion panel inside a
// vertical scroller, a Help menu and keyboard shortcuts.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("LL-FARM - FAQ")

	mw := &MainWindow{
		window: window,
		logger: app.Logger(),
	}

	mw.faqPanel = faq.NewPanel(app.Catalog(), mw.logger)

	window.SetContent(container.NewPadded(container.NewVScroll(mw.faqPanel)))
	window.SetMainMenu(mw.buildMainMenu())
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(720, 640))

	return mw
}

func (w *MainWindow) buildMainMenu() *fyne.MainMenu {
	help := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
		fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
	)
	return fyne.NewMainMenu(help)
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

// FAQPanel returns the accordion panel.
func (w *MainWindow) FAQPanel() *faq.Panel {
	return w.faqPanel
}
