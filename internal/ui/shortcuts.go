package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()
	accordion := w.faqPanel.Accordion()

	// Cmd+Down: expand next question
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyDown,
		Modifier: fyne.KeyModifierSuper, // Cmd on macOS, Win on Windows
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: next question")
		accordion.Next()
	})

	// Cmd+Up: expand previous question
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyUp,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: previous question")
		accordion.Previous()
	})

	// Escape: collapse everything. Only reaches the canvas when nothing has
	// focus; focused headers handle Escape themselves.
	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			w.logger.Debug("keyboard shortcut: collapse all")
			accordion.Collapse()
		}
	})

	w.logger.Info("keyboard shortcuts configured")
}
