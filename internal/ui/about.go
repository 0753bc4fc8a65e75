package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/llfarm/llfarm-faq/internal/ui.Version=1.2.3"
var Version = "dev"

// ShowAboutDialog displays information about the application.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("LL-FARM", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Fresh produce straight from the farm"),
		widget.NewLabel("Version "+Version),
	)
	dialog.ShowCustom("About LL-FARM", "Close", content, parent)
}

// shortcutHelp lists the keyboard shortcuts shown in the help dialog.
var shortcutHelp = []struct{ action, key string }{
	{"Expand Next Question", "⌘ ↓"},
	{"Expand Previous Question", "⌘ ↑"},
	{"Collapse All", "Escape"},
	{"Toggle Focused Question", "Space"},
	{"Move Focus", "Tab / ⇧ Tab"},
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	grid := container.NewGridWithColumns(2)
	for _, s := range shortcutHelp {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", grid, parent)
}
