package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"

	faqApp "github.com/llfarm/llfarm-faq/internal/app"
	"github.com/llfarm/llfarm-faq/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Bootstrap logger until the file logger is available
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting LL-FARM FAQ")

	cfg := faqApp.ConfigFromEnv()

	fyneApp := app.NewWithID("com.llfarm.faq")
	ui.ApplyTheme(fyneApp, cfg.Theme)

	application, err := faqApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(application.FyneApp(), application)

	// Blocks until the window is closed
	application.Run(mainWindow.Window())

	application.Logger().Info("application shutdown complete")
	return nil
}
