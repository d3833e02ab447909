// Package duview is the interactive disk usage viewer: a single analyzer
// screen with scan controls, live statistics, a category breakdown and a
// browsable inventory of the scanned tree.
package duview

import (
	"fmt"
	"log/slog"

	"github.com/rivo/tview"

	"github.com/duview/duview/pkg/scan"
)

// Config carries the launch settings resolved by the command line.
type Config struct {
	// Path is shown in the path input on startup; empty means the user's
	// home directory.
	Path string

	// MaxDepth preselects the depth bound. Zero bounds the walk to the
	// root; use a negative value for no limit.
	MaxDepth int

	// TrashDir overrides the directory deleted items are moved to.
	TrashDir string

	Logger *slog.Logger
}

func Main() {
	app := tview.NewApplication()
	SetupApp(app, Config{MaxDepth: scan.NoDepthLimit})
	err := app.Run()
	if err != nil {
		fmt.Print(err)
	}
}

func SetupApp(app *tview.Application, cfg Config) {
	app.EnableMouse(true)
	app.SetRoot(NewAnalyzer(app, cfg), true)
}
