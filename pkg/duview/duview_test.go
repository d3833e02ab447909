package duview

import (
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"

	"github.com/duview/duview/pkg/scan"
)

func TestSetupApp(t *testing.T) {
	app := tview.NewApplication()

	SetupApp(app, Config{Path: t.TempDir(), MaxDepth: scan.NoDepthLimit})

	// The root analyzer hands focus to the path input.
	assert.NotNil(t, app.GetFocus())
}
