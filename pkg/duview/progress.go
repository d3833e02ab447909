package duview

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var spinnerFrames = []rune("▏▎▍▌▋▊▉█")

// progressLine is the single line under the controls that tracks a running
// walk. It stays blank while no scan is active.
type progressLine struct {
	*tview.TextView
	ticks int
}

func newProgressLine() *progressLine {
	p := &progressLine{TextView: tview.NewTextView()}
	p.SetTextColor(tcell.ColorLightGray)
	return p
}

func (p *progressLine) update(count int64, path string) {
	frame := spinnerFrames[p.ticks%len(spinnerFrames)]
	p.ticks++
	p.SetText(fmt.Sprintf(" %c Scanning... %s files found - %s",
		frame, englishPrinter.Sprintf("%d", count), filepath.Base(path)))
}

func (p *progressLine) clear() {
	p.ticks = 0
	p.SetText("")
}
