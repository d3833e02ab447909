package duview

import (
	"fmt"

	"github.com/rivo/tview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/duview/duview/pkg/fsutils"
	"github.com/duview/duview/pkg/scan"
)

// englishPrinter renders counts with thousands separators.
var englishPrinter = message.NewPrinter(language.English)

type statsPanel struct {
	*tview.TextView
}

func newStatsPanel() *statsPanel {
	s := &statsPanel{
		TextView: tview.NewTextView().SetDynamicColors(true),
	}
	s.SetBorder(true)
	s.SetTitle(" Statistics ")
	s.update(scan.NewAggregate())
	return s
}

func (s *statsPanel) update(agg *scan.Aggregate) {
	largest := "-"
	if e := agg.Largest(); e != nil {
		largest = fmt.Sprintf("%s (%s)", e.Name, fsutils.FormatBytes(e.Size))
	}
	s.SetText(fmt.Sprintf(
		" Total Size: [white::b]%s[-:-:-]   Files: [white::b]%s[-:-:-]   Folders: [white::b]%s[-:-:-]   Largest: [white::b]%s[-:-:-]",
		fsutils.FormatBytes(agg.TotalSize),
		englishPrinter.Sprintf("%d", agg.FileCount),
		englishPrinter.Sprintf("%d", agg.DirCount),
		tview.Escape(largest),
	))
}
