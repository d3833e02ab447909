package duview

import (
	"strings"

	"github.com/rivo/tview"
)

const keysLegend = "[darkgray]F1 help ┊ f filter ┊ s/n sort ┊ o reveal ┊ Del trash ┊ q quit[-]"

// statusBar is the bottom line: scan state, item-count message and the key
// legend, joined with separators.
type statusBar struct {
	*tview.TextView
	status string
	items  string
}

func newStatusBar() *statusBar {
	s := &statusBar{
		TextView: tview.NewTextView().SetDynamicColors(true),
	}
	s.SetTextColor(Style.StatusTextColor)
	s.SetStatus("Ready")
	return s
}

func (s *statusBar) SetStatus(msg string) {
	s.status = msg
	s.render()
}

func (s *statusBar) SetItems(msg string) {
	s.items = msg
	s.render()
}

func (s *statusBar) render() {
	parts := make([]string, 0, 3)
	parts = append(parts, tview.Escape(s.status))
	if s.items != "" {
		parts = append(parts, tview.Escape(s.items))
	}
	parts = append(parts, keysLegend)
	s.SetText(" " + strings.Join(parts, " ┊ "))
}
