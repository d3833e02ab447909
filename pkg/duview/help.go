package duview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = `Enter     - Scan the entered path
Esc       - Cancel a running scan
Tab       - Cycle focus
f         - Filter all / files / folders
s         - Sort by size, biggest first
n         - Sort by name
o         - Reveal in the file manager
Del / F8  - Move to trash
F1 / ?    - This help
q         - Quit`

func showHelp(an *Analyzer) {
	modal, _, _ := createHelpModal(an)
	an.app.SetRoot(modal, true)
}

func createHelpModal(an *Analyzer) (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	helpView = tview.NewTextView().
		SetText(helpText).
		SetTextAlign(tview.AlignLeft)
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeHelp := func() {
		an.app.SetRoot(an.Flex, true)
		an.app.SetFocus(an.table)
	}

	closeKeys := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	}
	helpView.SetInputCapture(closeKeys)

	button = tview.NewButton("Close").SetSelectedFunc(closeHelp)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(closeKeys)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)
	helpFlex.SetBorder(true)
	helpFlex.SetTitle(" Help ")
	helpFlex.SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	// A grid with a single fixed cell centers the box.
	modal = tview.NewGrid().
		SetColumns(0, 44, 0).
		SetRows(0, 14, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)

	return modal, helpView, button
}
