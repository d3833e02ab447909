package duview

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/duview/duview/pkg/files"
	"github.com/duview/duview/pkg/files/osfile"
	"github.com/duview/duview/pkg/fsutils"
	"github.com/duview/duview/pkg/scan"
	"github.com/duview/duview/pkg/sysopen"
	"github.com/duview/duview/pkg/trash"
)

var revealEntry = sysopen.Reveal

// showConfirm asks before an entry is trashed. A seam so tests can press the
// buttons without a screen.
var showConfirm = func(an *Analyzer, text string, onConfirm func()) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Move to Trash", "Cancel"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			an.app.SetRoot(an.Flex, true)
			an.app.SetFocus(an.table)
			if buttonIndex == 0 {
				onConfirm()
			}
		})
	an.app.SetRoot(modal, true)
}

// Analyzer is the single screen of the viewer: controls on top, live
// statistics in the middle, the entry inventory below and a status line at
// the bottom.
type Analyzer struct {
	*tview.Flex
	app *tview.Application
	cfg Config
	log *slog.Logger

	store files.Store
	mover *trash.Mover

	controls  *controls
	progress  *progressLine
	stats     *statsPanel
	breakdown *breakdown
	rows      *EntryRows
	table     *tview.Table
	status    *statusBar

	// queueDraw hands a closure to the UI goroutine. Swapped in tests.
	queueDraw func(func())

	scanning bool
	session  *session
}

func NewAnalyzer(app *tview.Application, cfg Config) *Analyzer {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Path == "" {
		cfg.Path = fsutils.ExpandHome("~")
	}

	an := &Analyzer{
		app:   app,
		cfg:   cfg,
		log:   cfg.Logger,
		store: osfile.NewStore(),
	}
	an.queueDraw = func(f func()) {
		app.QueueUpdateDraw(f)
	}

	moverOptions := []trash.MoverOption{trash.WithLogger(an.log)}
	if cfg.TrashDir != "" {
		moverOptions = append(moverOptions, trash.WithDir(cfg.TrashDir))
	}
	an.mover = trash.NewMover(moverOptions...)

	an.controls = newControls(an)
	an.progress = newProgressLine()
	an.stats = newStatsPanel()
	an.breakdown = newBreakdown()
	an.rows = NewEntryRows()
	an.status = newStatusBar()

	an.table = tview.NewTable().SetContent(an.rows)
	an.table.SetSelectable(true, false)
	an.table.SetFixed(1, 0)
	an.table.SetBorder(true)
	an.table.SetTitle(fmt.Sprintf(" Items: %s ", an.rows.Filter()))
	an.table.SetInputCapture(an.tableInputCapture)

	// The controls hold focus at startup.
	an.controls.SetBorderColor(Style.FocusedBorderColor)
	an.table.SetBorderColor(Style.BlurBorderColor)

	an.createLayout()
	an.Flex.SetInputCapture(an.inputCapture)

	return an
}

func (an *Analyzer) createLayout() {
	an.Flex = tview.NewFlex().SetDirection(tview.FlexRow)
	an.AddItem(an.controls, 3, 0, true)
	an.AddItem(an.progress, 1, 0, false)
	an.AddItem(an.stats, 3, 0, false)
	an.AddItem(an.breakdown, len(scan.Categories)+2, 0, false)
	an.AddItem(an.table, 0, 1, false)
	an.AddItem(an.status, 1, 0, false)
}

func (an *Analyzer) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab:
		an.moveFocus(1)
		return nil
	case tcell.KeyBacktab:
		an.moveFocus(-1)
		return nil
	case tcell.KeyEscape:
		if an.scanning {
			an.cancelScan()
			return nil
		}
		return event
	case tcell.KeyF1:
		showHelp(an)
		return nil
	case tcell.KeyRune:
		// The path input takes every rune, including question marks.
		if event.Rune() == '?' && !an.controls.pathInput.HasFocus() {
			showHelp(an)
			return nil
		}
		return event
	default:
		return event
	}
}

func (an *Analyzer) focusables() []tview.Primitive {
	return []tview.Primitive{
		an.controls.pathInput,
		an.controls.depthDrop,
		an.controls.scanButton,
		an.controls.cancelButton,
		an.table,
	}
}

func (an *Analyzer) moveFocus(delta int) {
	items := an.focusables()
	current := 0
	for i, p := range items {
		if p.HasFocus() {
			current = i
			break
		}
	}
	next := (current + delta + len(items)) % len(items)
	an.app.SetFocus(items[next])
	an.updateBorders()
}

func (an *Analyzer) updateBorders() {
	borderColor := func(focused bool) tcell.Color {
		if focused {
			return Style.FocusedBorderColor
		}
		return Style.BlurBorderColor
	}
	an.controls.SetBorderColor(borderColor(an.controls.HasFocus()))
	an.table.SetBorderColor(borderColor(an.table.HasFocus()))
}

func (an *Analyzer) tableInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyDelete, tcell.KeyF8:
		an.confirmTrash()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			an.app.Stop()
			return nil
		case 'o':
			an.revealSelected()
			return nil
		case 'f':
			an.cycleFilter()
			return nil
		case 's':
			an.setSort(SortBySize)
			return nil
		case 'n':
			an.setSort(SortByName)
			return nil
		}
	}
	return event
}

// startScan kicks off a walk of the entered path unless one is already
// running.
func (an *Analyzer) startScan() {
	if an.scanning {
		return
	}
	path := an.controls.Path()
	if ok, err := fsutils.DirExists(path); err != nil || !ok {
		an.status.SetStatus("Path does not exist: " + path)
		return
	}

	an.scanning = true
	an.controls.setScanning(true)
	an.status.SetStatus("Scanning...")
	an.status.SetItems("")
	an.rows.SetEntries(nil)
	an.stats.update(scan.NewAggregate())
	an.breakdown.update(scan.NewAggregate())
	an.session = newSession(an, path, an.controls.Depth())
}

func (an *Analyzer) cancelScan() {
	if an.session != nil {
		an.session.cancel()
	}
}

func (an *Analyzer) applyProgress(p fileProgress) {
	if !an.scanning {
		return
	}
	an.progress.update(p.count, p.path)
}

func (an *Analyzer) applySnapshot(agg *scan.Aggregate, refreshTable bool) {
	// A late snapshot must not overwrite the final result.
	if !an.scanning {
		return
	}
	an.stats.update(agg)
	an.breakdown.update(agg)
	if refreshTable {
		an.refreshTable(agg)
	}
}

func (an *Analyzer) finishScan(agg *scan.Aggregate, cancelled bool) {
	an.scanning = false
	an.session = nil
	an.controls.setScanning(false)
	an.progress.clear()

	an.stats.update(agg)
	an.breakdown.update(agg)
	an.refreshTable(agg)

	if cancelled {
		an.status.SetStatus("Scan cancelled")
	} else {
		an.status.SetStatus("Scan complete")
	}
	if an.table.GetRowCount() > 1 {
		an.table.Select(1, 0)
		an.app.SetFocus(an.table)
		an.updateBorders()
	}
}

func (an *Analyzer) refreshTable(agg *scan.Aggregate) {
	an.rows.SetEntries(agg.Entries)
	an.status.SetItems(an.itemsMessage())
}

func (an *Analyzer) itemsMessage() string {
	total := an.rows.TotalCount()
	if total == 0 {
		return ""
	}
	if an.rows.Capped() {
		return englishPrinter.Sprintf("Showing top %d of %d items", displayCap, total)
	}
	return englishPrinter.Sprintf("%d items", total)
}

func (an *Analyzer) selectedEntry() *scan.Entry {
	row, _ := an.table.GetSelection()
	return an.rows.EntryAt(row)
}

func (an *Analyzer) confirmTrash() {
	if an.scanning {
		return
	}
	entry := an.selectedEntry()
	if entry == nil {
		return
	}
	showConfirm(an, fmt.Sprintf("Move %q to trash?", entry.Name), func() {
		an.trashEntry(entry)
	})
}

func (an *Analyzer) trashEntry(entry *scan.Entry) {
	if _, err := an.mover.Move(entry.Path); err != nil {
		an.log.Error("cannot move to trash",
			slog.String("path", entry.Path), slog.Any("error", err))
		an.status.SetStatus("Trash failed: " + err.Error())
		return
	}
	// The rescan picks up the freed space; keep the move visible in the
	// status line while it runs.
	an.startScan()
	an.status.SetStatus("Moved to trash: " + entry.Name)
}

func (an *Analyzer) revealSelected() {
	entry := an.selectedEntry()
	if entry == nil {
		return
	}
	if err := revealEntry(entry.Path); err != nil {
		an.log.Error("cannot reveal entry",
			slog.String("path", entry.Path), slog.Any("error", err))
		an.status.SetStatus("Reveal failed: " + err.Error())
		return
	}
	an.status.SetStatus("Opened in file manager: " + entry.Name)
}

func (an *Analyzer) cycleFilter() {
	an.rows.SetFilter(an.rows.Filter().Next())
	an.table.SetTitle(fmt.Sprintf(" Items: %s ", an.rows.Filter()))
	an.status.SetItems(an.itemsMessage())
}

func (an *Analyzer) setSort(order SortOrder) {
	an.rows.SetSort(order)
	an.table.ScrollToBeginning()
}
