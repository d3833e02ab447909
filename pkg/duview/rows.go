package duview

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/duview/duview/pkg/scan"
)

// displayCap bounds the number of rendered rows so huge scans stay
// browsable without the table choking on millions of cells.
const displayCap = 1000

var titleCaser = cases.Title(language.English)

// KindFilter restricts the item table to one kind of entry.
type KindFilter uint8

const (
	FilterAll KindFilter = iota
	FilterFiles
	FilterFolders
)

func (f KindFilter) String() string {
	switch f {
	case FilterFiles:
		return "Files"
	case FilterFolders:
		return "Folders"
	default:
		return "All"
	}
}

// Next cycles All, Files, Folders and back to All.
func (f KindFilter) Next() KindFilter {
	switch f {
	case FilterAll:
		return FilterFiles
	case FilterFiles:
		return FilterFolders
	default:
		return FilterAll
	}
}

func (f KindFilter) matches(k scan.Kind) bool {
	switch f {
	case FilterFiles:
		return k == scan.KindFile
	case FilterFolders:
		return k == scan.KindDir
	default:
		return true
	}
}

// SortOrder selects how the item table is ordered.
type SortOrder uint8

const (
	SortBySize SortOrder = iota // biggest first
	SortByName                  // case-insensitive, ascending
)

const (
	numColIndex = iota
	nameColIndex
	typeColIndex
	sizeColIndex
	pathColIndex
	columnCount
)

var _ tview.TableContent = (*EntryRows)(nil)

// EntryRows feeds the item table straight from a snapshot's inventory.
// All mutation happens on the UI goroutine, so there is no locking.
type EntryRows struct {
	tview.TableContentReadOnly
	entries []scan.Entry
	visible []scan.Entry
	total   int
	filter  KindFilter
	order   SortOrder
}

func NewEntryRows() *EntryRows {
	return &EntryRows{}
}

// SetEntries replaces the inventory. The slice comes from a snapshot and is
// never mutated here.
func (r *EntryRows) SetEntries(entries []scan.Entry) {
	r.entries = entries
	r.applyView()
}

func (r *EntryRows) SetFilter(f KindFilter) {
	r.filter = f
	r.applyView()
}

func (r *EntryRows) Filter() KindFilter {
	return r.filter
}

func (r *EntryRows) SetSort(o SortOrder) {
	r.order = o
	r.applyView()
}

func (r *EntryRows) applyView() {
	visible := make([]scan.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if r.filter.matches(e.Kind) {
			visible = append(visible, e)
		}
	}
	switch r.order {
	case SortByName:
		slices.SortStableFunc(visible, func(a, b scan.Entry) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	default:
		slices.SortStableFunc(visible, func(a, b scan.Entry) int {
			return cmp.Compare(b.Size, a.Size)
		})
	}
	r.total = len(visible)
	if len(visible) > displayCap {
		visible = visible[:displayCap]
	}
	r.visible = visible
}

// EntryAt maps a table row back to its entry; the header row and
// out-of-range rows yield nil.
func (r *EntryRows) EntryAt(row int) *scan.Entry {
	i := row - 1
	if i < 0 || i >= len(r.visible) {
		return nil
	}
	e := r.visible[i]
	return &e
}

// TotalCount is the number of entries passing the filter, before the
// display cap.
func (r *EntryRows) TotalCount() int {
	return r.total
}

// Capped reports whether rows beyond the display cap were cut off.
func (r *EntryRows) Capped() bool {
	return r.total > displayCap
}

func (r *EntryRows) GetRowCount() int {
	return len(r.visible) + 1
}

func (r *EntryRows) GetColumnCount() int {
	return columnCount
}

func (r *EntryRows) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		return r.headerCell(col)
	}
	i := row - 1
	if i < 0 || i >= len(r.visible) {
		return nil
	}
	e := &r.visible[i]
	switch col {
	case numColIndex:
		cell := tview.NewTableCell(strconv.Itoa(i + 1)).SetAlign(tview.AlignRight)
		cell.SetTextColor(tcell.ColorDarkGray)
		return cell
	case nameColIndex:
		displayName := "📄" + e.Name
		if e.Kind == scan.KindDir {
			displayName = "📁" + e.Name
		}
		cell := tview.NewTableCell(" " + displayName)
		cell.SetTextColor(entryColor(e))
		return cell
	case typeColIndex:
		cell := tview.NewTableCell(typeText(e))
		cell.SetTextColor(entryColor(e))
		return cell
	case sizeColIndex:
		return newSizeCell(e.Size)
	case pathColIndex:
		cell := tview.NewTableCell(e.Path).SetExpansion(1)
		cell.SetTextColor(tcell.ColorGray)
		return cell
	default:
		return nil
	}
}

func (r *EntryRows) headerCell(col int) *tview.TableCell {
	th := func(text string) *tview.TableCell {
		cell := tview.NewTableCell(text).SetTextColor(Style.TableHeaderColor)
		cell.SetSelectable(false)
		return cell
	}
	switch col {
	case numColIndex:
		return th("  #").SetAlign(tview.AlignRight)
	case nameColIndex:
		return th(" Name")
	case typeColIndex:
		return th("Type")
	case sizeColIndex:
		return th("  Size").SetAlign(tview.AlignRight)
	case pathColIndex:
		return th("Path").SetExpansion(1)
	default:
		return nil
	}
}

func typeText(e *scan.Entry) string {
	if e.Kind == scan.KindDir {
		return "Folder"
	}
	return titleCaser.String(string(e.Category))
}
