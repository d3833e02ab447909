package duview

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/duview/duview/pkg/scan"
)

// barWidth is the length of a full category bar in cells.
const barWidth = 24

type breakdown struct {
	*tview.Table
}

func newBreakdown() *breakdown {
	b := &breakdown{Table: tview.NewTable()}
	b.SetBorder(true)
	b.SetTitle(" By Category ")
	return b
}

// update redraws one row per non-zero category, biggest first.
func (b *breakdown) update(agg *scan.Aggregate) {
	b.Clear()

	categories := make([]scan.Category, 0, len(scan.Categories))
	for _, c := range scan.Categories {
		if agg.CategoryTotals[c] > 0 {
			categories = append(categories, c)
		}
	}
	slices.SortStableFunc(categories, func(x, y scan.Category) int {
		return cmp.Compare(agg.CategoryTotals[y], agg.CategoryTotals[x])
	})

	for row, c := range categories {
		size := agg.CategoryTotals[c]
		// TotalSize is positive whenever any category is.
		share := float64(size) / float64(agg.TotalSize)
		color := CategoryColor(c)

		nameCell := tview.NewTableCell(" " + titleCaser.String(string(c)))
		nameCell.SetTextColor(color)
		b.SetCell(row, 0, nameCell)

		filled := int(share*barWidth + 0.5)
		if filled < 1 {
			filled = 1
		}
		barCell := tview.NewTableCell(strings.Repeat("█", filled))
		barCell.SetTextColor(color)
		b.SetCell(row, 1, barCell)

		b.SetCell(row, 2, newSizeCell(size))

		pctCell := tview.NewTableCell(fmt.Sprintf("%5.1f%%", share*100))
		pctCell.SetAlign(tview.AlignRight)
		pctCell.SetTextColor(tcell.ColorLightGray)
		b.SetCell(row, 3, pctCell)
	}
}
