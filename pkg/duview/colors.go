package duview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/duview/duview/pkg/fsutils"
	"github.com/duview/duview/pkg/scan"
)

// The category palette is part of the look and not derived from the
// terminal theme.
var categoryColors = map[scan.Category]tcell.Color{
	scan.CategoryVideo:    tcell.NewHexColor(0xE91E63),
	scan.CategoryImage:    tcell.NewHexColor(0x2196F3),
	scan.CategoryPDF:      tcell.NewHexColor(0xF44336),
	scan.CategoryDocument: tcell.NewHexColor(0x4CAF50),
	scan.CategoryArchive:  tcell.NewHexColor(0xFF9800),
	scan.CategoryAudio:    tcell.NewHexColor(0x9C27B0),
	scan.CategoryCode:     tcell.NewHexColor(0x00BCD4),
	scan.CategoryOther:    tcell.NewHexColor(0x757575),
}

// CategoryColor returns the display color for a category; anything unknown
// gets the "other" gray.
func CategoryColor(c scan.Category) tcell.Color {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[scan.CategoryOther]
}

func entryColor(e *scan.Entry) tcell.Color {
	if e.Kind == scan.KindDir {
		return Style.FolderColor
	}
	return CategoryColor(e.Category)
}

func newSizeCell(size int64) (sizeCell *tview.TableCell) {
	sizeText := "  " + fsutils.FormatBytes(size)
	sizeCell = tview.NewTableCell(sizeText).SetAlign(tview.AlignRight)
	if size >= 1024*1024*1024*1024 { // TB
		sizeCell.SetTextColor(tcell.ColorOrangeRed)
	} else if size >= 1024*1024*1024 { // GB
		sizeCell.SetTextColor(tcell.ColorYellow)
	} else if size >= 1024*1024 { // MB
		sizeCell.SetTextColor(tcell.ColorLightGreen)
	} else if size >= 1024 { // KB
		sizeCell.SetTextColor(tcell.ColorWhiteSmoke)
	} else {
		sizeCell.SetTextColor(tcell.ColorLightGray)
	}
	return
}
