package duview

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	TableHeaderColor tcell.Color
	StatusTextColor  tcell.Color
	FolderColor      tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	TableHeaderColor: tcell.ColorWhiteSmoke,
	StatusTextColor:  tcell.ColorSlateGray,
	FolderColor:      tcell.ColorCornflowerBlue,
}
