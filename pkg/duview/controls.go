package duview

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/duview/duview/pkg/fsutils"
	"github.com/duview/duview/pkg/scan"
)

// depthChoices are the depth bounds offered in the dropdown.
var depthChoices = []struct {
	label string
	depth int
}{
	{"All", scan.NoDepthLimit},
	{"3", 3},
	{"5", 5},
	{"10", 10},
	{"15", 15},
}

// controls is the top row: path input, depth selection and the scan and
// cancel buttons.
type controls struct {
	*tview.Flex
	an *Analyzer

	pathInput    *tview.InputField
	depthDrop    *tview.DropDown
	scanButton   *tview.Button
	cancelButton *tview.Button

	depthValues []int
	depth       int
}

func newControls(an *Analyzer) *controls {
	c := &controls{an: an}

	c.pathInput = tview.NewInputField().
		SetLabel("Path: ").
		SetText(an.cfg.Path).
		SetFieldWidth(0)
	c.pathInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			an.startScan()
		}
	})

	options := make([]string, 0, len(depthChoices)+1)
	c.depthValues = make([]int, 0, len(depthChoices)+1)
	for _, choice := range depthChoices {
		options = append(options, choice.label)
		c.depthValues = append(c.depthValues, choice.depth)
	}
	selected := -1
	for i, v := range c.depthValues {
		if v == an.cfg.MaxDepth || (v < 0 && an.cfg.MaxDepth < 0) {
			selected = i
			break
		}
	}
	if selected < 0 {
		// A depth from the command line that the dropdown does not offer
		// becomes its own option.
		options = append(options, strconv.Itoa(an.cfg.MaxDepth))
		c.depthValues = append(c.depthValues, an.cfg.MaxDepth)
		selected = len(options) - 1
	}
	c.depthDrop = tview.NewDropDown().
		SetLabel("Depth: ").
		SetOptions(options, func(text string, index int) {
			if index >= 0 && index < len(c.depthValues) {
				c.depth = c.depthValues[index]
			}
		})
	c.depthDrop.SetCurrentOption(selected)

	c.scanButton = tview.NewButton("Scan").SetSelectedFunc(an.startScan)
	c.cancelButton = tview.NewButton("Cancel").SetSelectedFunc(an.cancelScan)

	c.Flex = tview.NewFlex()
	c.Flex.SetBorder(true)
	c.Flex.AddItem(c.pathInput, 0, 1, true)
	c.Flex.AddItem(tview.NewBox(), 1, 0, false)
	c.Flex.AddItem(c.depthDrop, 12, 0, false)
	c.Flex.AddItem(tview.NewBox(), 1, 0, false)
	c.Flex.AddItem(c.scanButton, 8, 0, false)
	c.Flex.AddItem(tview.NewBox(), 1, 0, false)
	c.Flex.AddItem(c.cancelButton, 10, 0, false)

	c.setScanning(false)

	return c
}

// Path returns the entered directory with ~ expanded and surrounding
// whitespace dropped.
func (c *controls) Path() string {
	return fsutils.ExpandHome(strings.TrimSpace(c.pathInput.GetText()))
}

// Depth returns the selected depth bound, negative for unlimited.
func (c *controls) Depth() int {
	return c.depth
}

func (c *controls) setScanning(scanning bool) {
	c.pathInput.SetDisabled(scanning)
	c.depthDrop.SetDisabled(scanning)
	c.scanButton.SetDisabled(scanning)
	c.cancelButton.SetDisabled(!scanning)
}
