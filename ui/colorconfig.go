package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"checkers-local/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedDark  int
	selectedLight int
	editingLight  bool // true = editing light squares, false = dark squares
	saveErr       error
}

type paletteEntry struct {
	code int
	name string
}

// Dark square colors, the squares pieces stand on
var darkColors = []paletteEntry{
	{244, "Dark Gray"},
	{240, "Gray"},
	{236, "Charcoal"},
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{88, "Dark Red"},
	{22, "Dark Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
}

// Light square colors
var lightColors = []paletteEntry{
	{250, "Light Gray"},
	{252, "Silver"},
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{223, "Peach"},
	{222, "Gold"},
	{188, "Light Beige"},
	{180, "Tan"},
	{181, "Dusty Rose"},
	{255, "White"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		selectedDark:  cfg.Theme.Colors.DarkSquare,
		selectedLight: cfg.Theme.Colors.LightSquare,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetMainTextColor(MenuColors.Label)
	cc.colorList.SetSelectedTextColor(MenuColors.ButtonText)
	cc.colorList.SetSelectedBackgroundColor(MenuColors.ButtonFocus)

	cc.populateColorList()

	// moving through the list previews the color
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if code, ok := cc.colorAt(index); ok {
			if cc.editingLight {
				cc.selectedLight = code
			} else {
				cc.selectedDark = code
			}
		}
	})

	// Enter applies and saves
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if _, ok := cc.colorAt(index); !ok {
			return
		}
		cc.cfg.Theme.Colors.DarkSquare = cc.selectedDark
		cc.cfg.Theme.Colors.LightSquare = cc.selectedLight
		cc.saveErr = cc.cfg.Save()
		if cc.editingLight {
			cc.editingLight = false
			cc.populateColorList()
			return
		}
		if cc.saveErr == nil {
			onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) palette() []paletteEntry {
	if cc.editingLight {
		return lightColors
	}
	return darkColors
}

func (cc *ColorConfigUI) colorAt(index int) (int, bool) {
	entries := cc.palette()
	if index < 0 || index >= len(entries) {
		return 0, false
	}
	return entries[index].code, true
}

// populateColorList fills the list for the current editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedDark
	if cc.editingLight {
		cc.colorList.SetTitle(" Light Squares (Tab: dark) ")
		current = cc.selectedLight
	} else {
		cc.colorList.SetTitle(" Dark Squares (Tab: light) ")
	}
	for i, c := range cc.palette() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.palette() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6
	startX := x + 2
	startY := y + 1

	if width < size*cellWidth+4 || height < size+4 {
		return x, y, width, height
	}

	dark := tcell.PaletteColor(cc.selectedDark)
	light := tcell.PaletteColor(cc.selectedLight)
	red := tcell.PaletteColor(cc.cfg.Theme.Colors.RedPiece)
	black := tcell.PaletteColor(cc.cfg.Theme.Colors.BlackPiece)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			style := tcell.StyleDefault.Background(light)
			r := ' '
			if row%2 == col%2 {
				style = tcell.StyleDefault.Background(dark)
				switch {
				case row < 2:
					r = cc.cfg.Theme.Symbols.Man
					style = style.Foreground(black)
				case row >= size-2:
					r = cc.cfg.Theme.Symbols.Man
					style = style.Foreground(red)
				}
			}
			for dx := 0; dx < cellWidth; dx++ {
				ch := ' '
				if dx == cellWidth/2 {
					ch = r
				}
				screen.SetContent(startX+col*cellWidth+dx, startY+row, ch, nil, style)
			}
		}
	}

	info := fmt.Sprintf("Dark: %d  Light: %d", cc.selectedDark, cc.selectedLight)
	if cc.saveErr != nil {
		info = cc.saveErr.Error()
	}
	for i, ch := range []rune(info) {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between dark and light square editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLight = !cc.editingLight
	cc.populateColorList()
}
