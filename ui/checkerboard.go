// Package ui specifies custom controls for tview to play checkers in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"checkers-local/board"
	"checkers-local/config"
	"checkers-local/engine"
	"checkers-local/types"
)

const (
	cellWidth  = 3 // terminal columns per square
	cellHeight = 1 // terminal rows per square
	labelWidth = 4 // row numbers left of the board
)

// style indices
const (
	styleLight = iota
	styleDark
	styleRed
	styleBlack
	styleMovable
	styleSelected
	styleDestination
	styleCursor
	styleBorder
)

type CheckerBoardUI struct {
	Box       *tview.Box
	snap      engine.Snapshot
	hint      *tview.TextView
	cfg       *config.Config
	eng       engine.GameEngine
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
	curRow    int
	curCol    int
	originX   int // screen position of square (0,0), set on draw
	originY   int
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *CheckerBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *CheckerBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *CheckerBoardUI) IsFocusMode() bool {
	return g.focusMode
}

// Cursor returns the keyboard cursor, ok is false when it is hidden.
func (g *CheckerBoardUI) Cursor() (row, col int, ok bool) {
	if g.curRow == -1 && g.curCol == -1 {
		return -1, -1, false
	}
	return g.curRow, g.curCol, true
}

// MoveCursor moves the keyboard cursor by (dRow, dCol). The first call shows
// it on the selected piece, or on the first movable piece.
func (g *CheckerBoardUI) MoveCursor(dRow, dCol int) {
	if !g.snap.InProgress() {
		g.ResetCursor()
		return
	}
	if _, _, ok := g.Cursor(); !ok {
		switch {
		case g.snap.Selected != nil:
			g.curRow, g.curCol = g.snap.Selected.Row, g.snap.Selected.Col
		case len(g.snap.LegalMoves) > 0:
			g.curRow, g.curCol = g.snap.LegalMoves[0].FromRow, g.snap.LegalMoves[0].FromCol
		default:
			g.curRow, g.curCol = g.snap.Size()/2, g.snap.Size()/2
		}
		return
	}
	if g.curRow+dRow < 0 || g.curRow+dRow >= g.snap.Size() {
		return
	}
	if g.curCol+dCol < 0 || g.curCol+dCol >= g.snap.Size() {
		return
	}
	g.curRow += dRow
	g.curCol += dCol
}

func (g *CheckerBoardUI) ResetCursor() {
	g.curRow = -1
	g.curCol = -1
}

// ClickCursor clicks the square under the keyboard cursor.
func (g *CheckerBoardUI) ClickCursor() {
	row, col, ok := g.Cursor()
	if !ok {
		if !g.snap.InProgress() {
			g.eng.HandleClick(-1, -1)
			return
		}
		g.MoveCursor(0, 0)
		return
	}
	g.eng.HandleClick(row, col)
}

// CellAt converts a screen position to a square. Positions outside the grid return ok == false.
func (g *CheckerBoardUI) CellAt(screenX, screenY int) (row, col int, ok bool) {
	return cellAt(screenX, screenY, g.originX, g.originY, g.snap.Size())
}

func cellAt(screenX, screenY, originX, originY, size int) (row, col int, ok bool) {
	dx, dy := screenX-originX, screenY-originY
	if dx < 0 || dy < 0 {
		return -1, -1, false
	}
	row, col = dy/cellHeight, dx/cellWidth
	if row >= size || col >= size {
		return -1, -1, false
	}
	return row, col, true
}

// NewCheckerBoard creates the board widget and subscribes it to the engine.
func NewCheckerBoard(eng engine.GameEngine, c *config.Config, hint *tview.TextView) *CheckerBoardUI {
	cb := &CheckerBoardUI{
		Box:    tview.NewBox(),
		hint:   hint,
		eng:    eng,
		snap:   eng.Snapshot(),
		curRow: -1,
		curCol: -1,
	}
	cb.SetConfig(c)
	eng.OnChange(func(s engine.Snapshot) {
		cb.snap = s
		if !s.InProgress() {
			cb.ResetCursor()
		}
		cb.refreshHint()
	})
	cb.Box.SetDrawFunc(cb.draw)
	cb.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		x, y := event.Position()
		if row, col, ok := cb.CellAt(x, y); ok {
			cb.curRow, cb.curCol = row, col
			cb.eng.HandleClick(row, col)
		} else if !cb.snap.InProgress() {
			// mirror the engine's prompt for clicks while no game runs
			cb.eng.HandleClick(-1, -1)
		}
		return action, event
	})
	cb.refreshHint()
	return cb
}

func (g *CheckerBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := g.snap.Size()
	if size == 0 {
		return x, y, 1, 1
	}
	g.originX, g.originY = x+labelWidth, y

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			g.drawSquare(screen, row, col)
		}
	}
	if g.cfg.Theme.ShowCoordinates {
		g.drawCoordinates(screen, x, y)
	}
	return x, y, width, height
}

func (g *CheckerBoardUI) drawSquare(screen tcell.Screen, row, col int) {
	bg := g.styles[styleLight]
	if board.Playable(row, col) {
		bg = g.styles[styleDark]
	}
	fill := g.cfg.Theme.Symbols.DarkSquare
	fg := g.styles[styleBorder]

	cell := g.snap.Cell(row, col)
	piece := ' '
	switch {
	case cell.IsEmpty():
	case cell.IsKing():
		piece = g.cfg.Theme.Symbols.King
	default:
		piece = g.cfg.Theme.Symbols.Man
	}
	if !cell.IsEmpty() {
		fg = g.styles[styleBlack]
		if cell.Owner == types.Red {
			fg = g.styles[styleRed]
		}
	}

	if g.snap.InProgress() {
		switch {
		case g.snap.Selected != nil && g.snap.Selected.Row == row && g.snap.Selected.Col == col:
			bg = g.styles[styleSelected]
		case g.snap.IsDestination(row, col):
			bg = g.styles[styleDestination]
			if cell.IsEmpty() {
				piece = g.cfg.Theme.Symbols.Marker
			}
		case g.snap.IsMovable(row, col):
			bg = g.styles[styleMovable]
		}
	}

	style := tcell.StyleDefault.Background(bg).Foreground(fg)
	left, top := g.originX+col*cellWidth, g.originY+row*cellHeight
	cursorHere := row == g.curRow && col == g.curCol
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			r := fill
			if piece == ' ' && r == ' ' && cursorHere && !g.cfg.Theme.DrawCursorBackground {
				r = '+'
			}
			if dx == cellWidth/2 && dy == cellHeight/2 && piece != ' ' {
				r = piece
			}
			if cursorHere && (dx == 0 || dx == cellWidth-1) && g.cfg.Theme.DrawCursorBackground {
				screen.SetContent(left+dx, top+dy, r, nil, style.Background(g.styles[styleCursor]))
				continue
			}
			screen.SetContent(left+dx, top+dy, r, nil, style)
		}
	}
}

func (g *CheckerBoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	size := g.snap.Size()
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles[styleCursor])

	for col := 0; col < size; col++ {
		_style := style
		if col == g.curCol {
			_style = highlight
		}
		for dx := 0; dx < cellWidth; dx++ {
			r := ' '
			if dx == cellWidth/2 {
				r = rune('a' + col)
			}
			s.SetContent(g.originX+col*cellWidth+dx, g.originY+size*cellHeight, r, nil, _style)
		}
	}
	for row := 0; row < size; row++ {
		_style := style
		if row == g.curRow {
			_style = highlight
		}
		label := fmt.Sprintf("%2d", size-row)
		for i, r := range label {
			s.SetContent(x+1+i, g.originY+row*cellHeight+cellHeight/2, r, nil, _style)
		}
	}
}

// SetConfig applies theme colours.
func (g *CheckerBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.LightSquare), // 0
		tcell.PaletteColor(c.Theme.Colors.DarkSquare),  // 1
		tcell.PaletteColor(c.Theme.Colors.RedPiece),    // 2
		tcell.PaletteColor(c.Theme.Colors.BlackPiece),  // 3
		tcell.PaletteColor(c.Theme.Colors.Movable),     // 4
		tcell.PaletteColor(c.Theme.Colors.Selected),    // 5
		tcell.PaletteColor(c.Theme.Colors.Destination), // 6
		tcell.PaletteColor(c.Theme.Colors.CursorBG),    // 7
		tcell.PaletteColor(c.Theme.Colors.Border),      // 8
	}
	g.cfg = c
}

// Snapshot returns the state currently rendered.
func (g *CheckerBoardUI) Snapshot() engine.Snapshot {
	return g.snap
}

func (g *CheckerBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetSnapshot(g.snap)
	}
	if g.hint == nil {
		return
	}

	if g.focusMode {
		g.hint.SetText(fmt.Sprintf("  %s   f to toggle", g.snap.Message))
		return
	}

	var controlsLine string
	if g.snap.InProgress() {
		controlsLine = "  click/⏎ select+move   hjkl/↑↓←→ cursor   r resign   f focus   q menu"
	} else {
		controlsLine = "  n new game   f focus   q menu"
	}
	g.hint.SetText(fmt.Sprintf("  %s\n%s", g.snap.Message, controlsLine))
}

// BoardSize returns the terminal cells the board occupies, including labels.
func (g *CheckerBoardUI) BoardSize() (width, height int) {
	size := g.snap.Size()
	return size*cellWidth + labelWidth, size*cellHeight + 1
}
