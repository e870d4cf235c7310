package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"checkers-local/engine"
	"checkers-local/types"
)

// GameInfoPanel displays game information alongside the board.
type GameInfoPanel struct {
	box  *tview.TextView
	snap engine.Snapshot
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetSnapshot updates the panel with the current game state.
func (p *GameInfoPanel) SetSnapshot(s engine.Snapshot) {
	p.snap = s
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	if p.snap.Size() == 0 {
		p.box.SetText("")
		return
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	text += fmt.Sprintf("[white]Game:[-:-:-] %s %dx%d\n", p.snap.Variant.Title(), p.snap.Size(), p.snap.Size())
	text += fmt.Sprintf("[dimgray]capture %s, kings %s[-]\n", onOff(p.snap.Rules.CaptureJumped), onOff(p.snap.Rules.PromoteKings))
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.snap.MoveNumber)

	switch {
	case p.snap.InProgress():
		text += fmt.Sprintf("[white]To move:[-:-:-] %s\n", playerTag(p.snap.Player))
		if p.snap.Jumping {
			text += "[yellow]continue jumping[-]\n"
		}
	case p.snap.State == engine.GameOver:
		text += fmt.Sprintf("[white]Winner:[-:-:-] %s\n", playerTag(p.snap.Winner))
	}

	text += "\n[white::b]Pieces[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	for _, pl := range []types.Player{types.Red, types.Black} {
		men, kings := p.snap.Count(pl)
		text += fmt.Sprintf("%s  %2d men  %d kings\n", playerTag(pl), men, kings)
	}

	if p.snap.InProgress() && p.snap.Selected != nil {
		text += "\n[white::b]Selected[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"
		text += fmt.Sprintf(" %s\n", types.SquareName(*p.snap.Selected, p.snap.Size()))
		for _, m := range p.snap.LegalMoves {
			if m.From() == *p.snap.Selected {
				text += fmt.Sprintf("[dimgray]  %s[-]\n", types.MoveName(m, p.snap.Size()))
			}
		}
	}

	p.box.SetText(text)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func playerTag(pl types.Player) string {
	switch pl {
	case types.Red:
		return "[red]Red[-]"
	case types.Black:
		return "[white]Black[-]"
	default:
		return "-"
	}
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *CheckerBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *CheckerBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetSnapshot(board.snap)

	// board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// BuildFocusLayout builds the focus mode layout with the centered board and the status line.
func BuildFocusLayout(gameFrame *tview.Flex, board *CheckerBoardUI, hint *tview.TextView) {
	gameFrame.Clear()
	board.infoPanel = nil

	boardWidth, boardHeight := board.BoardSize()

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
	gameFrame.AddItem(hint, 1, 0, false)
}
