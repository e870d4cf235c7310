package local

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers-local/board"
	"checkers-local/engine"
	"checkers-local/types"
)

func newTestController(t *testing.T) (*Controller, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewController(engine.DefaultConfig(), logger), hook
}

// startFrom begins a game on a prepared position with Red to move.
func startFrom(t *testing.T, c *Controller, b *board.Board) {
	t.Helper()
	c.NewGame()
	require.True(t, c.IsGameInProgress())
	c.board = b
	c.legal = board.LegalMoves(b, types.Red)
	c.selected = nil
	c.state = engine.AwaitingSelection
	c.autoSelect()
}

func put(t *testing.T, b *board.Board, row, col int, cell types.Cell) {
	t.Helper()
	require.NoError(t, b.Put(row, col, cell))
}

func TestInitialState(t *testing.T) {
	c, _ := newTestController(t)
	assert.Equal(t, engine.NoGame, c.State())
	assert.False(t, c.IsGameInProgress())
	assert.Equal(t, `Click "New Game" to begin.`, c.CurrentMessage())
	assert.Nil(t, c.CurrentLegalMoves())
	assert.Equal(t, types.ManOf(types.Red), c.PieceAt(5, 1))
}

func TestNewGame(t *testing.T) {
	c, _ := newTestController(t)
	c.NewGame()

	assert.Equal(t, engine.AwaitingSelection, c.State())
	assert.Equal(t, types.Red, c.CurrentPlayer())
	assert.Equal(t, "Red:  Make your move.", c.CurrentMessage())
	assert.Len(t, c.CurrentLegalMoves(), 7)
	_, ok := c.SelectedSquare()
	assert.False(t, ok)
}

func TestSimpleMovePassesTurn(t *testing.T) {
	c, _ := newTestController(t)
	c.NewGame()

	c.HandleClick(5, 1)
	sel, ok := c.SelectedSquare()
	require.True(t, ok)
	assert.Equal(t, types.BoardPos{Row: 5, Col: 1}, sel)
	assert.Equal(t, engine.PieceSelected, c.State())

	c.HandleClick(4, 2)
	assert.Equal(t, types.Black, c.CurrentPlayer())
	assert.Equal(t, engine.AwaitingSelection, c.State())
	assert.Equal(t, "BLACK:  Make your move.", c.CurrentMessage())
	_, ok = c.SelectedSquare()
	assert.False(t, ok, "selection must clear on turn change")
	assert.Equal(t, types.ManOf(types.Red), c.PieceAt(4, 2))
	assert.True(t, c.PieceAt(5, 1).IsEmpty())
}

func TestForcedCaptureFlow(t *testing.T) {
	c, _ := newTestController(t)
	c.NewGame()
	c.HandleClick(5, 3)
	c.HandleClick(4, 4)
	c.HandleClick(2, 2)
	c.HandleClick(3, 3)

	// the only legal move is the capture, so its piece is picked automatically
	assert.Equal(t, []types.Move{types.NewMove(4, 4, 2, 2)}, c.CurrentLegalMoves())
	assert.Equal(t, "RED:  Make your move.  You must jump.", c.CurrentMessage())
	sel, ok := c.SelectedSquare()
	require.True(t, ok)
	assert.Equal(t, types.BoardPos{Row: 4, Col: 4}, sel)

	c.HandleClick(2, 2)
	assert.True(t, c.PieceAt(3, 3).IsEmpty(), "jumped piece is captured")
	assert.Equal(t, types.Black, c.CurrentPlayer())
	assert.Equal(t, "BLACK:  Make your move.  You must jump.", c.CurrentMessage())
	for _, m := range c.CurrentLegalMoves() {
		assert.True(t, m.IsJump())
	}
}

func TestMultiJumpKeepsTurn(t *testing.T) {
	c, _ := newTestController(t)
	b := board.Empty(board.Checkers, board.DefaultRules)
	put(t, b, 6, 0, types.ManOf(types.Red))
	put(t, b, 5, 1, types.ManOf(types.Black))
	put(t, b, 3, 3, types.ManOf(types.Black))
	put(t, b, 0, 6, types.ManOf(types.Black))
	startFrom(t, c, b)

	c.HandleClick(4, 2)
	assert.Equal(t, types.Red, c.CurrentPlayer(), "turn must not pass while a jump continues")
	assert.Equal(t, engine.PieceSelected, c.State())
	assert.Equal(t, "RED:  You must continue jumping.", c.CurrentMessage())
	assert.Equal(t, []types.Move{types.NewMove(4, 2, 2, 4)}, c.CurrentLegalMoves())
	sel, _ := c.SelectedSquare()
	assert.Equal(t, types.BoardPos{Row: 4, Col: 2}, sel)

	// a click elsewhere does not break the sequence
	c.HandleClick(3, 1)
	assert.Equal(t, "Click the square you want to move to.", c.CurrentMessage())
	assert.Equal(t, types.Red, c.CurrentPlayer())

	c.HandleClick(2, 4)
	assert.Equal(t, types.Black, c.CurrentPlayer())
	men, _ := b.Count(types.Black)
	assert.Equal(t, 1, men)
	// black's only piece is selected for convenience
	sel, ok := c.SelectedSquare()
	require.True(t, ok)
	assert.Equal(t, types.BoardPos{Row: 0, Col: 6}, sel)
	assert.Equal(t, engine.PieceSelected, c.State())
}

func TestCrowningEndsTheTurn(t *testing.T) {
	c, _ := newTestController(t)
	b := board.Empty(board.Checkers, board.DefaultRules)
	put(t, b, 2, 2, types.ManOf(types.Red))
	put(t, b, 1, 3, types.ManOf(types.Black))
	put(t, b, 1, 5, types.ManOf(types.Black))
	startFrom(t, c, b)

	// the new king could jump (1,5) backwards, but the turn is over
	c.HandleClick(0, 4)
	assert.Equal(t, types.KingOf(types.Red), c.PieceAt(0, 4))
	assert.Equal(t, types.Black, c.CurrentPlayer())
	assert.Equal(t, "BLACK:  Make your move.", c.CurrentMessage())
	assert.False(t, c.Snapshot().Jumping)
	for _, m := range c.CurrentLegalMoves() {
		assert.Equal(t, types.BoardPos{Row: 1, Col: 5}, m.From())
	}
}

func TestJumpWithoutCaptureContinues(t *testing.T) {
	c, _ := newTestController(t)
	b := board.Empty(board.Checkers, board.RuleSet{CaptureJumped: false, PromoteKings: true})
	put(t, b, 6, 0, types.ManOf(types.Red))
	put(t, b, 5, 1, types.ManOf(types.Black))
	put(t, b, 3, 3, types.ManOf(types.Black))
	put(t, b, 0, 6, types.ManOf(types.Black))
	startFrom(t, c, b)

	c.HandleClick(4, 2)
	assert.Equal(t, types.ManOf(types.Black), c.PieceAt(5, 1), "jumped piece stays")
	assert.Equal(t, types.Red, c.CurrentPlayer())
	assert.Equal(t, "RED:  You must continue jumping.", c.CurrentMessage())
	assert.Equal(t, []types.Move{types.NewMove(4, 2, 2, 4)}, c.CurrentLegalMoves())

	c.HandleClick(2, 4)
	assert.Equal(t, types.ManOf(types.Black), c.PieceAt(3, 3))
	assert.Equal(t, types.Black, c.CurrentPlayer())
	men, _ := b.Count(types.Black)
	assert.Equal(t, 3, men)
}

func TestOffBoardClickPrompts(t *testing.T) {
	c, _ := newTestController(t)
	c.NewGame()

	c.HandleClick(-1, 3)
	assert.Equal(t, "Click the piece you want to move.", c.CurrentMessage())
	assert.Equal(t, engine.AwaitingSelection, c.State())

	c.HandleClick(5, 1)
	c.HandleClick(8, 0)
	assert.Equal(t, "Click the square you want to move to.", c.CurrentMessage())
	sel, ok := c.SelectedSquare()
	require.True(t, ok)
	assert.Equal(t, types.BoardPos{Row: 5, Col: 1}, sel)
	assert.Equal(t, types.Red, c.CurrentPlayer())
}

func TestNoMovesEndsGame(t *testing.T) {
	c, _ := newTestController(t)
	b := board.Empty(board.Checkers, board.DefaultRules)
	put(t, b, 5, 5, types.ManOf(types.Red))
	put(t, b, 7, 1, types.ManOf(types.Black))
	startFrom(t, c, b)

	c.HandleClick(4, 4)
	assert.Equal(t, engine.GameOver, c.State())
	assert.False(t, c.IsGameInProgress())
	assert.Equal(t, types.Red, c.Winner())
	assert.Equal(t, "BLACK has no moves.  RED wins.", c.CurrentMessage())
	assert.Nil(t, c.CurrentLegalMoves())
}

func TestResignRightAfterNewGame(t *testing.T) {
	c, _ := newTestController(t)
	c.NewGame()
	c.Resign()

	assert.Equal(t, engine.GameOver, c.State())
	assert.Equal(t, types.Black, c.Winner())
	assert.Equal(t, "RED resigns.  BLACK wins.", c.CurrentMessage())

	c.NewGame()
	assert.True(t, c.IsGameInProgress())
	assert.Equal(t, types.NoPlayer, c.Winner())
	assert.Equal(t, "Red:  Make your move.", c.CurrentMessage())
}

func TestResignAsBlack(t *testing.T) {
	c, _ := newTestController(t)
	c.NewGame()
	c.HandleClick(5, 1)
	c.HandleClick(4, 0)
	c.Resign()
	assert.Equal(t, types.Red, c.Winner())
	assert.Equal(t, "BLACK resigns.  RED wins.", c.CurrentMessage())
}

func TestInvalidInputLeavesStateUnchanged(t *testing.T) {
	c, _ := newTestController(t)

	c.HandleClick(5, 1)
	assert.Equal(t, `Click "New Game" to start a new game.`, c.CurrentMessage())
	c.Resign()
	assert.Equal(t, "There is no game in progress!", c.CurrentMessage())
	assert.Equal(t, engine.NoGame, c.State())

	c.NewGame()
	before := c.Snapshot()

	c.HandleClick(4, 4)
	assert.Equal(t, "Click the piece you want to move.", c.CurrentMessage())
	c.HandleClick(-1, 3)
	c.HandleClick(3, 99)
	c.NewGame()
	assert.Equal(t, "Finish the current game first!", c.CurrentMessage())

	after := c.Snapshot()
	assert.Equal(t, before.Board, after.Board)
	assert.Equal(t, before.State, after.State)
	assert.Equal(t, before.GameID, after.GameID)
	assert.Nil(t, after.Selected)
}

func TestReselect(t *testing.T) {
	c, _ := newTestController(t)
	c.NewGame()
	c.HandleClick(5, 1)
	c.HandleClick(3, 3)
	assert.Equal(t, "Click the square you want to move to.", c.CurrentMessage())

	c.HandleClick(5, 7)
	sel, _ := c.SelectedSquare()
	assert.Equal(t, types.BoardPos{Row: 5, Col: 7}, sel)
	assert.Equal(t, "RED:  Make your move.", c.CurrentMessage())
}

func TestSetConfig(t *testing.T) {
	c, _ := newTestController(t)
	cfg := engine.GameConfig{Variant: board.Gekitai, Rules: board.DefaultRules}
	require.True(t, c.SetConfig(cfg))
	c.NewGame()
	assert.Len(t, c.Snapshot().Board, 6)

	assert.False(t, c.SetConfig(engine.DefaultConfig()), "refused mid-game")
	assert.Equal(t, board.Gekitai, c.Config().Variant)
}

func TestSnapshotIsACopy(t *testing.T) {
	c, _ := newTestController(t)
	var seen []engine.Snapshot
	c.OnChange(func(s engine.Snapshot) { seen = append(seen, s) })
	c.NewGame()
	c.HandleClick(5, 1)
	require.Len(t, seen, 2)

	snap := c.Snapshot()
	snap.Board[5][1] = types.EmptyCell
	snap.LegalMoves[0] = types.NewMove(0, 0, 0, 0)
	snap.Selected.Row = 0

	assert.Equal(t, types.ManOf(types.Red), c.PieceAt(5, 1))
	assert.Equal(t, types.NewMove(5, 1, 4, 2), c.CurrentLegalMoves()[0])
	sel, _ := c.SelectedSquare()
	assert.Equal(t, 5, sel.Row)

	assert.True(t, seen[1].IsMovable(5, 3))
	assert.True(t, seen[1].IsDestination(4, 0))
	assert.False(t, seen[1].IsDestination(4, 4))
}

func TestLogsCarryGameID(t *testing.T) {
	c, hook := newTestController(t)
	c.NewGame()
	c.HandleClick(5, 1)
	c.HandleClick(4, 2)

	var played *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "move played" {
			played = e
		}
	}
	require.NotNil(t, played)
	assert.Equal(t, c.Snapshot().GameID, played.Data["game_id"])
	assert.Equal(t, "b3-c4", played.Data["move"])
	assert.Equal(t, "Red", played.Data["player"])
}
