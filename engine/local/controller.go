// Package local implements a hot-seat game engine where both sides are played at the same terminal.
package local

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"checkers-local/board"
	"checkers-local/engine"
	"checkers-local/types"
)

const (
	msgWelcome       = `Click "New Game" to begin.`
	msgStartFirst    = `Click "New Game" to start a new game.`
	msgFinishFirst   = "Finish the current game first!"
	msgNoGame        = "There is no game in progress!"
	msgSelectPiece   = "Click the piece you want to move."
	msgSelectTarget  = "Click the square you want to move to."
	msgMakeMove      = "%s:  Make your move."
	msgMustJump      = "%s:  Make your move.  You must jump."
	msgContinueJump  = "%s:  You must continue jumping."
	msgResigned      = "%s resigns.  %s wins."
	msgNoMovesLeft   = "%s has no moves.  %s wins."
	firstMoveMessage = "Red:  Make your move."
)

// Controller owns the board and runs the turn state machine. It is not safe
// for concurrent use; the UI calls it from its event loop only.
type Controller struct {
	cfg      engine.GameConfig
	log      log.FieldLogger
	board    *board.Board
	state    engine.State
	player   types.Player
	winner   types.Player
	selected *types.BoardPos
	legal    []types.Move
	message  string
	moves    int
	jumping  bool
	gameID   string
	onChange []func(engine.Snapshot)
}

var _ engine.GameEngine = (*Controller)(nil)

// NewController creates a controller showing the starting position with no game running.
func NewController(cfg engine.GameConfig, logger log.FieldLogger) *Controller {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Controller{
		cfg:     cfg,
		log:     logger,
		board:   board.New(cfg.Variant, cfg.Rules),
		state:   engine.NoGame,
		message: msgWelcome,
	}
}

// Config returns the configuration used for the next game.
func (c *Controller) Config() engine.GameConfig {
	return c.cfg
}

// SetConfig changes variant and rules. Refused while a game is in progress.
func (c *Controller) SetConfig(cfg engine.GameConfig) bool {
	if c.IsGameInProgress() {
		c.setMessage(msgFinishFirst)
		return false
	}
	c.cfg = cfg
	c.board = board.New(cfg.Variant, cfg.Rules)
	c.legal = nil
	c.selected = nil
	c.changed()
	return true
}

// OnChange registers a callback for state changes.
func (c *Controller) OnChange(fn func(engine.Snapshot)) {
	c.onChange = append(c.onChange, fn)
}

// NewGame sets up the board with Red to move.
func (c *Controller) NewGame() {
	if c.IsGameInProgress() {
		c.setMessage(msgFinishFirst)
		return
	}
	c.gameID = uuid.NewString()
	c.board.Setup()
	c.player = types.Red
	c.winner = types.NoPlayer
	c.moves = 0
	c.jumping = false
	c.legal = board.LegalMoves(c.board, c.player)
	c.selected = nil
	c.state = engine.AwaitingSelection
	c.message = firstMoveMessage
	c.logger().WithField("variant", c.cfg.Variant.Name).Info("game started")
	if c.legal == nil {
		c.endGame(fmt.Sprintf(msgNoMovesLeft, upper(c.player), upper(c.player.Opponent())), c.player.Opponent())
		return
	}
	c.autoSelect()
	c.changed()
}

// Resign ends the game; the opponent of the side to move wins.
func (c *Controller) Resign() {
	if !c.IsGameInProgress() {
		c.setMessage(msgNoGame)
		return
	}
	c.logger().Info("resigned")
	c.endGame(fmt.Sprintf(msgResigned, upper(c.player), upper(c.player.Opponent())), c.player.Opponent())
}

// HandleClick selects a piece or moves the selected piece.
func (c *Controller) HandleClick(row, col int) {
	if !c.IsGameInProgress() {
		c.setMessage(msgStartFirst)
		return
	}
	if !c.board.InBounds(row, col) {
		c.logger().WithField("square", fmt.Sprintf("(%d,%d)", row, col)).Debug("click outside board")
		if c.selected == nil {
			c.setMessage(msgSelectPiece)
		} else {
			c.setMessage(msgSelectTarget)
		}
		return
	}
	pos := types.BoardPos{Row: row, Col: col}

	if board.HasOrigin(c.legal, pos) {
		c.selected = &pos
		c.state = engine.PieceSelected
		if c.jumping {
			c.message = fmt.Sprintf(msgContinueJump, upper(c.player))
		} else {
			c.message = fmt.Sprintf(msgMakeMove, upper(c.player))
		}
		c.logger().WithField("square", c.squareName(pos)).Debug("piece selected")
		c.changed()
		return
	}

	if c.selected == nil {
		c.setMessage(msgSelectPiece)
		return
	}

	for _, m := range board.Destinations(c.legal, *c.selected) {
		if m.To() == pos {
			c.makeMove(m)
			return
		}
	}

	c.logger().WithField("square", c.squareName(pos)).Debug("click rejected")
	c.setMessage(msgSelectTarget)
}

// makeMove applies a legal move, then continues the capture or passes the turn.
func (c *Controller) makeMove(m types.Move) {
	before := c.PieceAt(m.FromRow, m.FromCol)
	if err := c.board.Apply(m); err != nil {
		c.logger().WithError(err).Error("move could not be applied")
		return
	}
	c.moves++
	c.logger().WithField("move", types.MoveName(m, c.board.Size())).Info("move played")

	// crowning ends the turn, even when the new king could jump on
	crowned := before.Kind == types.Man && c.PieceAt(m.ToRow, m.ToCol).IsKing()
	if m.IsJump() && !crowned {
		if jumps := board.LegalJumpsFrom(c.board, c.player, m.ToRow, m.ToCol); jumps != nil {
			to := m.To()
			c.legal = jumps
			c.selected = &to
			c.jumping = true
			c.state = engine.PieceSelected
			c.message = fmt.Sprintf(msgContinueJump, upper(c.player))
			c.changed()
			return
		}
	}

	c.jumping = false
	c.player = c.player.Opponent()
	c.legal = board.LegalMoves(c.board, c.player)
	c.selected = nil
	if c.legal == nil {
		c.endGame(fmt.Sprintf(msgNoMovesLeft, upper(c.player), upper(c.player.Opponent())), c.player.Opponent())
		return
	}
	c.state = engine.AwaitingSelection
	if c.legal[0].IsJump() {
		c.message = fmt.Sprintf(msgMustJump, upper(c.player))
	} else {
		c.message = fmt.Sprintf(msgMakeMove, upper(c.player))
	}
	c.autoSelect()
	c.changed()
}

// autoSelect selects the only movable piece when every legal move shares it.
func (c *Controller) autoSelect() {
	if board.SameOrigin(c.legal) {
		from := c.legal[0].From()
		c.selected = &from
		c.state = engine.PieceSelected
	}
}

func (c *Controller) endGame(message string, winner types.Player) {
	c.state = engine.GameOver
	c.winner = winner
	c.selected = nil
	c.jumping = false
	c.message = message
	c.logger().WithField("winner", winner.String()).Info("game over")
	c.changed()
}

func (c *Controller) setMessage(msg string) {
	c.message = msg
	c.changed()
}

func (c *Controller) changed() {
	if len(c.onChange) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, fn := range c.onChange {
		fn(snap)
	}
}

func (c *Controller) logger() log.FieldLogger {
	fields := log.Fields{"player": c.player.String()}
	if c.gameID != "" {
		fields["game_id"] = c.gameID
	}
	return c.log.WithFields(fields)
}

func (c *Controller) squareName(pos types.BoardPos) string {
	return types.SquareName(pos, c.board.Size())
}

// CurrentLegalMoves returns a copy of the legal moves of the side to move.
func (c *Controller) CurrentLegalMoves() []types.Move {
	if !c.IsGameInProgress() {
		return nil
	}
	return append([]types.Move(nil), c.legal...)
}

// SelectedSquare returns the selected square.
func (c *Controller) SelectedSquare() (types.BoardPos, bool) {
	if c.selected == nil {
		return types.BoardPos{Row: -1, Col: -1}, false
	}
	return *c.selected, true
}

// PieceAt returns the content of (row, col); off-board squares read as empty.
func (c *Controller) PieceAt(row, col int) types.Cell {
	cell, err := c.board.PieceAt(row, col)
	if err != nil {
		return types.EmptyCell
	}
	return cell
}

// IsGameInProgress reports whether moves are being accepted.
func (c *Controller) IsGameInProgress() bool {
	return c.state == engine.AwaitingSelection || c.state == engine.PieceSelected
}

// CurrentMessage returns the status line for the players.
func (c *Controller) CurrentMessage() string { return c.message }

// CurrentPlayer returns the side to move.
func (c *Controller) CurrentPlayer() types.Player { return c.player }

// Winner returns the winner of a finished game, NoPlayer otherwise.
func (c *Controller) Winner() types.Player { return c.winner }

// State returns the phase of the turn state machine.
func (c *Controller) State() engine.State { return c.state }

// Snapshot copies the current state.
func (c *Controller) Snapshot() engine.Snapshot {
	snap := engine.Snapshot{
		GameID:     c.gameID,
		Variant:    c.cfg.Variant,
		Rules:      c.cfg.Rules,
		State:      c.state,
		Player:     c.player,
		Winner:     c.winner,
		Board:      c.board.Grid(),
		LegalMoves: c.CurrentLegalMoves(),
		Message:    c.message,
		MoveNumber: c.moves,
		Jumping:    c.jumping,
	}
	if c.selected != nil {
		sel := *c.selected
		snap.Selected = &sel
	}
	return snap
}

func upper(p types.Player) string {
	return strings.ToUpper(p.String())
}
