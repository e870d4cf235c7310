// Package engine defines the interface between the game rules and a presentation layer.
package engine

import (
	"checkers-local/board"
	"checkers-local/types"
)

// State is the phase of the turn state machine.
type State int

const (
	NoGame State = iota
	AwaitingSelection
	PieceSelected
	GameOver
)

func (s State) String() string {
	switch s {
	case NoGame:
		return "no game"
	case AwaitingSelection:
		return "awaiting selection"
	case PieceSelected:
		return "piece selected"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameEngine drives a two-player game. Invalid input never fails: it leaves
// the state unchanged and updates the current message instead.
type GameEngine interface {
	// NewGame starts a game. Ignored while a game is in progress.
	NewGame()

	// Resign ends the game in favour of the opponent of the side to move.
	Resign()

	// HandleClick processes a click on (row, col).
	HandleClick(row, col int)

	// CurrentLegalMoves returns the moves the side to move may play.
	CurrentLegalMoves() []types.Move

	// SelectedSquare returns the selected piece, if any.
	SelectedSquare() (types.BoardPos, bool)

	// PieceAt returns the content of a square. Off-board squares read as empty.
	PieceAt(row, col int) types.Cell

	IsGameInProgress() bool

	CurrentMessage() string

	// Snapshot returns an immutable copy of everything a renderer needs.
	Snapshot() Snapshot

	// OnChange registers a callback run after every state change.
	OnChange(func(Snapshot))
}

// GameConfig holds configuration for starting games.
type GameConfig struct {
	Variant board.Variant
	Rules   board.RuleSet
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Variant: board.Checkers,
		Rules:   board.DefaultRules,
	}
}

// Snapshot is a read-only view of a game. Its slices are copies.
type Snapshot struct {
	GameID     string
	Variant    board.Variant
	Rules      board.RuleSet
	State      State
	Player     types.Player // side to move
	Winner     types.Player // set once the game is over
	Board      [][]types.Cell
	LegalMoves []types.Move
	Selected   *types.BoardPos
	Message    string
	MoveNumber int
	Jumping    bool // the side to move must continue a capture sequence
}

// InProgress reports whether moves are being accepted.
func (s Snapshot) InProgress() bool {
	return s.State == AwaitingSelection || s.State == PieceSelected
}

// Size returns the board size.
func (s Snapshot) Size() int {
	return len(s.Board)
}

// Cell returns the content of (row, col), or an empty cell off the board.
func (s Snapshot) Cell(row, col int) types.Cell {
	if row < 0 || row >= len(s.Board) || col < 0 || col >= len(s.Board[row]) {
		return types.EmptyCell
	}
	return s.Board[row][col]
}

// IsMovable reports whether a legal move starts on (row, col).
func (s Snapshot) IsMovable(row, col int) bool {
	return board.HasOrigin(s.LegalMoves, types.BoardPos{Row: row, Col: col})
}

// IsDestination reports whether the selected piece may move to (row, col).
func (s Snapshot) IsDestination(row, col int) bool {
	if s.Selected == nil {
		return false
	}
	for _, m := range board.Destinations(s.LegalMoves, *s.Selected) {
		if m.ToRow == row && m.ToCol == col {
			return true
		}
	}
	return false
}

// Count returns the men and kings of p in the snapshot.
func (s Snapshot) Count(p types.Player) (men, kings int) {
	for _, row := range s.Board {
		for _, c := range row {
			switch {
			case !c.BelongsTo(p):
			case c.IsKing():
				kings++
			default:
				men++
			}
		}
	}
	return men, kings
}
