// Package board holds the grid of a checkers-style game and generates its legal moves.
package board

import (
	"errors"
	"fmt"

	"checkers-local/types"
)

// ErrOutOfBounds is matched by every OutOfBoundsError.
var ErrOutOfBounds = errors.New("square out of bounds")

// OutOfBoundsError reports access to a square outside the grid.
type OutOfBoundsError struct {
	Row, Col, Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("square (%d,%d) outside %dx%d board", e.Row, e.Col, e.Size, e.Size)
}

// Is matches ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Board is a square grid of cells. Board[row][col], row 0 at the top.
type Board struct {
	variant Variant
	rules   RuleSet
	cells   [][]types.Cell
}

// New creates a board for the variant and sets it up for a new game.
func New(v Variant, rules RuleSet) *Board {
	cells := make([][]types.Cell, v.Size)
	for i := range cells {
		cells[i] = make([]types.Cell, v.Size)
	}
	b := &Board{variant: v, rules: rules, cells: cells}
	b.Setup()
	return b
}

// Empty creates a board with no pieces on it.
func Empty(v Variant, rules RuleSet) *Board {
	b := New(v, rules)
	b.Clear()
	return b
}

// Playable reports whether pieces may stand on (row, col).
func Playable(row, col int) bool {
	return row%2 == col%2
}

// Setup puts the pieces in their starting position. Black occupies the
// dark squares of the top rows, Red those of the bottom rows.
func (b *Board) Setup() {
	n := b.variant.Size
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			switch {
			case !Playable(row, col):
				b.cells[row][col] = types.EmptyCell
			case row < b.variant.BlackRows():
				b.cells[row][col] = types.ManOf(types.Black)
			case row >= n-b.variant.RedStartRows():
				b.cells[row][col] = types.ManOf(types.Red)
			default:
				b.cells[row][col] = types.EmptyCell
			}
		}
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col] = types.EmptyCell
		}
	}
}

// Size returns the number of squares per side.
func (b *Board) Size() int { return b.variant.Size }

// Variant returns the geometry the board was built for.
func (b *Board) Variant() Variant { return b.variant }

// Rules returns the rule set Apply follows.
func (b *Board) Rules() RuleSet { return b.rules }

// InBounds reports whether (row, col) is on the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.variant.Size && col >= 0 && col < b.variant.Size
}

// PieceAt returns the content of (row, col).
func (b *Board) PieceAt(row, col int) (types.Cell, error) {
	if !b.InBounds(row, col) {
		return types.EmptyCell, &OutOfBoundsError{Row: row, Col: col, Size: b.variant.Size}
	}
	return b.cells[row][col], nil
}

// at is PieceAt for callers that already checked bounds.
func (b *Board) at(row, col int) types.Cell {
	return b.cells[row][col]
}

// Put places c on (row, col). Used to build positions.
func (b *Board) Put(row, col int, c types.Cell) error {
	if !b.InBounds(row, col) {
		return &OutOfBoundsError{Row: row, Col: col, Size: b.variant.Size}
	}
	b.cells[row][col] = c
	return nil
}

// Apply relocates the piece of m without checking legality. Depending on the
// rule set the jumped piece is removed and a man reaching the far row is crowned.
func (b *Board) Apply(m types.Move) error {
	if !b.InBounds(m.FromRow, m.FromCol) {
		return &OutOfBoundsError{Row: m.FromRow, Col: m.FromCol, Size: b.variant.Size}
	}
	if !b.InBounds(m.ToRow, m.ToCol) {
		return &OutOfBoundsError{Row: m.ToRow, Col: m.ToCol, Size: b.variant.Size}
	}

	piece := b.cells[m.FromRow][m.FromCol]
	b.cells[m.ToRow][m.ToCol] = piece
	b.cells[m.FromRow][m.FromCol] = types.EmptyCell

	if b.rules.CaptureJumped && m.IsJump() {
		mid := m.Jumped()
		b.cells[mid.Row][mid.Col] = types.EmptyCell
	}
	if b.rules.PromoteKings && piece.Kind == types.Man && m.ToRow == b.farRow(piece.Owner) {
		b.cells[m.ToRow][m.ToCol] = piece.Promoted()
	}
	return nil
}

// farRow is the row where p's men are crowned.
func (b *Board) farRow(p types.Player) int {
	if p == types.Red {
		return 0
	}
	return b.variant.Size - 1
}

// Count returns how many men and kings p has on the board.
func (b *Board) Count(p types.Player) (men, kings int) {
	for _, row := range b.cells {
		for _, c := range row {
			if !c.BelongsTo(p) {
				continue
			}
			if c.IsKing() {
				kings++
			} else {
				men++
			}
		}
	}
	return men, kings
}

// Grid returns a copy of the cells.
func (b *Board) Grid() [][]types.Cell {
	out := make([][]types.Cell, len(b.cells))
	for i, row := range b.cells {
		out[i] = append([]types.Cell(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{variant: b.variant, rules: b.rules, cells: b.Grid()}
}

// String renders the board one row per line, for logs and test failures.
func (b *Board) String() string {
	s := ""
	for _, row := range b.cells {
		for _, c := range row {
			s += c.String()
		}
		s += "\n"
	}
	return s
}
