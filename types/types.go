// Package types contains shared data structures for checkers-local.
package types

import "fmt"

// Player is one of the two sides. Red moves first and travels up the board
// (row numbers decrease); Black travels down.
type Player int

const (
	NoPlayer Player = iota
	Red
	Black
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Black
	case Black:
		return Red
	default:
		return NoPlayer
	}
}

// Forward is the row delta of a non-king step for this player.
func (p Player) Forward() int {
	if p == Red {
		return -1
	}
	return 1
}

// String returns "Red", "Black" or "None".
func (p Player) String() string {
	switch p {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Kind distinguishes the variants a cell can hold.
type Kind int

const (
	Empty Kind = iota
	Man
	King
)

// Cell is the content of one board square: Empty, Man(owner) or King(owner).
type Cell struct {
	Kind  Kind
	Owner Player
}

// EmptyCell is the zero Cell.
var EmptyCell = Cell{}

// ManOf returns an uncrowned piece belonging to p.
func ManOf(p Player) Cell { return Cell{Kind: Man, Owner: p} }

// KingOf returns a crowned piece belonging to p.
func KingOf(p Player) Cell { return Cell{Kind: King, Owner: p} }

// IsEmpty reports whether no piece stands on the cell.
func (c Cell) IsEmpty() bool { return c.Kind == Empty }

// IsKing reports whether the cell holds a crowned piece.
func (c Cell) IsKing() bool { return c.Kind == King }

// BelongsTo reports whether the cell holds a man or king of p.
func (c Cell) BelongsTo(p Player) bool {
	return c.Kind != Empty && c.Owner == p
}

// Promoted returns the crowned version of a man; other cells are returned unchanged.
func (c Cell) Promoted() Cell {
	if c.Kind == Man {
		return KingOf(c.Owner)
	}
	return c
}

// String renders the cell as ".", "r", "b", "R" or "B".
func (c Cell) String() string {
	switch c.Kind {
	case Empty:
		return "."
	case Man:
		if c.Owner == Red {
			return "r"
		}
		return "b"
	case King:
		if c.Owner == Red {
			return "R"
		}
		return "B"
	default:
		panic(fmt.Sprintf("invalid cell kind: %d", c.Kind))
	}
}

// BoardPos represents a square on the board.
type BoardPos struct {
	Row int
	Col int
}

// Move is a piece relocation. It is not validated on construction;
// legality is decided by the move generator.
type Move struct {
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
}

// NewMove creates a move from (r1, c1) to (r2, c2).
func NewMove(r1, c1, r2, c2 int) Move {
	return Move{FromRow: r1, FromCol: c1, ToRow: r2, ToCol: c2}
}

// IsJump reports whether the move covers two rows.
func (m Move) IsJump() bool {
	d := m.FromRow - m.ToRow
	return d == 2 || d == -2
}

// From returns the origin square.
func (m Move) From() BoardPos { return BoardPos{Row: m.FromRow, Col: m.FromCol} }

// To returns the destination square.
func (m Move) To() BoardPos { return BoardPos{Row: m.ToRow, Col: m.ToCol} }

// Jumped returns the square between origin and destination. Only meaningful for jumps.
func (m Move) Jumped() BoardPos {
	return BoardPos{Row: (m.FromRow + m.ToRow) / 2, Col: (m.FromCol + m.ToCol) / 2}
}

// String renders the move as "(r1,c1)->(r2,c2)".
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.FromRow, m.FromCol, m.ToRow, m.ToCol)
}
