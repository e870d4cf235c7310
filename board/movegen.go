package board

import "checkers-local/types"

// Scan order of the four diagonals: down-right, up-right, down-left, up-left.
var directions = []struct{ dr, dc int }{
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
}

// LegalMoves returns every legal move for p in row-major, fixed-direction
// order. If any jump exists only jumps are returned. Nil means p cannot move.
func LegalMoves(b *Board, p types.Player) []types.Move {
	if p != types.Red && p != types.Black {
		return nil
	}
	var moves []types.Move
	n := b.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			moves = append(moves, jumpsFrom(b, p, row, col)...)
		}
	}
	if len(moves) > 0 {
		return moves
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !b.at(row, col).BelongsTo(p) {
				continue
			}
			for _, d := range directions {
				if canStep(b, p, row, col, row+d.dr, col+d.dc) {
					moves = append(moves, types.NewMove(row, col, row+d.dr, col+d.dc))
				}
			}
		}
	}
	return moves
}

// LegalJumpsFrom returns the jumps p can make with the piece on (row, col).
// Nil when there are none or the square does not hold one of p's pieces.
func LegalJumpsFrom(b *Board, p types.Player, row, col int) []types.Move {
	if (p != types.Red && p != types.Black) || !b.InBounds(row, col) {
		return nil
	}
	return jumpsFrom(b, p, row, col)
}

func jumpsFrom(b *Board, p types.Player, row, col int) []types.Move {
	if !b.at(row, col).BelongsTo(p) {
		return nil
	}
	var moves []types.Move
	for _, d := range directions {
		if canJump(b, p, row, col, row+d.dr, col+d.dc, row+2*d.dr, col+2*d.dc) {
			moves = append(moves, types.NewMove(row, col, row+2*d.dr, col+2*d.dc))
		}
	}
	return moves
}

// canJump checks a jump of p's piece on (r1, c1) over (r2, c2) to (r3, c3).
func canJump(b *Board, p types.Player, r1, c1, r2, c2, r3, c3 int) bool {
	if !b.InBounds(r3, c3) || !b.at(r3, c3).IsEmpty() {
		return false
	}
	if !allowedDirection(b.at(r1, c1), p, r3-r1) {
		return false
	}
	return b.at(r2, c2).BelongsTo(p.Opponent())
}

// canStep checks a one-square move of p's piece on (r1, c1) to (r2, c2).
func canStep(b *Board, p types.Player, r1, c1, r2, c2 int) bool {
	if !b.InBounds(r2, c2) || !b.at(r2, c2).IsEmpty() {
		return false
	}
	return allowedDirection(b.at(r1, c1), p, r2-r1)
}

// allowedDirection: kings go anywhere, men only forward.
func allowedDirection(c types.Cell, p types.Player, dRow int) bool {
	if c.IsKing() {
		return true
	}
	return dRow*p.Forward() > 0
}

// SameOrigin reports whether every move starts on the same square.
// False for an empty list.
func SameOrigin(moves []types.Move) bool {
	if len(moves) == 0 {
		return false
	}
	for _, m := range moves[1:] {
		if m.From() != moves[0].From() {
			return false
		}
	}
	return true
}

// HasOrigin reports whether pos starts any of moves.
func HasOrigin(moves []types.Move, pos types.BoardPos) bool {
	for _, m := range moves {
		if m.From() == pos {
			return true
		}
	}
	return false
}

// Destinations returns the moves starting on from.
func Destinations(moves []types.Move, from types.BoardPos) []types.Move {
	var out []types.Move
	for _, m := range moves {
		if m.From() == from {
			out = append(out, m)
		}
	}
	return out
}
