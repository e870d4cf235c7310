package types

import "fmt"

// Square notation:
// - Columns: a, b, c ... from the left
// - Rows: 1 .. size from the bottom of the board (Red's side)
// - Example: on 8x8 the internal square (7, 0) is a1, (0, 7) is h8

// SquareName converts internal coordinates (0-indexed, top-left origin) to notation.
func SquareName(pos BoardPos, size int) string {
	if pos.Row < 0 || pos.Row >= size || pos.Col < 0 || pos.Col >= size {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+rune(pos.Col), size-pos.Row)
}

// MoveName renders a move as "c3-d4", or "c3xe5" for a jump.
func MoveName(m Move, size int) string {
	sep := "-"
	if m.IsJump() {
		sep = "x"
	}
	return SquareName(m.From(), size) + sep + SquareName(m.To(), size)
}
