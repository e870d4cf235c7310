package board

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers-local/types"
)

func TestOpeningMoves(t *testing.T) {
	b := New(Checkers, DefaultRules)

	red := LegalMoves(b, types.Red)
	require.Len(t, red, 7)
	// row-major, then up-right before up-left
	assert.Equal(t, types.NewMove(5, 1, 4, 2), red[0])
	assert.Equal(t, types.NewMove(5, 1, 4, 0), red[1])
	for _, m := range red {
		assert.False(t, m.IsJump())
		assert.Equal(t, 5, m.FromRow)
		assert.Equal(t, 4, m.ToRow)
	}

	black := LegalMoves(b, types.Black)
	require.Len(t, black, 7)
	assert.Equal(t, types.NewMove(2, 0, 3, 1), black[0])
	for _, m := range black {
		assert.Equal(t, 3, m.ToRow)
	}
}

func TestForcedCapture(t *testing.T) {
	b := New(Checkers, DefaultRules)
	require.NoError(t, b.Apply(types.NewMove(5, 3, 4, 4)))
	require.NoError(t, b.Apply(types.NewMove(2, 2, 3, 3)))

	moves := LegalMoves(b, types.Red)
	require.Equal(t, []types.Move{types.NewMove(4, 4, 2, 2)}, moves)
	assert.True(t, moves[0].IsJump())
	assert.Equal(t, types.BoardPos{Row: 3, Col: 3}, moves[0].Jumped())
}

func TestJumpDirectionOrder(t *testing.T) {
	b := Empty(Checkers, DefaultRules)
	require.NoError(t, b.Put(3, 3, types.KingOf(types.Red)))
	for _, sq := range [][2]int{{4, 4}, {2, 4}, {4, 2}, {2, 2}} {
		require.NoError(t, b.Put(sq[0], sq[1], types.ManOf(types.Black)))
	}

	moves := LegalJumpsFrom(b, types.Red, 3, 3)
	assert.Equal(t, []types.Move{
		types.NewMove(3, 3, 5, 5),
		types.NewMove(3, 3, 1, 5),
		types.NewMove(3, 3, 5, 1),
		types.NewMove(3, 3, 1, 1),
	}, moves)
}

func TestMenOnlyMoveForward(t *testing.T) {
	b := Empty(Checkers, DefaultRules)
	require.NoError(t, b.Put(3, 3, types.ManOf(types.Red)))
	require.NoError(t, b.Put(4, 4, types.ManOf(types.Black)))

	// the black man behind the red man cannot be jumped backwards
	assert.Nil(t, LegalJumpsFrom(b, types.Red, 3, 3))
	moves := LegalMoves(b, types.Red)
	assert.Equal(t, []types.Move{types.NewMove(3, 3, 2, 4), types.NewMove(3, 3, 2, 2)}, moves)

	// the red man sits behind the black man too
	assert.Equal(t, []types.Move{types.NewMove(4, 4, 5, 5), types.NewMove(4, 4, 5, 3)}, LegalMoves(b, types.Black))
}

func TestLegalJumpsFrom(t *testing.T) {
	b := Empty(Gekitai, DefaultRules)
	require.NoError(t, b.Put(4, 4, types.ManOf(types.Red)))
	require.NoError(t, b.Put(3, 3, types.ManOf(types.Black)))
	require.NoError(t, b.Put(1, 1, types.KingOf(types.Black)))

	assert.Equal(t, []types.Move{types.NewMove(4, 4, 2, 2)}, LegalJumpsFrom(b, types.Red, 4, 4))
	assert.Nil(t, LegalJumpsFrom(b, types.Black, 4, 4), "square belongs to the opponent")
	assert.Nil(t, LegalJumpsFrom(b, types.Red, 0, 0), "empty square")
	assert.Nil(t, LegalJumpsFrom(b, types.Red, 9, 9), "off the board")
	assert.Nil(t, LegalJumpsFrom(b, types.NoPlayer, 4, 4))
}

func TestNoMoves(t *testing.T) {
	b := Empty(Checkers, DefaultRules)
	assert.Nil(t, LegalMoves(b, types.Red))

	// a red man on the top row without promotion has nowhere to go
	require.NoError(t, b.Put(0, 0, types.ManOf(types.Red)))
	assert.Nil(t, LegalMoves(b, types.Red))
	assert.Nil(t, LegalMoves(b, types.NoPlayer))
}

func TestBlockedPiece(t *testing.T) {
	b := Empty(Checkers, DefaultRules)
	require.NoError(t, b.Put(7, 1, types.ManOf(types.Red)))
	require.NoError(t, b.Put(6, 0, types.ManOf(types.Black)))
	require.NoError(t, b.Put(6, 2, types.ManOf(types.Black)))
	require.NoError(t, b.Put(5, 3, types.ManOf(types.Black)))
	// (6,0) cannot be jumped (off board), (6,2) lands on the occupied (5,3)
	assert.Nil(t, LegalMoves(b, types.Red))
}

func randomBoard(r *rand.Rand, v Variant) *Board {
	b := Empty(v, DefaultRules)
	cells := []types.Cell{
		types.EmptyCell, types.EmptyCell, types.EmptyCell,
		types.ManOf(types.Red), types.KingOf(types.Red),
		types.ManOf(types.Black), types.KingOf(types.Black),
	}
	for row := 0; row < v.Size; row++ {
		for col := 0; col < v.Size; col++ {
			if Playable(row, col) {
				b.cells[row][col] = cells[r.Intn(len(cells))]
			}
		}
	}
	return b
}

func TestLegalMovesProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v := Variants[i%len(Variants)]
		b := randomBoard(r, v)
		for _, p := range []types.Player{types.Red, types.Black} {
			moves := LegalMoves(b, p)
			if len(moves) == 0 {
				assert.Nil(t, moves)
				continue
			}
			jump := moves[0].IsJump()
			for _, m := range moves {
				require.Equal(t, jump, m.IsJump(), "mixed jumps and steps on\n%s%s", b, spew.Sdump(moves))

				origin, err := b.PieceAt(m.FromRow, m.FromCol)
				require.NoError(t, err)
				assert.True(t, origin.BelongsTo(p))

				dest, err := b.PieceAt(m.ToRow, m.ToCol)
				require.NoError(t, err)
				assert.True(t, dest.IsEmpty(), "destination of %v occupied", m)

				if !origin.IsKing() {
					assert.Equal(t, p.Forward(), sign(m.ToRow-m.FromRow), "man moved backwards: %v", m)
				}
				if m.IsJump() {
					mid, _ := b.PieceAt(m.Jumped().Row, m.Jumped().Col)
					assert.True(t, mid.BelongsTo(p.Opponent()))
				}
			}
			if !jump {
				for row := 0; row < v.Size; row++ {
					for col := 0; col < v.Size; col++ {
						assert.Nil(t, LegalJumpsFrom(b, p, row, col), "steps returned while a jump exists")
					}
				}
			}
		}
	}
}

func TestSameOrigin(t *testing.T) {
	assert.False(t, SameOrigin(nil))
	assert.True(t, SameOrigin([]types.Move{types.NewMove(1, 1, 2, 2), types.NewMove(1, 1, 2, 0)}))
	assert.False(t, SameOrigin([]types.Move{types.NewMove(1, 1, 2, 2), types.NewMove(1, 3, 2, 2)}))
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
