package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAttackedByRook(t *testing.T) {
	pos, err := LoadFEN("8/8/8/3R4/8/8/8/7k w - - 0 1")
	require.NoError(t, err)
	h5, _ := ParseSquare("h5")
	a1, _ := ParseSquare("a1")
	require.True(t, pos.IsAttacked(h5, White))
	require.False(t, pos.IsAttacked(a1, White))
}

func TestIsAttackedBlockedBySlider(t *testing.T) {
	pos, err := LoadFEN("8/8/8/3R2p1/8/8/8/7k w - - 0 1")
	require.NoError(t, err)
	h5, _ := ParseSquare("h5")
	require.False(t, pos.IsAttacked(h5, White), "pawn on g5 should block the rook's ray")
}

func TestIsAttackedByPawnDirection(t *testing.T) {
	// White pawn on e4 attacks d5 and f5, not e5.
	pos, err := LoadFEN("8/8/8/8/4P3/8/8/k6K w - - 0 1")
	require.NoError(t, err)
	d5, _ := ParseSquare("d5")
	f5, _ := ParseSquare("f5")
	e5, _ := ParseSquare("e5")
	require.True(t, pos.IsAttacked(d5, White))
	require.True(t, pos.IsAttacked(f5, White))
	require.False(t, pos.IsAttacked(e5, White))
}

func TestIsAttackedByKnight(t *testing.T) {
	pos, err := LoadFEN("8/8/8/3N4/8/8/8/7k w - - 0 1")
	require.NoError(t, err)
	e7, _ := ParseSquare("e7")
	require.True(t, pos.IsAttacked(e7, White))
}

func TestIsAttackedDoesNotMutate(t *testing.T) {
	pos, err := LoadFEN(InitialFEN)
	require.NoError(t, err)
	before := pos.FEN()
	e3, _ := ParseSquare("e3")
	pos.IsAttacked(e3, Black)
	require.Equal(t, before, pos.FEN())
}
