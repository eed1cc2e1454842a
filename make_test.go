package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustMove(t *testing.T, pos *Position, from, to string, promo PieceKind) Move {
	t.Helper()
	f, err := ParseSquare(from)
	require.NoError(t, err)
	to2, err := ParseSquare(to)
	require.NoError(t, err)
	return Move{From: f, To: to2, Promotion: promo}
}

func TestMakeUndoRoundTrip(t *testing.T) {
	pos, err := LoadFEN(InitialFEN)
	require.NoError(t, err)

	before := snapshot(pos)
	mv := mustMove(t, pos, "e2", "e4", NoPieceKind)
	require.NoError(t, pos.Make(mv))
	require.NotEqual(t, before, snapshot(pos))
	require.NoError(t, pos.Undo())

	after := snapshot(pos)
	if diff := cmp.Diff(before, after, cmp.AllowUnexported(posSnapshot{})); diff != "" {
		t.Fatalf("undo(make(s, m)) != s (-before +after):\n%s", diff)
	}
}

func TestUndoCastlingRestoresRook(t *testing.T) {
	pos, err := LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := snapshot(pos)

	mv := mustMove(t, pos, "e1", "g1", NoPieceKind)
	require.NoError(t, pos.Make(mv))
	require.NoError(t, pos.Undo())

	after := snapshot(pos)
	if diff := cmp.Diff(before, after, cmp.AllowUnexported(posSnapshot{})); diff != "" {
		t.Fatalf("undo(make(s, castle)) != s (-before +after):\n%s", diff)
	}
}

func TestCastlingMovesRook(t *testing.T) {
	pos, err := LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	mv := mustMove(t, pos, "e1", "g1", NoPieceKind)
	require.NoError(t, pos.Make(mv))

	g1, _ := ParseSquare("g1")
	f1, _ := ParseSquare("f1")
	e1, _ := ParseSquare("e1")
	h1, _ := ParseSquare("h1")

	k, _ := pos.Get(g1)
	require.Equal(t, King, k.Kind)
	r, _ := pos.Get(f1)
	require.Equal(t, Rook, r.Kind)
	require.True(t, empty(pos, e1))
	require.True(t, empty(pos, h1))
	require.False(t, pos.castling.WhiteKingside)
	require.False(t, pos.castling.WhiteQueenside)
}

func TestPromotion(t *testing.T) {
	pos, err := LoadFEN("8/P6k/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)
	mv := mustMove(t, pos, "a7", "a8", Queen)
	require.NoError(t, pos.Make(mv))
	a8, _ := ParseSquare("a8")
	p, _ := pos.Get(a8)
	require.Equal(t, Queen, p.Kind)
	require.Equal(t, White, p.Color)
}

func TestPromotionRequiresKind(t *testing.T) {
	pos, err := LoadFEN("8/P6k/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)
	mv := mustMove(t, pos, "a7", "a8", NoPieceKind)
	require.ErrorIs(t, pos.Make(mv), ErrInvalidPromotion)
}

func TestRookMoveDropsCastlingRight(t *testing.T) {
	pos, err := LoadFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	mv := mustMove(t, pos, "h1", "h2", NoPieceKind)
	require.NoError(t, pos.Make(mv))
	require.False(t, pos.castling.WhiteKingside)
	require.True(t, pos.castling.WhiteQueenside)
}

type posSnapshot struct {
	fen      string
	turn     Color
	castling CastlingRights
	ep       Square
	kings    [2]Square
}

func snapshot(pos *Position) posSnapshot {
	return posSnapshot{
		fen:      pos.FEN(),
		turn:     pos.turn,
		castling: pos.castling,
		ep:       pos.enPassant,
		kings:    pos.kings,
	}
}
