package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckmateScenario(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFEN("7k/3R4/3p2Q1/6Q1/2N1N3/8/8/3R3K w - - 0 1"))

	san, err := e.MovePiece("Rd8")
	require.NoError(t, err)
	require.Equal(t, "Rd8#", san)
	require.True(t, e.IsCheckmate())
	require.Equal(t, "3R3k/8/3p2Q1/6Q1/2N1N3/8/8/3R3K b - - 1 1", e.FEN())
}

func TestStalemateScenario(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
	require.True(t, e.IsStalemate())
	require.False(t, e.IsCheckmate())
	require.True(t, e.IsDraw())
}

func TestThreefoldRepetitionScenario(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFEN(InitialFEN))

	moves := []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"}
	for _, m := range moves {
		_, err := e.MovePiece(m)
		require.NoError(t, err)
	}
	require.True(t, e.IsThreefoldRepetition())

	_, err := e.MovePiece("e4")
	require.NoError(t, err)
	require.False(t, e.IsThreefoldRepetition())
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFEN("7k/8/8/8/8/8/8/7K w - - 0 1"))
	require.True(t, e.IsInsufficientMaterials())
}

func TestInsufficientMaterialKnightVsKing(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFEN("7k/8/8/8/8/8/8/3NK3 w - - 0 1"))
	require.True(t, e.IsInsufficientMaterials())
}

func TestTwoKnightsIsNotInsufficientMaterial(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFEN("7k/8/8/8/8/8/8/2NNK3 w - - 0 1"))
	require.False(t, e.IsInsufficientMaterials())
}

func TestSameColorBishopsIsInsufficientMaterial(t *testing.T) {
	e := New()
	// White bishop on c1 (dark), black bishop on f8 (dark) - same color complex.
	require.NoError(t, e.LoadFEN("5b1k/8/8/8/8/8/8/2B1K3 w - - 0 1"))
	require.True(t, e.IsInsufficientMaterials())
}

func TestOppositeColorBishopsIsNotInsufficientMaterial(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFEN("6b1/7k/8/8/8/8/8/2B1K3 w - - 0 1"))
	require.False(t, e.IsInsufficientMaterials())
}

func TestFiftyMoveRule(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFEN("7k/8/8/8/8/8/8/7K w - - 99 50"))
	_, err := e.MovePiece("Kg1")
	require.NoError(t, err)
	require.True(t, e.Is50MovesRule())
	require.True(t, e.IsDraw())
}
