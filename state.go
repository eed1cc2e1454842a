package chess

// InCheck reports whether the side to move is in check.
func (pos *Position) InCheck() bool {
	return pos.IsAttacked(pos.King(pos.turn), pos.turn.Opposite())
}

// IsCheckmate reports whether the side to move is checkmated.
func (pos *Position) IsCheckmate() bool {
	return pos.InCheck() && len(pos.AllLegalMoves()) == 0
}

// IsStalemate reports whether the side to move is stalemated.
func (pos *Position) IsStalemate() bool {
	return !pos.InCheck() && len(pos.AllLegalMoves()) == 0
}

// IsThreefoldRepetition reports whether the current position's fingerprint
// has occurred at least three times.
func (pos *Position) IsThreefoldRepetition() bool {
	return pos.repetitions[pos.fingerprint()] >= 3
}

// Is50MoveRule reports whether the half-move clock has reached 100
// (50 full moves by each side without a pawn move or capture).
func (pos *Position) Is50MoveRule() bool {
	return pos.halfmoveClock >= 100
}

type materialCount struct {
	minors      int
	lightBishop bool
	darkBishop  bool
	other       bool
}

func squareIsLight(sq Square) bool {
	return (sq.File()+sq.Rank())%2 == 0
}

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate: K vs K, K+N vs K, K+B vs K, or K+B vs K+B with both
// bishops on same-colored squares. Two knights vs a lone king is reported
// as non-draw.
func (pos *Position) IsInsufficientMaterial() bool {
	var counts [2]materialCount
	for sq := Square(0); sq < 120; sq++ {
		if !sq.OnBoard() {
			continue
		}
		p, _ := pos.Get(sq)
		if p.IsEmpty() || p.Kind == King {
			continue
		}
		c := &counts[p.Color]
		switch p.Kind {
		case Pawn, Rook, Queen:
			c.other = true
		case Knight:
			c.minors++
		case Bishop:
			c.minors++
			if squareIsLight(sq) {
				c.lightBishop = true
			} else {
				c.darkBishop = true
			}
		}
	}

	if counts[White].other || counts[Black].other {
		return false
	}

	total := counts[White].minors + counts[Black].minors
	if total <= 1 {
		return true
	}
	if counts[White].minors == 1 && counts[Black].minors == 1 {
		whiteBishop := counts[White].lightBishop || counts[White].darkBishop
		blackBishop := counts[Black].lightBishop || counts[Black].darkBishop
		if whiteBishop && blackBishop {
			return (counts[White].lightBishop && counts[Black].lightBishop) ||
				(counts[White].darkBishop && counts[Black].darkBishop)
		}
	}
	return false
}

// IsDraw reports whether the game is drawn by stalemate, threefold
// repetition, the fifty-move rule, or insufficient material.
func (pos *Position) IsDraw() bool {
	return pos.IsStalemate() || pos.IsThreefoldRepetition() ||
		pos.Is50MoveRule() || pos.IsInsufficientMaterial()
}
