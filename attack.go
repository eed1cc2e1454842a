package chess

// isAttacked reports whether target is attacked by any piece of byColor on
// board. It is a pure function: it never mutates board.
func isAttacked(board *Board, target Square, byColor Color) bool {
	for sq := Square(0); sq < 120; sq++ {
		if !sq.OnBoard() {
			continue
		}
		p := board.squares[sq]
		if p.IsEmpty() || p.Color != byColor {
			continue
		}

		idx := offsetIndex(sq, target)
		mask := attackTable[idx]
		if mask == 0 {
			continue
		}

		switch p.Kind {
		case Knight:
			if mask&attackKnight != 0 {
				return true
			}
		case King:
			if mask&attackKing != 0 {
				return true
			}
		case Pawn:
			want := attackWhitePawn
			if byColor == Black {
				want = attackBlackPawn
			}
			if mask&want != 0 {
				return true
			}
		case Bishop, Rook, Queen:
			need := attackMask(0)
			if p.Kind == Bishop || p.Kind == Queen {
				need |= attackBishop
			}
			if p.Kind == Rook || p.Kind == Queen {
				need |= attackRook
			}
			if mask&need == 0 {
				continue
			}
			if rayClear(board, sq, target, int(deltaTable[idx])) {
				return true
			}
		}
	}
	return false
}

// rayClear reports whether every square strictly between from and to along
// delta is empty.
func rayClear(board *Board, from, to Square, delta int) bool {
	for step := from + Square(delta); step != to; step += Square(delta) {
		if !board.squares[step].IsEmpty() {
			return false
		}
	}
	return true
}
