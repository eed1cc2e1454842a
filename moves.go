package chess

// Move is an external move: source square, destination square, and an
// optional promotion kind (required when a pawn move reaches the last rank).
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// MoveKind tags the side effects Make/Undo must apply for a move. A
// capturing promotion keeps Kind == MoveCapture; Promotion and
// CapturedPiece are independent fields checked directly by Make/Undo and by
// SAN formatting, regardless of Kind.
type MoveKind uint8

const (
	MoveNormal MoveKind = iota
	MoveCapture
	MoveEnPassantMove
	MoveEnPassantCapture
	MoveCastleKingside
	MoveCastleQueenside
)

// internalMove adds the bookkeeping Make/Undo need beyond the external Move.
type internalMove struct {
	Move
	Kind           MoveKind
	MovingPiece    Piece
	CapturedPiece  Piece
	CapturedSquare Square
}

// MoveList is a fixed-size buffer sized for the largest known branching
// factor in a legal chess position.
type MoveList struct {
	moves [218]Move
	n     int
}

func (l *MoveList) push(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Slice returns the moves accumulated so far.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

var (
	bishopDeltas = [4]int{-17, -15, 15, 17}
	rookDeltas   = [4]int{-16, -1, 1, 16}
	queenDeltas  = [8]int{-17, -15, 15, 17, -16, -1, 1, 16}
	knightDeltas = [8]int{-33, -31, -18, -14, 14, 18, 31, 33}
	kingDeltas   = [8]int{-17, -16, -15, -1, 1, 15, 16, 17}
)

// pseudoLegalMoves generates every pseudo-legal move for the piece on sq.
func pseudoLegalMoves(pos *Position, sq Square) []Move {
	p, err := pos.Get(sq)
	if err != nil || p.IsEmpty() {
		return nil
	}

	var list MoveList
	switch p.Kind {
	case Pawn:
		genPawn(pos, sq, p, &list)
	case Knight:
		genLeaper(pos, sq, p, knightDeltas[:], &list)
	case Bishop:
		genSliding(pos, sq, p, bishopDeltas[:], &list)
	case Rook:
		genSliding(pos, sq, p, rookDeltas[:], &list)
	case Queen:
		genSliding(pos, sq, p, queenDeltas[:], &list)
	case King:
		genLeaper(pos, sq, p, kingDeltas[:], &list)
		if p.Color == pos.turn {
			genCastling(pos, &list)
		}
	}
	return list.Slice()
}

func genSliding(pos *Position, sq Square, p Piece, deltas []int, list *MoveList) {
	for _, d := range deltas {
		for to := sq + Square(d); to.OnBoard(); to += Square(d) {
			target, _ := pos.Get(to)
			if target.IsEmpty() {
				list.push(Move{From: sq, To: to})
				continue
			}
			if target.Color != p.Color {
				list.push(Move{From: sq, To: to})
			}
			break
		}
	}
}

func genLeaper(pos *Position, sq Square, p Piece, deltas []int, list *MoveList) {
	for _, d := range deltas {
		to := sq + Square(d)
		if !to.OnBoard() {
			continue
		}
		target, _ := pos.Get(to)
		if target.IsEmpty() || target.Color != p.Color {
			list.push(Move{From: sq, To: to})
		}
	}
}

func promotionRank(c Color) int {
	if c == White {
		return 8
	}
	return 1
}

func pushPawnMove(list *MoveList, from, to Square, color Color) {
	if to.Rank() == promotionRank(color) {
		for _, promo := range [4]PieceKind{Queen, Rook, Bishop, Knight} {
			list.push(Move{From: from, To: to, Promotion: promo})
		}
		return
	}
	list.push(Move{From: from, To: to})
}

func genPawn(pos *Position, sq Square, p Piece, list *MoveList) {
	forward := stepUp
	startRank := 2
	if p.Color == Black {
		forward = stepDown
		startRank = 7
	}

	one := sq + Square(forward)
	if one.OnBoard() {
		if t, _ := pos.Get(one); t.IsEmpty() {
			pushPawnMove(list, sq, one, p.Color)
			if sq.Rank() == startRank {
				two := sq + Square(2*forward)
				if t2, _ := pos.Get(two); t2.IsEmpty() {
					list.push(Move{From: sq, To: two})
				}
			}
		}
	}

	for _, cd := range [2]int{forward - 1, forward + 1} {
		to := sq + Square(cd)
		if !to.OnBoard() {
			continue
		}
		if pos.enPassant != NoSquare && to == pos.enPassant {
			list.push(Move{From: sq, To: to})
			continue
		}
		t, _ := pos.Get(to)
		if !t.IsEmpty() && t.Color != p.Color {
			pushPawnMove(list, sq, to, p.Color)
		}
	}
}

// genCastling appends castling candidates for the side to move. Ordering of
// checks: rights, then occupancy, then safety.
func genCastling(pos *Position, list *MoveList) {
	color := pos.turn
	opp := color.Opposite()

	var kingSq Square
	var haveKingside, haveQueenside bool
	if color == White {
		kingSq = NewSquare(4, 1)
		haveKingside = pos.castling.WhiteKingside
		haveQueenside = pos.castling.WhiteQueenside
	} else {
		kingSq = NewSquare(4, 8)
		haveKingside = pos.castling.BlackKingside
		haveQueenside = pos.castling.BlackQueenside
	}
	if pos.kings[color] != kingSq {
		return
	}

	if haveKingside {
		f1, g1 := kingSq+1, kingSq+2
		if empty(pos, f1) && empty(pos, g1) &&
			!pos.IsAttacked(kingSq, opp) && !pos.IsAttacked(f1, opp) && !pos.IsAttacked(g1, opp) {
			list.push(Move{From: kingSq, To: g1})
		}
	}
	if haveQueenside {
		d1, c1, b1 := kingSq-1, kingSq-2, kingSq-3
		if empty(pos, d1) && empty(pos, c1) && empty(pos, b1) &&
			!pos.IsAttacked(kingSq, opp) && !pos.IsAttacked(d1, opp) && !pos.IsAttacked(c1, opp) {
			list.push(Move{From: kingSq, To: c1})
		}
	}
}
