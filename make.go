package chess

// undoRecord carries everything Undo needs to exactly reverse one Make:
// the resolved move plus a snapshot of every scalar piece of state as it
// was immediately before the move.
type undoRecord struct {
	move internalMove

	castling       CastlingRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int
}

// resolveInternalMove classifies mv against the current position: normal,
// capture, en-passant capture, en-passant move (double push), castle-K/Q,
// with promotion layered on top when the destination is the last rank.
func resolveInternalMove(pos *Position, mv Move) (internalMove, error) {
	moving, err := pos.Get(mv.From)
	if err != nil {
		return internalMove{}, err
	}
	if moving.IsEmpty() {
		return internalMove{}, &InvalidMoveError{From: mv.From, To: mv.To}
	}

	im := internalMove{Move: mv, MovingPiece: moving, CapturedSquare: NoSquare}

	delta := int(mv.To - mv.From)
	if moving.Kind == King && delta == 2 {
		im.Kind = MoveCastleKingside
		return im, nil
	}
	if moving.Kind == King && delta == -2 {
		im.Kind = MoveCastleQueenside
		return im, nil
	}

	target, _ := pos.Get(mv.To)
	isEnPassant := moving.Kind == Pawn && pos.enPassant != NoSquare && mv.To == pos.enPassant

	switch {
	case isEnPassant:
		im.Kind = MoveEnPassantCapture
		if moving.Color == White {
			im.CapturedSquare = mv.To + 16
		} else {
			im.CapturedSquare = mv.To - 16
		}
		im.CapturedPiece, _ = pos.Get(im.CapturedSquare)
	case !target.IsEmpty():
		if target.Color == moving.Color {
			return internalMove{}, ErrIllegalCapture
		}
		im.Kind = MoveCapture
		im.CapturedPiece = target
		im.CapturedSquare = mv.To
	case moving.Kind == Pawn && absInt(delta) == 32:
		im.Kind = MoveEnPassantMove
	default:
		im.Kind = MoveNormal
	}

	if moving.Kind == Pawn && mv.To.Rank() == promotionRank(moving.Color) {
		if mv.Promotion == NoPieceKind {
			return internalMove{}, ErrInvalidPromotion
		}
	} else if mv.Promotion != NoPieceKind {
		return internalMove{}, ErrInvalidPromotion
	}

	return im, nil
}

// Make applies mv to pos: updates the board, king registry, castling
// rights, en passant target, clocks, side to move, and repetition ledger,
// and records an undo entry. A rejected move leaves state unchanged.
func (pos *Position) Make(mv Move) error {
	im, err := resolveInternalMove(pos, mv)
	if err != nil {
		return err
	}

	rec := undoRecord{
		move:           im,
		castling:       pos.castling,
		enPassant:      pos.enPassant,
		halfmoveClock:  pos.halfmoveClock,
		fullmoveNumber: pos.fullmoveNumber,
	}

	switch im.Kind {
	case MoveCastleKingside, MoveCastleQueenside:
		pos.applyCastle(im)
	default:
		if !im.CapturedPiece.IsEmpty() {
			pos.Remove(im.CapturedSquare)
		}
		pos.Remove(im.From)
		placed := im.MovingPiece
		if mv.Promotion != NoPieceKind {
			placed = Piece{Kind: mv.Promotion, Color: im.MovingPiece.Color}
		}
		pos.Set(im.To, placed)
	}

	pos.updateCastlingRights(im)

	if im.Kind == MoveEnPassantMove {
		if im.MovingPiece.Color == White {
			pos.enPassant = im.To + 16
		} else {
			pos.enPassant = im.To - 16
		}
	} else {
		pos.enPassant = NoSquare
	}

	if im.MovingPiece.Kind == Pawn || !im.CapturedPiece.IsEmpty() {
		pos.halfmoveClock = 0
	} else {
		pos.halfmoveClock++
	}

	if pos.turn == Black {
		pos.fullmoveNumber++
	}

	pos.turn = pos.turn.Opposite()
	pos.history = append(pos.history, rec)
	pos.repetitions[pos.fingerprint()]++

	return nil
}

func (pos *Position) applyCastle(im internalMove) {
	pos.Remove(im.From)
	pos.Set(im.To, im.MovingPiece)

	var rookFrom, rookTo Square
	if im.Kind == MoveCastleKingside {
		rookFrom, rookTo = im.From+3, im.From+1
	} else {
		rookFrom, rookTo = im.From-4, im.From-1
	}
	rook, _ := pos.Get(rookFrom)
	pos.Remove(rookFrom)
	pos.Set(rookTo, rook)
}

func (pos *Position) undoCastle(im internalMove) {
	pos.Remove(im.To)
	pos.Set(im.From, im.MovingPiece)

	var rookFrom, rookTo Square
	if im.Kind == MoveCastleKingside {
		rookFrom, rookTo = im.From+3, im.From+1
	} else {
		rookFrom, rookTo = im.From-4, im.From-1
	}
	rook, _ := pos.Get(rookTo)
	pos.Remove(rookTo)
	pos.Set(rookFrom, rook)
}

// updateCastlingRights drops rights when a king moves, or when a rook
// leaves or is captured on its home square. Checks run king-square first,
// then rook-home-corner.
func (pos *Position) updateCastlingRights(im internalMove) {
	if im.MovingPiece.Kind == King {
		if im.MovingPiece.Color == White {
			pos.castling.WhiteKingside = false
			pos.castling.WhiteQueenside = false
		} else {
			pos.castling.BlackKingside = false
			pos.castling.BlackQueenside = false
		}
	}
	if im.MovingPiece.Kind == Rook {
		pos.clearRightsForRookSquare(im.From)
	}
	if im.CapturedPiece.Kind == Rook {
		pos.clearRightsForRookSquare(im.CapturedSquare)
	}
}

func (pos *Position) clearRightsForRookSquare(sq Square) {
	switch sq {
	case NewSquare(0, 1):
		pos.castling.WhiteQueenside = false
	case NewSquare(7, 1):
		pos.castling.WhiteKingside = false
	case NewSquare(0, 8):
		pos.castling.BlackQueenside = false
	case NewSquare(7, 8):
		pos.castling.BlackKingside = false
	}
}

// Undo reverses the most recently applied move.
func (pos *Position) Undo() error {
	if len(pos.history) == 0 {
		return ErrNoMoveToUndo
	}
	rec := pos.history[len(pos.history)-1]
	pos.history = pos.history[:len(pos.history)-1]

	if fp := pos.fingerprint(); pos.repetitions[fp] <= 1 {
		delete(pos.repetitions, fp)
	} else {
		pos.repetitions[fp]--
	}

	pos.turn = pos.turn.Opposite()

	im := rec.move
	switch im.Kind {
	case MoveCastleKingside, MoveCastleQueenside:
		pos.undoCastle(im)
	default:
		pos.Remove(im.To)
		pos.Set(im.From, im.MovingPiece)
		if !im.CapturedPiece.IsEmpty() {
			pos.Set(im.CapturedSquare, im.CapturedPiece)
		}
	}

	pos.castling = rec.castling
	pos.enPassant = rec.enPassant
	pos.halfmoveClock = rec.halfmoveClock
	pos.fullmoveNumber = rec.fullmoveNumber

	return nil
}
