package chess

// CastlingRights tracks whether each side may still castle to each wing.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

func (r CastlingRights) String() string {
	s := ""
	if r.WhiteKingside {
		s += "K"
	}
	if r.WhiteQueenside {
		s += "Q"
	}
	if r.BlackKingside {
		s += "k"
	}
	if r.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Position holds the full mutable state of a chess game: piece placement,
// side to move, castling rights, en passant target, move clocks, king
// locations, the undo history, and the repetition ledger.
type Position struct {
	board Board

	turn Color

	castling CastlingRights

	enPassant Square

	halfmoveClock  int
	fullmoveNumber int

	kings [2]Square

	history []undoRecord

	repetitions map[string]int
}

// NewPosition returns an empty board with White to move and full castling
// rights flagged, but no kings placed. The caller must place pieces (via
// Set) or load a FEN before using movement operations.
func NewPosition() *Position {
	return &Position{
		turn:           White,
		castling:       CastlingRights{true, true, true, true},
		enPassant:      NoSquare,
		fullmoveNumber: 1,
		kings:          [2]Square{NoSquare, NoSquare},
		repetitions:    make(map[string]int),
	}
}

// Get returns the piece on sq.
func (pos *Position) Get(sq Square) (Piece, error) {
	return pos.board.Get(sq)
}

// Set places p on sq. Setting a king updates the king registry.
func (pos *Position) Set(sq Square, p Piece) error {
	if err := pos.board.Set(sq, p); err != nil {
		return err
	}
	if p.Kind == King {
		pos.kings[p.Color] = sq
	}
	return nil
}

// Remove clears sq. Removing a king clears its king-registry entry.
func (pos *Position) Remove(sq Square) error {
	p, err := pos.board.Get(sq)
	if err != nil {
		return err
	}
	if p.Kind == King && pos.kings[p.Color] == sq {
		pos.kings[p.Color] = NoSquare
	}
	return pos.board.Remove(sq)
}

// SetTurn changes the side to move.
func (pos *Position) SetTurn(c Color) {
	pos.turn = c
}

// Turn returns the side to move.
func (pos *Position) Turn() Color {
	return pos.turn
}

// King returns the square of c's king, or NoSquare if it has none.
func (pos *Position) King(c Color) Square {
	return pos.kings[c]
}

// IsAttacked reports whether sq is attacked by any piece of byColor.
func (pos *Position) IsAttacked(sq Square, byColor Color) bool {
	return isAttacked(&pos.board, sq, byColor)
}

func empty(pos *Position, sq Square) bool {
	p, _ := pos.Get(sq)
	return p.IsEmpty()
}
