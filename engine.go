package chess

// Engine is the library's external surface: one Position plus the
// SAN-facing operations a caller drives a single game through.
type Engine struct {
	pos *Position
}

// New returns an Engine with an empty board, White to move, and full
// castling rights flagged but no kings placed.
func New() *Engine {
	return &Engine{pos: NewPosition()}
}

// LoadFEN replaces the engine's state from fen, resetting history and the
// repetition ledger.
func (e *Engine) LoadFEN(fen string) error {
	pos, err := LoadFEN(fen)
	if err != nil {
		return err
	}
	e.pos = pos
	return nil
}

// FEN serializes the current state.
func (e *Engine) FEN() string {
	return e.pos.FEN()
}

// Get returns the piece on sq.
func (e *Engine) Get(sq Square) (Piece, error) {
	return e.pos.Get(sq)
}

// Set places p on sq, updating the king registry if p is a king.
func (e *Engine) Set(sq Square, p Piece) error {
	return e.pos.Set(sq, p)
}

// Remove clears sq.
func (e *Engine) Remove(sq Square) error {
	return e.pos.Remove(sq)
}

// SetTurn changes the side to move.
func (e *Engine) SetTurn(c Color) {
	e.pos.SetTurn(c)
}

// Moves returns every legal move of the piece on sq, as SAN.
func (e *Engine) Moves(sq Square) ([]string, error) {
	p, err := e.pos.Get(sq)
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, nil
	}

	var out []string
	for _, mv := range e.pos.LegalMoves(sq) {
		s, err := e.sanFor(mv, false)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// MovePiece parses and applies a SAN move, returning the canonical SAN with
// +/# appended as appropriate.
func (e *Engine) MovePiece(san string) (string, error) {
	mv, err := e.pos.ParseSAN(san)
	if err != nil {
		return "", err
	}
	return e.sanFor(mv, true)
}

// sanFor formats mv as SAN including its check/checkmate suffix. When keep
// is false the move is undone before returning, leaving state unchanged
// (used by Moves, which only previews candidates).
func (e *Engine) sanFor(mv Move, keep bool) (string, error) {
	im, err := resolveInternalMove(e.pos, mv)
	if err != nil {
		return "", err
	}
	s := e.pos.formatSAN(mv, im)

	if err := e.pos.Make(mv); err != nil {
		return "", err
	}
	if e.pos.InCheck() {
		if len(e.pos.AllLegalMoves()) == 0 {
			s += "#"
		} else {
			s += "+"
		}
	}
	if !keep {
		e.pos.Undo()
	}
	return s, nil
}

// Undo reverses the last applied move.
func (e *Engine) Undo() error {
	return e.pos.Undo()
}

// InCheck reports whether the side to move is in check.
func (e *Engine) InCheck() bool { return e.pos.InCheck() }

// IsCheckmate reports whether the side to move is checkmated.
func (e *Engine) IsCheckmate() bool { return e.pos.IsCheckmate() }

// IsStalemate reports whether the side to move is stalemated.
func (e *Engine) IsStalemate() bool { return e.pos.IsStalemate() }

// IsThreefoldRepetition reports whether the current position has occurred
// three times.
func (e *Engine) IsThreefoldRepetition() bool { return e.pos.IsThreefoldRepetition() }

// Is50MovesRule reports whether the fifty-move rule applies.
func (e *Engine) Is50MovesRule() bool { return e.pos.Is50MoveRule() }

// IsInsufficientMaterials reports whether neither side has mating material.
func (e *Engine) IsInsufficientMaterials() bool { return e.pos.IsInsufficientMaterial() }

// IsDraw reports whether the game is drawn by any of the standard conditions.
func (e *Engine) IsDraw() bool { return e.pos.IsDraw() }

// Perft counts leaves of the legal move tree at depth.
func (e *Engine) Perft(depth int) uint64 { return Perft(e.pos, depth) }
