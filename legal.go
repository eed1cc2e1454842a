package chess

// LegalMoves returns every legal move for the side-to-move piece on sq, by
// trial-applying each pseudo-legal candidate and rejecting those that leave
// the mover's own king attacked.
func (pos *Position) LegalMoves(sq Square) []Move {
	p, err := pos.Get(sq)
	if err != nil || p.IsEmpty() || p.Color != pos.turn {
		return nil
	}

	candidates := pseudoLegalMoves(pos, sq)
	legal := make([]Move, 0, len(candidates))
	mover := p.Color
	for _, mv := range candidates {
		if err := pos.Make(mv); err != nil {
			continue
		}
		inCheck := pos.IsAttacked(pos.King(mover), mover.Opposite())
		pos.Undo()
		if !inCheck {
			legal = append(legal, mv)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move available to the side to move.
func (pos *Position) AllLegalMoves() []Move {
	var all []Move
	for sq := Square(0); sq < 120; sq++ {
		if !sq.OnBoard() {
			continue
		}
		p, _ := pos.Get(sq)
		if p.IsEmpty() || p.Color != pos.turn {
			continue
		}
		all = append(all, pos.LegalMoves(sq)...)
	}
	return all
}
