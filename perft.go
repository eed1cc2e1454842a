package chess

// Perft counts the leaf nodes of the legal move tree rooted at pos, to the
// given depth. It is pure: Make/Undo are applied symmetrically, so pos is
// unchanged when Perft returns.
func Perft(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, mv := range moves {
		if err := pos.Make(mv); err != nil {
			continue
		}
		nodes += Perft(pos, depth-1)
		pos.Undo()
	}
	return nodes
}
