package chess

// Board is a 128-slot mailbox indexed using the 0x88 scheme. Half of the
// slots are never on-board; the gaps are what make off-board detection a
// single bitwise test after any delta addition.
type Board struct {
	squares [128]Piece
}

// Get returns the piece on sq, or the zero Piece if sq is empty.
func (b *Board) Get(sq Square) (Piece, error) {
	if !sq.OnBoard() {
		return Piece{}, &InvalidIndexError{Index: int(sq)}
	}
	return b.squares[sq], nil
}

// Set places p on sq, overwriting whatever was there.
func (b *Board) Set(sq Square, p Piece) error {
	if !sq.OnBoard() {
		return &InvalidIndexError{Index: int(sq)}
	}
	b.squares[sq] = p
	return nil
}

// Remove clears sq.
func (b *Board) Remove(sq Square) error {
	if !sq.OnBoard() {
		return &InvalidIndexError{Index: int(sq)}
	}
	b.squares[sq] = Piece{}
	return nil
}
