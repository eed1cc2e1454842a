package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialFEN is the starting position of a standard chess game.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN serializes the current position as Forsyth-Edwards Notation.
func (pos *Position) FEN() string {
	var sb strings.Builder

	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p, _ := pos.Get(NewSquare(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.turn.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.enPassant.String())
	fmt.Fprintf(&sb, " %d %d", pos.halfmoveClock, pos.fullmoveNumber)

	return sb.String()
}

// fingerprint returns the position portion of the FEN (piece placement,
// side to move, castling rights, en passant target) used as the
// repetition-ledger key.
func (pos *Position) fingerprint() string {
	fen := pos.FEN()
	fields := strings.SplitN(fen, " ", 5)
	return strings.Join(fields[:4], " ")
}

// LoadFEN parses fen into a fresh Position. History and the repetition
// ledger are reset; the loaded position is counted once.
func LoadFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("chess: invalid FEN %q: need at least 4 fields", fen)
	}

	pos := &Position{
		enPassant:   NoSquare,
		kings:       [2]Square{NoSquare, NoSquare},
		repetitions: make(map[string]int),
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("chess: FEN must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 8 - i
		file := 0
		for _, r := range rankStr {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			piece, ok := pieceFromLetter(byte(r))
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownPiece, r)
			}
			if file >= 8 {
				return nil, fmt.Errorf("chess: rank %d has more than 8 files", rank)
			}
			if err := pos.Set(NewSquare(file, rank), piece); err != nil {
				return nil, err
			}
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("chess: rank %d does not sum to 8 files", rank)
		}
	}

	switch fields[1] {
	case "w":
		pos.turn = White
	case "b":
		pos.turn = Black
	default:
		return nil, fmt.Errorf("chess: invalid side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, r := range fields[2] {
			switch r {
			case 'K':
				pos.castling.WhiteKingside = true
			case 'Q':
				pos.castling.WhiteQueenside = true
			case 'k':
				pos.castling.BlackKingside = true
			case 'q':
				pos.castling.BlackQueenside = true
			default:
				return nil, fmt.Errorf("chess: invalid castling rights %q", fields[2])
			}
		}
	}
	if (pos.castling.WhiteKingside || pos.castling.WhiteQueenside) && pos.kings[White] == NoSquare {
		return nil, fmt.Errorf("chess: castling rights present without a white king")
	}
	if (pos.castling.BlackKingside || pos.castling.BlackQueenside) && pos.kings[Black] == NoSquare {
		return nil, fmt.Errorf("chess: castling rights present without a black king")
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, err
		}
		pos.enPassant = sq
	}

	pos.halfmoveClock = 0
	pos.fullmoveNumber = 1
	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			pos.halfmoveClock = v
		}
	}
	if len(fields) > 5 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			pos.fullmoveNumber = v
		}
	}

	pos.repetitions[pos.fingerprint()] = 1

	return pos, nil
}
