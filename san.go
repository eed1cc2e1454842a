package chess

import (
	"fmt"
	"regexp"
	"strings"
)

var sanPattern = regexp.MustCompile(`^([KQRBN])?([a-h])?([1-8])?(x)?([a-h])([1-8])(=[KQRBN])?$`)

func kindFromLetter(l string) PieceKind {
	switch l {
	case "N":
		return Knight
	case "B":
		return Bishop
	case "R":
		return Rook
	case "Q":
		return Queen
	case "K":
		return King
	}
	return Pawn
}

// ParseSAN resolves a SAN move string against the side to move.
func (pos *Position) ParseSAN(san string) (Move, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(san), "+#")

	if trimmed == "O-O" || trimmed == "0-0" {
		return pos.castlingMove(false)
	}
	if trimmed == "O-O-O" || trimmed == "0-0-0" {
		return pos.castlingMove(true)
	}

	m := sanPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Move{}, &InvalidMoveError{From: NoSquare, To: NoSquare}
	}

	kind := kindFromLetter(m[1])
	disFile, disRank := m[2], m[3]
	isCapture := m[4] == "x"
	toSq, err := ParseSquare(m[5] + m[6])
	if err != nil {
		return Move{}, err
	}
	var promo PieceKind
	if m[7] != "" {
		promo = kindFromLetter(strings.TrimPrefix(m[7], "="))
	}

	var matches []Move
	for _, mv := range pos.AllLegalMoves() {
		p, _ := pos.Get(mv.From)
		if p.Kind != kind || mv.To != toSq {
			continue
		}
		if mv.Promotion != promo {
			continue
		}
		if disFile != "" && mv.From.File() != int(disFile[0]-'a') {
			continue
		}
		if disRank != "" && mv.From.Rank() != int(disRank[0]-'0') {
			continue
		}
		target, _ := pos.Get(mv.To)
		isActuallyCapture := !target.IsEmpty() || (p.Kind == Pawn && mv.To == pos.enPassant)
		if isCapture != isActuallyCapture {
			continue
		}
		matches = append(matches, mv)
	}

	if len(matches) == 0 {
		return Move{}, &InvalidMoveError{From: NoSquare, To: toSq}
	}
	if len(matches) > 1 {
		return Move{}, ErrAmbiguousMoveNotation
	}
	return matches[0], nil
}

func (pos *Position) castlingMove(queenside bool) (Move, error) {
	kingSq := pos.King(pos.turn)
	if kingSq == NoSquare {
		return Move{}, &InvalidMoveError{From: NoSquare, To: NoSquare}
	}
	to := kingSq + 2
	if queenside {
		to = kingSq - 2
	}
	for _, mv := range pos.LegalMoves(kingSq) {
		if mv.To == to {
			return mv, nil
		}
	}
	if queenside {
		return Move{}, ErrIllegalQueenSideCastle
	}
	return Move{}, ErrIllegalKingSideCastle
}

// formatSAN renders mv (already resolved as im) as SAN, without a trailing
// check/checkmate suffix — callers append that based on the post-move
// position.
func (pos *Position) formatSAN(mv Move, im internalMove) string {
	if im.Kind == MoveCastleKingside {
		return "O-O"
	}
	if im.Kind == MoveCastleQueenside {
		return "O-O-O"
	}

	var sb strings.Builder
	isCapture := !im.CapturedPiece.IsEmpty()

	if im.MovingPiece.Kind != Pawn {
		sb.WriteString(im.MovingPiece.Kind.String())
		sb.WriteString(pos.disambiguation(mv, im))
	} else if isCapture {
		sb.WriteByte(byte('a' + mv.From.File()))
	}

	if isCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(mv.To.String())

	if mv.Promotion != NoPieceKind {
		sb.WriteByte('=')
		sb.WriteString(mv.Promotion.String())
	}

	return sb.String()
}

// disambiguation returns the minimum file/rank/full-square prefix needed to
// distinguish mv from other legal moves of the same piece kind to the same
// destination.
func (pos *Position) disambiguation(mv Move, im internalMove) string {
	sameFile, sameRank, needDis := false, false, false
	for _, other := range pos.AllLegalMoves() {
		if other.From == mv.From || other.To != mv.To {
			continue
		}
		p, _ := pos.Get(other.From)
		if p.Kind != im.MovingPiece.Kind {
			continue
		}
		needDis = true
		if other.From.File() == mv.From.File() {
			sameFile = true
		}
		if other.From.Rank() == mv.From.Rank() {
			sameRank = true
		}
	}
	if !needDis {
		return ""
	}
	switch {
	case !sameFile:
		return string(rune('a' + mv.From.File()))
	case !sameRank:
		return fmt.Sprintf("%d", mv.From.Rank())
	default:
		return mv.From.String()
	}
}
