// Command chess88 is a small demonstration client for the chess package: it
// loads a position, optionally replays SAN moves, and either prints the
// resulting board or runs a perft count.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kschaper/chess88"
)

func main() {
	fen := flag.String("fen", chess.InitialFEN, "starting position in FEN")
	perftDepth := flag.Int("perft", 0, "if > 0, run perft to this depth instead of printing the board")
	flag.Parse()

	e := chess.New()
	if err := e.LoadFEN(*fen); err != nil {
		log.Fatalf("loading FEN: %v", err)
	}

	for _, san := range flag.Args() {
		result, err := e.MovePiece(san)
		if err != nil {
			log.Fatalf("applying %q: %v", san, err)
		}
		fmt.Println(result)
	}

	if *perftDepth > 0 {
		fmt.Println(e.Perft(*perftDepth))
		return
	}

	printBoard(e)
	fmt.Println(e.FEN())
}

// printBoard renders the current position rank 8 to rank 1, coloring white
// pieces in yellow and black pieces in cyan.
func printBoard(e *chess.Engine) {
	white := color.New(color.FgYellow, color.Bold)
	black := color.New(color.FgCyan, color.Bold)

	for rank := 8; rank >= 1; rank-- {
		var row strings.Builder
		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(file, rank)
			p, err := e.Get(sq)
			if err != nil {
				fmt.Fprintf(os.Stderr, "unexpected square error at %s: %v\n", sq, err)
				os.Exit(1)
			}
			if p.IsEmpty() {
				row.WriteString(". ")
				continue
			}
			letter := pieceLetter(p)
			if p.Color == chess.White {
				row.WriteString(white.Sprint(letter))
			} else {
				row.WriteString(black.Sprint(letter))
			}
			row.WriteByte(' ')
		}
		fmt.Printf("%d %s\n", rank, row.String())
	}
	fmt.Println("  a b c d e f g h")
}

func pieceLetter(p chess.Piece) string {
	letter := p.Kind.String()
	if letter == "" {
		letter = "P"
	}
	if p.Color == chess.Black {
		letter = strings.ToLower(letter)
	}
	return letter
}
