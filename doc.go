// Package chess implements a 0x88 mailbox chess rules engine: move
// generation, make/undo, check/checkmate/stalemate/draw detection, and
// FEN/SAN support. It is a library; callers drive it through Engine.
package chess
