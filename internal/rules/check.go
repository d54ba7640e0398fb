/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package rules

import (
	"github.com/frankkopp/chessd/internal/board"
	. "github.com/frankkopp/chessd/internal/types"
)

// CanCaptureOpponentKing tests whether the piece at from could, by its
// own pseudo-move rules, land on kingPos. This is intentionally NOT the
// same thing as "could move to kingPos as a normal move": pawns only
// attack diagonally (their forward square is not an attack), kings only
// attack their one-step neighborhood (a castling target does not
// capture), and sliding pieces use their full pseudo-move reach. Keeping
// this asymmetric keeps IsInCheck cycle-free — it never recurses through
// castling legality.
func CanCaptureOpponentKing(b *board.Board, from Position, piece Piece, kingPos Position) bool {
	switch piece.Kind() {
	case Pawn:
		return pawnAttacksKing(from, piece, kingPos)
	case Knight:
		return knightAttacksKing(from, kingPos)
	case Bishop:
		return bishopAttacksKing(b, from, kingPos)
	case Rook:
		return rookAttacksKing(b, from, kingPos)
	case Queen:
		return queenAttacksKing(b, from, kingPos)
	case King:
		return kingAttacksKing(from, kingPos)
	default:
		return false
	}
}

// IsInCheck reports whether color's king is attacked by any opposing
// piece: for each of the opponent's occupied squares, ask whether that
// piece can capture the king from there.
func IsInCheck(b *board.Board, color Color) bool {
	kingPos := b.KingPosition(color)
	opponent := color.Opponent()
	for _, pos := range b.PiecePositionsFor(opponent) {
		piece := b.At(pos)
		if CanCaptureOpponentKing(b, pos, *piece, kingPos) {
			return true
		}
	}
	return false
}
