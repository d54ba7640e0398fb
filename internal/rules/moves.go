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
	"github.com/frankkopp/chessd/internal/move"
	. "github.com/frankkopp/chessd/internal/types"
)

// PseudoMoves generates every move the piece at from could make ignoring
// whether it leaves its own king in check. Legality filtering is the
// caller's job, via IsLegal.
func PseudoMoves(b *board.Board, from Position) []move.Move {
	piece := b.At(from)
	if piece == nil {
		return nil
	}
	switch piece.Kind() {
	case Pawn:
		return pawnMoves(b, from, piece.Color)
	case Knight:
		return knightMoves(b, from, piece.Color)
	case Bishop:
		return bishopMoves(b, from, piece.Color)
	case Rook:
		return rookMoves(b, from, piece.Color)
	case Queen:
		return queenMoves(b, from, piece.Color)
	case King:
		return kingMoves(b, from, piece.Color)
	default:
		return nil
	}
}
