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

// pawnMoves generates forward pushes (single and double), diagonal
// captures, and en passant. Promotion is emitted as its own Kind rather
// than Normal whenever the destination is the color's promotion rank;
// PromotionTo is set to DefaultPromotion here and the caller/UI may
// replace it with the piece actually chosen.
func pawnMoves(b *board.Board, from Position, color Color) []move.Move {
	piece := b.At(from)
	forward := piece.Type.Forward
	var moves []move.Move

	oneStep := from.Add(forward)
	if board.IsInside(oneStep) && b.At(oneStep) == nil {
		moves = append(moves, pawnPush(from, oneStep, color)...)

		if !piece.HasMoved {
			twoStep := oneStep.Add(forward)
			if board.IsInside(twoStep) && b.At(twoStep) == nil {
				moves = append(moves, move.Move{Kind: move.DoublePawn, From: from, To: twoStep})
			}
		}
	}

	for _, side := range []Direction{East, West} {
		to := from.Add(forward).Add(side)
		if !board.IsInside(to) {
			continue
		}
		occupant := b.At(to)
		if occupant != nil && occupant.Color != color {
			moves = append(moves, pawnPush(from, to, color)...)
			continue
		}
		if occupant == nil {
			if ep := b.GetEP(color.Opponent()); ep != nil && *ep == to {
				moves = append(moves, move.Move{Kind: move.EnPassant, From: from, To: to})
			}
		}
	}

	return moves
}

// pawnPush wraps a forward or capturing destination as Promotion when it
// lands on the mover's promotion rank, Normal otherwise.
func pawnPush(from, to Position, color Color) []move.Move {
	if to.Row == color.PromotionRank() {
		return []move.Move{{Kind: move.Promotion, From: from, To: to, PromotionTo: DefaultPromotion}}
	}
	return []move.Move{{Kind: move.Normal, From: from, To: to}}
}

// pawnAttacksKing overrides the generic attack test: a pawn only
// threatens its two diagonal squares, never its forward push.
func pawnAttacksKing(from Position, piece Piece, kingPos Position) bool {
	forward := piece.Type.Forward
	for _, side := range []Direction{East, West} {
		if from.Add(forward).Add(side) == kingPos {
			return true
		}
	}
	return false
}
