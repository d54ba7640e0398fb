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

// kingOffsets are the 8 one-step neighbors.
var kingOffsets = []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// kingMoves returns the king's one-step moves plus any castling moves its
// current position and unmoved-ness allow. The "king does not pass
// through or land on an attacked square" requirement is NOT checked
// here — it is enforced later by IsLegal, per spec.md §4.3/§9.
func kingMoves(b *board.Board, from Position, color Color) []move.Move {
	var moves []move.Move
	for _, o := range kingOffsets {
		to := from.Add(o)
		if !board.IsInside(to) {
			continue
		}
		occupant := b.At(to)
		if occupant == nil || occupant.Color != color {
			moves = append(moves, move.Move{Kind: move.Normal, From: from, To: to})
		}
	}
	moves = append(moves, castlingMoves(b, from, color)...)
	return moves
}

func castlingMoves(b *board.Board, from Position, color Color) []move.Move {
	king := b.At(from)
	if king == nil || king.Kind() != King || king.HasMoved {
		return nil
	}
	row := from.Row
	if from.Column != 4 {
		return nil
	}
	if IsInCheck(b, color) {
		return nil
	}

	var moves []move.Move

	// Short castle: rook at column 7, squares 5 and 6 empty.
	if rook := b.At(Position{Row: row, Column: 7}); rook != nil && rook.Kind() == Rook &&
		rook.Color == color && !rook.HasMoved &&
		b.At(Position{Row: row, Column: 5}) == nil && b.At(Position{Row: row, Column: 6}) == nil {
		moves = append(moves, move.Move{Kind: move.ShortCastle, From: from, To: Position{Row: row, Column: 6}})
	}

	// Long castle: rook at column 0, squares 1, 2, 3 empty.
	if rook := b.At(Position{Row: row, Column: 0}); rook != nil && rook.Kind() == Rook &&
		rook.Color == color && !rook.HasMoved &&
		b.At(Position{Row: row, Column: 1}) == nil && b.At(Position{Row: row, Column: 2}) == nil &&
		b.At(Position{Row: row, Column: 3}) == nil {
		moves = append(moves, move.Move{Kind: move.LongCastle, From: from, To: Position{Row: row, Column: 2}})
	}

	return moves
}

// kingAttacksKing restricts the king's attack test to its one-step
// neighborhood: castling targets two squares away never count as a
// capture threat.
func kingAttacksKing(from, kingPos Position) bool {
	for _, o := range kingOffsets {
		if from.Add(o) == kingPos {
			return true
		}
	}
	return false
}
