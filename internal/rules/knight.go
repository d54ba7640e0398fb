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

// knightOffsets are the 8 fixed (±2,±1) ∪ (±1,±2) deltas, built the way
// spec.md §4.2 describes: a vertical direction scaled by 2 plus a
// horizontal direction (or vice versa).
var knightOffsets = buildKnightOffsets()

func buildKnightOffsets() []Direction {
	verticals := []Direction{North, South}
	horizontals := []Direction{East, West}
	var offsets []Direction
	for _, v := range verticals {
		for _, h := range horizontals {
			offsets = append(offsets, v.Scale(2).Add(h))
			offsets = append(offsets, h.Scale(2).Add(v))
		}
	}
	return offsets
}

func knightMoves(b *board.Board, from Position, color Color) []move.Move {
	var moves []move.Move
	for _, o := range knightOffsets {
		to := from.Add(o)
		if !board.IsInside(to) {
			continue
		}
		occupant := b.At(to)
		if occupant == nil || occupant.Color != color {
			moves = append(moves, move.Move{Kind: move.Normal, From: from, To: to})
		}
	}
	return moves
}

func knightAttacksKing(from, kingPos Position) bool {
	for _, o := range knightOffsets {
		if from.Add(o) == kingPos {
			return true
		}
	}
	return false
}
