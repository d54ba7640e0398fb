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

func rookMoves(b *board.Board, from Position, color Color) []move.Move {
	return slidingScan(b, from, color, rookDirections)
}

func rookAttacksKing(b *board.Board, from, kingPos Position) bool {
	return slidingAttacksKing(b, from, kingPos, rookDirections)
}
