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

func bishopMoves(b *board.Board, from Position, color Color) []move.Move {
	return slidingScan(b, from, color, bishopDirections)
}

func bishopAttacksKing(b *board.Board, from, kingPos Position) bool {
	return slidingAttacksKing(b, from, kingPos, bishopDirections)
}
