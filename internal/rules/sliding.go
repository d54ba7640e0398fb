/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package rules generates pseudo-moves per piece kind, detects check, and
// executes/validates moves. These four spec-level components live in one
// package because Go requires an acyclic import graph and, per spec.md
// §9, they are mutually referential: Execute needs check detection for
// its is_check result, IsLegal needs Execute on a cloned board, and check
// detection needs each kind's CanCaptureOpponentKing test.
package rules

import (
	"github.com/frankkopp/chessd/internal/board"
	"github.com/frankkopp/chessd/internal/move"
	. "github.com/frankkopp/chessd/internal/types"
)

// slidingDirections per sliding kind.
var (
	rookDirections   = []Direction{North, South, East, West}
	bishopDirections = []Direction{Northeast, Northwest, Southeast, Southwest}
	queenDirections  = append(append([]Direction{}, rookDirections...), bishopDirections...)
)

// slidingScan walks from from in each of directions, one step at a time,
// appending a Normal move for each empty square and for the first
// opponent-owned square reached (terminating the walk there); a
// same-color square terminates the walk without producing a move.
func slidingScan(b *board.Board, from Position, color Color, directions []Direction) []move.Move {
	var moves []move.Move
	for _, d := range directions {
		to := from.Add(d)
		for board.IsInside(to) {
			occupant := b.At(to)
			if occupant == nil {
				moves = append(moves, move.Move{Kind: move.Normal, From: from, To: to})
				to = to.Add(d)
				continue
			}
			if occupant.Color != color {
				moves = append(moves, move.Move{Kind: move.Normal, From: from, To: to})
			}
			break
		}
	}
	return moves
}

// slidingAttacksKing reports whether a slide from from in any of
// directions reaches kingPos before being blocked.
func slidingAttacksKing(b *board.Board, from, kingPos Position, directions []Direction) bool {
	for _, d := range directions {
		to := from.Add(d)
		for board.IsInside(to) {
			if to == kingPos {
				return true
			}
			if b.At(to) != nil {
				break
			}
			to = to.Add(d)
		}
	}
	return false
}
