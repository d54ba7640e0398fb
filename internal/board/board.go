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

// Package board holds the 8x8 chess board representation: piece placement
// and the per-color en-passant target squares. It is a plain value type —
// cheap to copy, with no behavior beyond placement queries. Check
// detection lives in internal/rules (see rules.IsInCheck).
package board

import (
	. "github.com/frankkopp/chessd/internal/types"
)

// EnPassantSquares holds, for each color, the square skipped over by that
// color's most recent double pawn push. At most one of the two is set at
// any time, and only during the single following opponent turn.
type EnPassantSquares struct {
	White *Position
	Black *Position
}

// Board is an 8x8 grid of optional pieces plus the en-passant bookkeeping.
// Squares hold *Piece, so Clone copies each Piece value rather than only
// the pointers.
type Board struct {
	squares [8][8]*Piece
	ep      EnPassantSquares
}

// New returns an empty board (no pieces, no en-passant target).
func New() *Board {
	return &Board{}
}

// Clone returns an independent copy of b. Legality checks rely on this
// being cheap: at most 32 small Piece copies plus two optional positions.
// Mutating a piece on the clone never touches b.
func (b *Board) Clone() *Board {
	clone := &Board{ep: b.ep}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if p := b.squares[r][c]; p != nil {
				cp := *p
				clone.squares[r][c] = &cp
			}
		}
	}
	return clone
}

// IsInside reports whether pos is a valid on-board square.
func IsInside(pos Position) bool {
	return pos.Row >= 0 && pos.Row < 8 && pos.Column >= 0 && pos.Column < 8
}

// At returns the piece at pos, or nil if the square is empty. Off-board
// queries are a caller error (move generation always pre-filters with
// IsInside); At does not itself guard against them.
func (b *Board) At(pos Position) *Piece {
	return b.squares[pos.Row][pos.Column]
}

// Set unconditionally writes piece (which may be nil) to pos. The caller
// is responsible for maintaining board invariants.
func (b *Board) Set(pos Position, piece *Piece) {
	b.squares[pos.Row][pos.Column] = piece
}

// PiecePositions returns every occupied square in row-major order
// (row 0..7, column 0..7), a deterministic iteration order.
func (b *Board) PiecePositions() []Position {
	var out []Position
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b.squares[r][c] != nil {
				out = append(out, Position{Row: r, Column: c})
			}
		}
	}
	return out
}

// PiecePositionsFor returns the row-major occupied squares held by color.
func (b *Board) PiecePositionsFor(color Color) []Position {
	var out []Position
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if p := b.squares[r][c]; p != nil && p.Color == color {
				out = append(out, Position{Row: r, Column: c})
			}
		}
	}
	return out
}

// KingPosition returns the square of color's king. A Board produced by
// StartingBoard (or by legal play from it) always has exactly one; panics
// if none is found since that violates the core invariant that exactly
// one king of each color exists on any reachable board.
func (b *Board) KingPosition(color Color) Position {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if p := b.squares[r][c]; p != nil && p.Color == color && p.Kind() == King {
				return Position{Row: r, Column: c}
			}
		}
	}
	panic("board: no king found for color " + color.String())
}

// GetEP returns the en-passant target square for color, if any.
func (b *Board) GetEP(color Color) *Position {
	if color == White {
		return b.ep.White
	}
	return b.ep.Black
}

// SetEPFromPush stores the square "skipped over" by a double pawn push (row
// midpoint of from/to, same column) under the mover's color, and clears
// the other color's square unconditionally.
func SetEPFromPush(b *Board, color Color, from, to Position) {
	mid := Position{Row: (from.Row + to.Row) / 2, Column: from.Column}
	if color == White {
		b.ep.White = &mid
		b.ep.Black = nil
	} else {
		b.ep.Black = &mid
		b.ep.White = nil
	}
}

// ClearEP clears both colors' en-passant target squares.
func (b *Board) ClearEP() {
	b.ep.White = nil
	b.ep.Black = nil
}
