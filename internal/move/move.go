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

// Package move holds the move and move-record value types. It has no
// behavior of its own: generation lives in internal/rules, execution and
// legality testing also live there (see that package's doc comment for
// why they are not split further per-spec-component).
package move

import (
	. "github.com/frankkopp/chessd/internal/types"
)

// Kind tags a Move's variant. Promotion carries a PromotionPiece payload;
// the others carry none.
type Kind int8

// The six move kinds.
const (
	Normal Kind = iota
	ShortCastle
	LongCastle
	DoublePawn
	EnPassant
	Promotion
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case ShortCastle:
		return "ShortCastle"
	case LongCastle:
		return "LongCastle"
	case DoublePawn:
		return "DoublePawn"
	case EnPassant:
		return "EnPassant"
	case Promotion:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// Move is a candidate or executed move. PromotionTo is only meaningful
// when Kind == Promotion; it defaults to Queen (types.DefaultPromotion)
// when a generator produces the move and is later overwritten by the
// caller (the UI) before execution, per spec.
type Move struct {
	Kind        Kind
	From        Position
	To          Position
	PromotionTo PromotionPiece
}

// Equal compares two moves by value, including the promotion payload —
// this is move equality, not PieceType's tag-only equality.
func (m Move) Equal(other Move) bool {
	return m == other
}

// Record is the immutable log entry produced by executing a Move.
type Record struct {
	Move          Move
	PieceMoved    PieceKind
	PieceCaptured *PieceKind // nil if the move was not a capture
	IsCheck       bool
}
