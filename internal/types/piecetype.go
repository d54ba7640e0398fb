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

package types

// PieceKind is the rank of a chess piece, independent of color.
type PieceKind int8

// The six piece kinds.
const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// pieceKindNames indexed by PieceKind.
var pieceKindNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the piece kind's name.
func (pt PieceKind) String() string {
	return pieceKindNames[pt]
}

// pieceKindLetters indexed by PieceKind, uppercase, empty for pawn (SAN
// convention: pawns carry no piece letter).
var pieceKindLetters = [...]string{"", "N", "B", "R", "Q", "K"}

// Letter returns the uppercase SAN letter for the piece kind, or "" for a
// pawn.
func (pt PieceKind) Letter() string {
	return pieceKindLetters[pt]
}

// fenLetters indexed by PieceKind, lowercase FEN letters.
var fenLetters = [...]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// FENLetter returns the lowercase FEN letter for the piece kind. The
// caller upper-cases it for White.
func (pt PieceKind) FENLetter() byte {
	return fenLetters[pt]
}

// PromotionPiece is the subset of PieceKind a pawn may promote to.
type PromotionPiece = PieceKind

// DefaultPromotion is the promotion piece assumed until a caller (the UI)
// overrides it, per spec.
const DefaultPromotion PromotionPiece = Queen

// IsPromotable reports whether pt is a legal promotion target.
func IsPromotable(pt PieceKind) bool {
	switch pt {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PieceType is the tagged variant carrying per-kind state. In this design
// only Pawn carries state: its forward direction, determined entirely by
// color. The other kinds are unit variants. Tag-only equality is
// SameKind; Go's == on PieceType also compares Forward.
type PieceType struct {
	Kind    PieceKind
	Forward Direction // meaningful only when Kind == Pawn
}

// MakePieceType builds the PieceType for a piece of the given kind and
// color. Non-pawn kinds carry no state; Forward is left zero.
func MakePieceType(kind PieceKind, color Color) PieceType {
	if kind != Pawn {
		return PieceType{Kind: kind}
	}
	if color == White {
		return PieceType{Kind: Pawn, Forward: North}
	}
	return PieceType{Kind: Pawn, Forward: South}
}

// SameKind reports whether two PieceType values carry the same tag,
// ignoring any payload (e.g. a pawn's forward direction).
func (pt PieceType) SameKind(other PieceType) bool {
	return pt.Kind == other.Kind
}
