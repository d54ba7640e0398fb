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

// CastlingRights encodes which castling moves are still conceivable for
// each side (ignoring "does the king cross check", which is a per-move
// legality question, not a state bit). Used only for rendering the
// canonical position string's castling field; move legality itself is
// derived fresh from Piece.HasMoved and board occupancy on every query.
type CastlingRights uint8

// Bits, one per corner.
const (
	CastlingNone CastlingRights = 0

	WhiteOO  CastlingRights = 1 << 0
	WhiteOOO CastlingRights = 1 << 1
	BlackOO  CastlingRights = 1 << 2
	BlackOOO CastlingRights = 1 << 3
)

const (
	CastlingWhite CastlingRights = WhiteOO | WhiteOOO
	CastlingBlack CastlingRights = BlackOO | BlackOOO
	CastlingAny   CastlingRights = CastlingWhite | CastlingBlack
)

// Has reports whether all bits of rhs are set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs
}
