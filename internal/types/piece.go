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

// Piece is a piece on the board: its tagged type, its color, and whether
// it has ever moved. HasMoved is monotonic: it starts false and is set
// true the first time the piece participates in a move; it is never
// cleared again.
type Piece struct {
	Type     PieceType
	Color    Color
	HasMoved bool
}

// NewPiece builds a fresh, unmoved piece of the given kind and color.
func NewPiece(kind PieceKind, color Color) Piece {
	return Piece{Type: MakePieceType(kind, color), Color: color}
}

// Kind is shorthand for p.Type.Kind.
func (p Piece) Kind() PieceKind {
	return p.Type.Kind
}

// String renders a single FEN-style letter, uppercase for White.
func (p Piece) String() string {
	letter := p.Kind().FENLetter()
	if p.Color == White {
		return string(letter - ('a' - 'A'))
	}
	return string(letter)
}
