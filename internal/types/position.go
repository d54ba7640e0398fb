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

import "fmt"

// Position is a square on the board, row 0 at Black's back rank, row 7 at
// White's back rank, column 0 at the a-file. Out-of-range rows/columns
// represent an off-board square and are never stored on a Board; they only
// ever appear transiently during move generation.
type Position struct {
	Row    int
	Column int
}

// Add returns the position reached by stepping d from p. It is the
// caller's responsibility to check IsInside on the result; Add itself is
// pure arithmetic and never bounds-checks.
func (p Position) Add(d Direction) Position {
	return Position{p.Row + d.RowDelta, p.Column + d.ColDelta}
}

// Less orders positions by (row, column), a deterministic total order
// that matches Board.PiecePositions' row-major iteration.
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Column < other.Column
}

// File returns the algebraic file letter ('a'..'h') for the column.
func (p Position) File() byte {
	return byte('a' + p.Column)
}

// Rank returns the algebraic rank digit (rank 1 = row 7, ... rank 8 = row 0).
func (p Position) Rank() byte {
	return byte('1' + (7 - p.Row))
}

// Algebraic renders the position as e.g. "e4".
func (p Position) Algebraic() string {
	return fmt.Sprintf("%c%c", p.File(), p.Rank())
}

// PositionFromAlgebraic parses a two-character algebraic coordinate such
// as "e4" back into a Position.
func PositionFromAlgebraic(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid algebraic coordinate %q", s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("invalid algebraic coordinate %q", s)
	}
	return Position{Row: 7 - int(rank-'1'), Column: int(file - 'a')}, nil
}
