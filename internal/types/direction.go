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

// Direction is one of the 8 compass points on the board, expressed as a
// (row delta, column delta) pair. North has RowDelta = -1: row 0 is
// Black's back rank, so moving "north" decreases the row index.
type Direction struct {
	RowDelta int
	ColDelta int
}

// The 8 compass directions.
var (
	North = Direction{-1, 0}
	South = Direction{1, 0}
	East  = Direction{0, 1}
	West  = Direction{0, -1}

	Northeast = Direction{-1, 1}
	Northwest = Direction{-1, -1}
	Southeast = Direction{1, 1}
	Southwest = Direction{1, -1}
)

// Str returns a two-letter (or one-letter) compass label.
func (d Direction) Str() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Northwest:
		return "NW"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	default:
		panic(fmt.Sprintf("invalid direction %v", d))
	}
}

// Scale returns the direction's delta multiplied by n.
func (d Direction) Scale(n int) Direction {
	return Direction{d.RowDelta * n, d.ColDelta * n}
}

// Add sums two directions' deltas. Used by the knight generator to build
// its (±2,±1)/(±1,±2) offsets out of two scaled straight directions.
func (d Direction) Add(other Direction) Direction {
	return Direction{d.RowDelta + other.RowDelta, d.ColDelta + other.ColDelta}
}
