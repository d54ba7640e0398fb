/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Opponent(t *testing.T) {
	assert.EqualValues(t, Black, White.Opponent())
	assert.EqualValues(t, White, Black.Opponent())
}

func TestColor_IsValid(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want bool
	}{
		{"White", White, true},
		{"Black", Black, true},
		{"out of range", Color(2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.IsValid())
		})
	}
}

func TestPosition_Add(t *testing.T) {
	p := Position{Row: 6, Column: 4}
	assert.Equal(t, Position{Row: 5, Column: 4}, p.Add(North))
	assert.Equal(t, Position{Row: 6, Column: 5}, p.Add(East))
	assert.Equal(t, Position{Row: 5, Column: 5}, p.Add(Northeast))
}

func TestPosition_Algebraic(t *testing.T) {
	assert.Equal(t, "e4", Position{Row: 4, Column: 4}.Algebraic())
	assert.Equal(t, "a1", Position{Row: 7, Column: 0}.Algebraic())
	assert.Equal(t, "h8", Position{Row: 0, Column: 7}.Algebraic())
}

func TestPositionFromAlgebraic(t *testing.T) {
	p, err := PositionFromAlgebraic("e4")
	assert.NoError(t, err)
	assert.Equal(t, Position{Row: 4, Column: 4}, p)

	_, err = PositionFromAlgebraic("z9")
	assert.Error(t, err)
}

func TestDirection_Add(t *testing.T) {
	// knight offset: vertical*2 + horizontal
	knightOffset := North.Scale(2).Add(East)
	assert.Equal(t, Direction{RowDelta: -2, ColDelta: 1}, knightOffset)
}

func TestCastlingRights_Has(t *testing.T) {
	rights := WhiteOO | BlackOOO
	assert.True(t, rights.Has(WhiteOO))
	assert.True(t, rights.Has(BlackOOO))
	assert.False(t, rights.Has(WhiteOOO))
}

func TestMakePieceType_PawnForward(t *testing.T) {
	wp := MakePieceType(Pawn, White)
	assert.Equal(t, North, wp.Forward)
	bp := MakePieceType(Pawn, Black)
	assert.Equal(t, South, bp.Forward)
}
