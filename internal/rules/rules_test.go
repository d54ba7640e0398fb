/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package rules

import (
	"testing"

	"github.com/frankkopp/chessd/internal/board"
	"github.com/frankkopp/chessd/internal/move"
	. "github.com/frankkopp/chessd/internal/types"
	"github.com/stretchr/testify/assert"
)

func containsMove(moves []move.Move, m move.Move) bool {
	for _, candidate := range moves {
		if candidate.Equal(m) {
			return true
		}
	}
	return false
}

func TestPseudoMoves_StartingPositionKnight(t *testing.T) {
	b := board.StartingBoard()
	moves := PseudoMoves(b, Position{Row: 7, Column: 1})
	assert.Len(t, moves, 2)
}

func TestPseudoMoves_StartingPositionPawnDouble(t *testing.T) {
	b := board.StartingBoard()
	moves := PseudoMoves(b, Position{Row: 6, Column: 4})
	assert.True(t, containsMove(moves, move.Move{Kind: move.Normal, From: Position{6, 4}, To: Position{5, 4}}))
	assert.True(t, containsMove(moves, move.Move{Kind: move.DoublePawn, From: Position{6, 4}, To: Position{4, 4}}))
}

func TestIsInCheck_StartingPositionFalse(t *testing.T) {
	b := board.StartingBoard()
	assert.False(t, IsInCheck(b, White))
	assert.False(t, IsInCheck(b, Black))
}

// TestFoolsMate reproduces 1.f3 e5 2.g4 Qh4#.
func TestFoolsMate(t *testing.T) {
	b := board.StartingBoard()

	play := func(from, to Position) {
		m := move.Move{Kind: move.Normal, From: from, To: to}
		Execute(b, m)
	}

	play(Position{6, 5}, Position{5, 5}) // f3
	play(Position{1, 4}, Position{3, 4}) // e5
	play(Position{6, 6}, Position{4, 6}) // g4

	qh4 := move.Move{Kind: move.Normal, From: Position{0, 3}, To: Position{4, 7}}
	rec := Execute(b, qh4)

	assert.True(t, rec.IsCheck)
	assert.True(t, IsInCheck(b, White))
}

func TestEnPassant_Available(t *testing.T) {
	b := board.New()
	whitePawn := NewPiece(Pawn, White)
	whitePawn.HasMoved = true
	b.Set(Position{3, 4}, &whitePawn)
	blackPawn := NewPiece(Pawn, Black)
	b.Set(Position{1, 3}, &blackPawn)
	b.Set(Position{0, 4}, &(func() Piece { p := NewPiece(King, White); return p }()))
	b.Set(Position{7, 4}, &(func() Piece { p := NewPiece(King, Black); return p }()))

	Execute(b, move.Move{Kind: move.DoublePawn, From: Position{1, 3}, To: Position{3, 3}})

	moves := PseudoMoves(b, Position{3, 4})
	assert.True(t, containsMove(moves, move.Move{Kind: move.EnPassant, From: Position{3, 4}, To: Position{2, 3}}))
}

func TestCastling_BlockedThroughCheck(t *testing.T) {
	b := board.New()
	king := NewPiece(King, White)
	b.Set(Position{7, 4}, &king)
	rook := NewPiece(Rook, White)
	b.Set(Position{7, 7}, &rook)
	blackRook := NewPiece(Rook, Black)
	b.Set(Position{0, 5}, &blackRook)
	blackKing := NewPiece(King, Black)
	b.Set(Position{0, 0}, &blackKing)

	// kingMoves is pseudo-move generation: it only checks current check,
	// not pass-through, so the castling move is still present here.
	moves := kingMoves(b, Position{7, 4}, White)
	assert.True(t, containsMove(moves, move.Move{Kind: move.ShortCastle, From: Position{7, 4}, To: Position{7, 6}}))

	for _, m := range moves {
		if m.Kind == move.ShortCastle {
			assert.False(t, IsLegal(b, m, White))
		}
	}
}

func TestInsufficientMaterialNotDetectedHere(t *testing.T) {
	// Insufficient material is a game-termination concern, tested in
	// internal/game; this package only guarantees legal moves remain
	// generatable on a bare king-vs-king board.
	b := board.New()
	wk := NewPiece(King, White)
	bk := NewPiece(King, Black)
	b.Set(Position{7, 4}, &wk)
	b.Set(Position{0, 4}, &bk)
	moves := PseudoMoves(b, Position{7, 4})
	assert.NotEmpty(t, moves)
}
