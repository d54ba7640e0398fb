/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package game

import (
	"testing"

	"github.com/frankkopp/chessd/internal/board"
	"github.com/frankkopp/chessd/internal/move"
	"github.com/frankkopp/chessd/internal/rules"
	. "github.com/frankkopp/chessd/internal/types"
	"github.com/stretchr/testify/assert"
)

// S1 — Starting position legality.
func TestStartingPositionLegality(t *testing.T) {
	g := NewGame()

	pm, ok := g.LegalMovesForPiece(Position{6, 4})
	assert.True(t, ok)
	assert.Len(t, pm.Moves, 2)

	pm, ok = g.LegalMovesForPiece(Position{7, 1})
	assert.True(t, ok)
	assert.Len(t, pm.Moves, 2)

	assert.False(t, rules.IsInCheck(g.Board(), White))
	assert.False(t, rules.IsInCheck(g.Board(), Black))
}

// S2 — Fool's mate.
func TestFoolsMateEndsInCheckmate(t *testing.T) {
	g := NewGame()

	g.MakeMove(move.Move{Kind: move.Normal, From: Position{6, 5}, To: Position{5, 5}})
	g.MakeMove(move.Move{Kind: move.Normal, From: Position{1, 4}, To: Position{3, 4}})
	g.MakeMove(move.Move{Kind: move.Normal, From: Position{6, 6}, To: Position{4, 6}})
	g.MakeMove(move.Move{Kind: move.Normal, From: Position{0, 3}, To: Position{4, 7}})

	assert.True(t, g.IsGameOver())
	result := g.Result()
	assert.NotNil(t, result)
	assert.Equal(t, Checkmate, result.Reason)
	assert.NotNil(t, result.Winner)
	assert.Equal(t, Black, *result.Winner)
	assert.True(t, rules.IsInCheck(g.Board(), White))
	assert.Empty(t, g.AllLegalMoves(White))
}

// S5 — Insufficient material.
func TestInsufficientMaterialDraw(t *testing.T) {
	g := &GameState{board: board.New(), currentPlayer: White, stateCounts: make(map[string]int)}
	wk := NewPiece(King, White)
	bk := NewPiece(King, Black)
	wb := NewPiece(Bishop, White)
	g.board.Set(Position{7, 4}, &wk)
	g.board.Set(Position{0, 4}, &bk)
	g.board.Set(Position{7, 2}, &wb)

	pm, ok := g.LegalMovesForPiece(Position{7, 4})
	assert.True(t, ok)
	assert.NotEmpty(t, pm.Moves)
	g.MakeMove(pm.Moves[0])

	assert.True(t, g.IsGameOver())
	assert.Equal(t, InsufficientMaterial, g.Result().Reason)
	assert.Nil(t, g.Result().Winner)
}

// S6 — Threefold repetition via knight shuffles.
func TestThreefoldRepetition(t *testing.T) {
	g := NewGame()

	shuffle := func() {
		g.MakeMove(move.Move{Kind: move.Normal, From: Position{7, 1}, To: Position{5, 2}})
		g.MakeMove(move.Move{Kind: move.Normal, From: Position{0, 1}, To: Position{2, 2}})
		g.MakeMove(move.Move{Kind: move.Normal, From: Position{5, 2}, To: Position{7, 1}})
		g.MakeMove(move.Move{Kind: move.Normal, From: Position{2, 2}, To: Position{0, 1}})
	}

	shuffle()
	assert.False(t, g.IsGameOver())
	shuffle()

	// The starting key has now occurred three times: once at NewGame and
	// once after each shuffle.
	assert.Equal(t, 3, g.stateCounts[g.canonicalKey])
	assert.True(t, g.IsGameOver())
	assert.Equal(t, ThreefoldRepetition, g.Result().Reason)
}
