/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package game holds GameState: the single mutable per-game value that
// wraps a board.Board with move history, draw-rule counters, and
// termination evaluation. One GameState belongs to exactly one caller;
// nothing here is safe for concurrent use by design (see SPEC_FULL.md §5).
package game

import (
	"github.com/frankkopp/chessd/internal/board"
	"github.com/frankkopp/chessd/internal/move"
	"github.com/frankkopp/chessd/internal/notation"
	"github.com/frankkopp/chessd/internal/rules"
	. "github.com/frankkopp/chessd/internal/types"
)

// PieceMoves pairs a selected piece with its legal moves.
type PieceMoves struct {
	Piece Piece
	Moves []move.Move
}

// GameState is the mutable state of one game in progress.
type GameState struct {
	board                  *board.Board
	currentPlayer          Color
	moveHistory            []move.Record
	nonCaptureNonPawnCount int
	stateCounts            map[string]int
	canonicalKey           string
	result                 *Result
}

// NewGame returns a fresh game at the canonical starting position, White
// to move, empty history, no result.
func NewGame() *GameState {
	b := board.StartingBoard()
	g := &GameState{
		board:         b,
		currentPlayer: White,
		stateCounts:   make(map[string]int),
	}
	g.canonicalKey = notation.CanonicalKey(b, g.currentPlayer)
	g.stateCounts[g.canonicalKey] = 1
	return g
}

// Board exposes the current position for read-only rendering.
func (g *GameState) Board() *board.Board {
	return g.board
}

// CurrentPlayer returns the side to move.
func (g *GameState) CurrentPlayer() Color {
	return g.currentPlayer
}

// History returns the move records played so far, oldest first.
func (g *GameState) History() []move.Record {
	return g.moveHistory
}

// LegalMovesForPiece returns the piece at from and its legal moves, but
// only when that piece belongs to the side to move. Returns (_, false)
// for an empty square or an opponent-owned one.
func (g *GameState) LegalMovesForPiece(from Position) (PieceMoves, bool) {
	piece := g.board.At(from)
	if piece == nil || piece.Color != g.currentPlayer {
		return PieceMoves{}, false
	}
	pseudo := rules.PseudoMoves(g.board, from)
	var legal []move.Move
	for _, m := range pseudo {
		if rules.IsLegal(g.board, m, g.currentPlayer) {
			legal = append(legal, m)
		}
	}
	return PieceMoves{Piece: *piece, Moves: legal}, true
}

// AllLegalMoves returns every legal move available to color in the
// current position.
func (g *GameState) AllLegalMoves(color Color) []move.Move {
	var all []move.Move
	for _, pos := range g.board.PiecePositionsFor(color) {
		for _, m := range rules.PseudoMoves(g.board, pos) {
			if rules.IsLegal(g.board, m, color) {
				all = append(all, m)
			}
		}
	}
	return all
}

// MakeMove executes m — which must have come from LegalMovesForPiece on
// this exact state — updates draw-rule bookkeeping, appends the record,
// flips the side to move, and re-evaluates termination.
func (g *GameState) MakeMove(m move.Move) move.Record {
	record := rules.Execute(g.board, m)

	if record.PieceCaptured != nil || record.PieceMoved == Pawn {
		g.nonCaptureNonPawnCount = 0
		g.stateCounts = make(map[string]int)
	} else {
		g.nonCaptureNonPawnCount++
	}

	g.moveHistory = append(g.moveHistory, record)

	g.currentPlayer = g.currentPlayer.Opponent()
	g.canonicalKey = notation.CanonicalKey(g.board, g.currentPlayer)
	g.stateCounts[g.canonicalKey]++

	g.evaluateTermination()

	return record
}

// IsGameOver reports whether a result has been decided.
func (g *GameState) IsGameOver() bool {
	return g.result != nil
}

// Result returns the decided outcome, or nil while the game continues.
func (g *GameState) Result() *Result {
	return g.result
}

// evaluateTermination checks the draw/win conditions in the precedence
// order spec.md §4.5 mandates: checkmate/stalemate first (since they
// require generating current_player's replies anyway), then insufficient
// material, then the fifty-move rule, then threefold repetition.
func (g *GameState) evaluateTermination() {
	if len(g.AllLegalMoves(g.currentPlayer)) == 0 {
		if rules.IsInCheck(g.board, g.currentPlayer) {
			g.result = win(g.currentPlayer.Opponent(), Checkmate)
		} else {
			g.result = draw(Stalemate)
		}
		return
	}

	if insufficientMaterial(g.board) {
		g.result = draw(InsufficientMaterial)
		return
	}

	if g.nonCaptureNonPawnCount >= 100 {
		g.result = draw(FiftyMoveRule)
		return
	}

	if g.stateCounts[g.canonicalKey] >= 3 {
		g.result = draw(ThreefoldRepetition)
		return
	}
}

// insufficientMaterial reports whether the total remaining material rules
// out checkmate: bare kings, king+single knight vs king, or king+single
// bishop vs king.
func insufficientMaterial(b *board.Board) bool {
	positions := b.PiecePositions()
	if len(positions) > 3 {
		return false
	}

	var minorKinds []PieceKind
	for _, pos := range positions {
		piece := b.At(pos)
		if piece.Kind() == King {
			continue
		}
		minorKinds = append(minorKinds, piece.Kind())
	}

	switch len(minorKinds) {
	case 0:
		return true
	case 1:
		return minorKinds[0] == Knight || minorKinds[0] == Bishop
	default:
		return false
	}
}
