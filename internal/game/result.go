/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package game

import (
	. "github.com/frankkopp/chessd/internal/types"
)

// EndReason names why a game ended.
type EndReason int8

const (
	Checkmate EndReason = iota
	Stalemate
	FiftyMoveRule
	InsufficientMaterial
	ThreefoldRepetition
)

func (r EndReason) String() string {
	switch r {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case FiftyMoveRule:
		return "FiftyMoveRule"
	case InsufficientMaterial:
		return "InsufficientMaterial"
	case ThreefoldRepetition:
		return "ThreefoldRepetition"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a finished game. Winner is nil for a draw.
type Result struct {
	Winner *Color
	Reason EndReason
}

func win(winner Color, reason EndReason) *Result {
	w := winner
	return &Result{Winner: &w, Reason: reason}
}

func draw(reason EndReason) *Result {
	return &Result{Winner: nil, Reason: reason}
}
