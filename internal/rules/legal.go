/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package rules

import (
	"github.com/frankkopp/chessd/internal/board"
	"github.com/frankkopp/chessd/internal/move"
	. "github.com/frankkopp/chessd/internal/types"
)

// IsLegal reports whether m, a pseudo-move of mover's piece, is legal:
// it must not leave mover's own king in check afterward, and for
// castling it must additionally not pass the king through or start it
// in check — simulated here by also testing the king's halfway square.
func IsLegal(b *board.Board, m move.Move, mover Color) bool {
	if m.Kind == move.ShortCastle || m.Kind == move.LongCastle {
		if IsInCheck(b, mover) {
			return false
		}
		row := m.From.Row
		var passThrough Position
		if m.Kind == move.ShortCastle {
			passThrough = Position{Row: row, Column: 5}
		} else {
			passThrough = Position{Row: row, Column: 3}
		}
		passThroughCheck := b.Clone()
		king := passThroughCheck.At(m.From)
		passThroughCheck.Set(m.From, nil)
		passThroughCheck.Set(passThrough, king)
		if IsInCheck(passThroughCheck, mover) {
			return false
		}
	}

	clone := b.Clone()
	Execute(clone, m)
	return !IsInCheck(clone, mover)
}
