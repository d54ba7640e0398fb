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

// Execute applies m to b in place and returns the Record describing what
// happened. Steps, per spec.md §4.4:
//  1. identify the moving piece and any captured piece (en passant's
//     captured pawn sits beside the destination, not on it);
//  2. vacate the origin square;
//  3. for castling, also relocate the rook;
//  4. place the (possibly promoted) piece at the destination, marked moved;
//  5. update en-passant bookkeeping: a double pawn push sets the new
//     target, anything else clears both;
//  6. compute is_check against the opponent now to move.
func Execute(b *board.Board, m move.Move) move.Record {
	mover := b.At(m.From)
	pieceMoved := mover.Kind()
	color := mover.Color

	var pieceCaptured *PieceKind

	if m.Kind == move.EnPassant {
		capturedPos := Position{Row: m.From.Row, Column: m.To.Column}
		if captured := b.At(capturedPos); captured != nil {
			k := captured.Kind()
			pieceCaptured = &k
		}
		b.Set(capturedPos, nil)
	} else if captured := b.At(m.To); captured != nil {
		k := captured.Kind()
		pieceCaptured = &k
	}

	b.Set(m.From, nil)

	if m.Kind == move.ShortCastle || m.Kind == move.LongCastle {
		row := m.From.Row
		var rookFrom, rookTo Position
		if m.Kind == move.ShortCastle {
			rookFrom, rookTo = Position{Row: row, Column: 7}, Position{Row: row, Column: 5}
		} else {
			rookFrom, rookTo = Position{Row: row, Column: 0}, Position{Row: row, Column: 3}
		}
		rook := b.At(rookFrom)
		b.Set(rookFrom, nil)
		rook.HasMoved = true
		b.Set(rookTo, rook)
	}

	placed := *mover
	placed.HasMoved = true
	if m.Kind == move.Promotion {
		placed.Type = MakePieceType(m.PromotionTo, color)
	}
	b.Set(m.To, &placed)

	if m.Kind == move.DoublePawn {
		board.SetEPFromPush(b, color, m.From, m.To)
	} else {
		b.ClearEP()
	}

	isCheck := IsInCheck(b, color.Opponent())

	return move.Record{
		Move:          m,
		PieceMoved:    pieceMoved,
		PieceCaptured: pieceCaptured,
		IsCheck:       isCheck,
	}
}
