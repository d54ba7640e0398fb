/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package notation renders a Board into the canonical four-field
// position string used as the threefold-repetition identity key, and
// renders a move.Record into short algebraic notation.
package notation

import (
	"strconv"
	"strings"

	"github.com/frankkopp/chessd/internal/board"
	"github.com/frankkopp/chessd/internal/move"
	. "github.com/frankkopp/chessd/internal/types"
)

// CanonicalKey renders b's four-field identity string: placement, side
// to move, castling rights, en-passant target.
func CanonicalKey(b *board.Board, sideToMove Color) string {
	var parts []string
	parts = append(parts, placement(b))
	parts = append(parts, sideToMove.String())
	parts = append(parts, castlingField(b))
	parts = append(parts, enPassantField(b, sideToMove))
	return strings.Join(parts, " ")
}

func placement(b *board.Board) string {
	var rows []string
	for r := 0; r < 8; r++ {
		var row strings.Builder
		empty := 0
		for c := 0; c < 8; c++ {
			p := b.At(Position{Row: r, Column: c})
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				row.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			row.WriteString(p.String())
		}
		if empty > 0 {
			row.WriteString(strconv.Itoa(empty))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "/")
}

// castlingRights derives the CastlingRights bitmask from board state: a
// right is set only when the king on its starting square has never
// moved, and a rook of the matching color still occupies (and has never
// moved from) the matching corner. The rook-still-present guard is
// required — has_moved alone does not rule out a capture that left the
// corner empty, or a promoted piece later placed there.
func castlingRights(b *board.Board) CastlingRights {
	corner := func(kingPos, rookPos Position, color Color) bool {
		king := b.At(kingPos)
		if king == nil || king.Kind() != King || king.Color != color || king.HasMoved {
			return false
		}
		rook := b.At(rookPos)
		return rook != nil && rook.Kind() == Rook && rook.Color == color && !rook.HasMoved
	}

	var rights CastlingRights
	if corner(Position{Row: 7, Column: 4}, Position{Row: 7, Column: 7}, White) {
		rights |= WhiteOO
	}
	if corner(Position{Row: 7, Column: 4}, Position{Row: 7, Column: 0}, White) {
		rights |= WhiteOOO
	}
	if corner(Position{Row: 0, Column: 4}, Position{Row: 0, Column: 7}, Black) {
		rights |= BlackOO
	}
	if corner(Position{Row: 0, Column: 4}, Position{Row: 0, Column: 0}, Black) {
		rights |= BlackOOO
	}
	return rights
}

// castlingField renders castlingRights as K/Q/k/q letters, or "-" if none
// apply.
func castlingField(b *board.Board) string {
	rights := castlingRights(b)
	if rights == CastlingNone {
		return "-"
	}

	var out strings.Builder
	if rights.Has(WhiteOO) {
		out.WriteByte('K')
	}
	if rights.Has(WhiteOOO) {
		out.WriteByte('Q')
	}
	if rights.Has(BlackOO) {
		out.WriteByte('k')
	}
	if rights.Has(BlackOOO) {
		out.WriteByte('q')
	}
	return out.String()
}

// enPassantField emits the skipped square only if sideToMove actually has
// a pawn positioned to capture into it — standard FEN semantics, not
// merely "a double push just happened".
func enPassantField(b *board.Board, sideToMove Color) string {
	ep := b.GetEP(sideToMove.Opponent())
	if ep == nil {
		return "-"
	}
	forward := MakePieceType(Pawn, sideToMove).Forward
	for _, side := range []Direction{East, West} {
		from := ep.Add(forward.Scale(-1)).Add(side.Scale(-1))
		if !board.IsInside(from) {
			continue
		}
		p := b.At(from)
		if p != nil && p.Color == sideToMove && p.Kind() == Pawn {
			return ep.Algebraic()
		}
	}
	return "-"
}

// Record renders a move.Record to short algebraic notation.
func Record(r move.Record) string {
	if r.Move.Kind == move.ShortCastle {
		return "0-0"
	}
	if r.Move.Kind == move.LongCastle {
		return "0-0-0"
	}

	var sb strings.Builder
	sb.WriteString(r.PieceMoved.Letter())
	sb.WriteString(r.Move.To.Algebraic())
	if r.Move.Kind == move.Promotion {
		sb.WriteByte('=')
		sb.WriteString(strings.ToUpper(r.Move.PromotionTo.Letter()))
	}
	if r.IsCheck {
		sb.WriteByte('+')
	}
	return sb.String()
}
