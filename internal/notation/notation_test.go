/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessd/internal/board"
	"github.com/frankkopp/chessd/internal/move"
	. "github.com/frankkopp/chessd/internal/types"
)

func TestCanonicalKey_StartingPosition(t *testing.T) {
	b := board.StartingBoard()
	key := CanonicalKey(b, White)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", key)
}

func TestCanonicalKey_SideToMove(t *testing.T) {
	b := board.StartingBoard()
	assert.Contains(t, CanonicalKey(b, White), " w ")
	assert.Contains(t, CanonicalKey(b, Black), " b ")
}

func TestCastlingField_LostWhenRookCaptured(t *testing.T) {
	b := board.StartingBoard()

	// Empty White's queenside rook corner without touching HasMoved on
	// either the rook or the king - the rook-presence guard must still
	// drop the Q right, since has_moved alone can't see a captured rook.
	b.Set(Position{Row: 7, Column: 0}, nil)

	key := CanonicalKey(b, White)
	fields := splitFields(key)
	assert.Equal(t, "Kkq", fields[2])
}

func TestCastlingField_WhiteKingMovedLeavesBlackRights(t *testing.T) {
	b := board.StartingBoard()
	king := b.At(Position{Row: 7, Column: 4})
	king.HasMoved = true

	fields := splitFields(CanonicalKey(b, White))
	assert.Equal(t, "kq", fields[2])
}

func TestEnPassantField_AbsentWithoutCapturingPawn(t *testing.T) {
	b := board.StartingBoard()
	// A double push with no enemy pawn adjacent to the landing square
	// (the h-pawn has no neighbor on the g-file) must not report a target.
	b.Set(Position{Row: 6, Column: 7}, nil)
	b.Set(Position{Row: 4, Column: 7}, &Piece{Type: MakePieceType(Pawn, White)})
	board.SetEPFromPush(b, White, Position{Row: 6, Column: 7}, Position{Row: 4, Column: 7})

	fields := splitFields(CanonicalKey(b, Black))
	assert.Equal(t, "-", fields[3])
}

func TestEnPassantField_PresentWithCapturingPawn(t *testing.T) {
	b := board.New()
	// White pawn e2-e4 next to a Black pawn on d4: Black to move can
	// capture en passant onto e3.
	b.Set(Position{Row: 6, Column: 4}, nil)
	whitePawn := NewPiece(Pawn, White)
	blackPawn := NewPiece(Pawn, Black)
	b.Set(Position{Row: 4, Column: 4}, &whitePawn)
	b.Set(Position{Row: 4, Column: 3}, &blackPawn)
	board.SetEPFromPush(b, White, Position{Row: 6, Column: 4}, Position{Row: 4, Column: 4})

	fields := splitFields(CanonicalKey(b, Black))
	assert.Equal(t, "e3", fields[3])
}

func TestRecord_Castling(t *testing.T) {
	assert.Equal(t, "0-0", Record(move.Record{Move: move.Move{Kind: move.ShortCastle}}))
	assert.Equal(t, "0-0-0", Record(move.Record{Move: move.Move{Kind: move.LongCastle}}))
}

func TestRecord_PromotionAndCheck(t *testing.T) {
	r := move.Record{
		Move:       move.Move{Kind: move.Promotion, To: Position{Row: 0, Column: 4}, PromotionTo: Queen},
		PieceMoved: Pawn,
		IsCheck:    true,
	}
	assert.Equal(t, "e8=Q+", Record(r))
}

func TestRecord_NormalKnightMove(t *testing.T) {
	r := move.Record{
		Move:       move.Move{Kind: move.Normal, To: Position{Row: 5, Column: 2}},
		PieceMoved: Knight,
	}
	assert.Equal(t, "Nc3", Record(r))
}

func splitFields(key string) []string {
	var fields []string
	field := ""
	for _, c := range key {
		if c == ' ' {
			fields = append(fields, field)
			field = ""
			continue
		}
		field += string(c)
	}
	fields = append(fields, field)
	return fields
}
