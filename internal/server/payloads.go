/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package server

import (
	"github.com/frankkopp/chessd/internal/game"
	"github.com/frankkopp/chessd/internal/matchmaker"
	"github.com/frankkopp/chessd/internal/move"
	. "github.com/frankkopp/chessd/internal/types"
)

// GameRequestPayload is a GameRequest packet's JSON payload.
type GameRequestPayload struct {
	PlayerID matchmaker.PlayerID
}

// LegalMovesQueryPayload is a LegalMovesQuery packet's JSON payload.
type LegalMovesQueryPayload struct {
	Row    int
	Column int
}

// LegalMovesResponsePayload is a LegalMovesResponse packet's JSON payload.
type LegalMovesResponsePayload struct {
	Piece Piece
	Moves []move.Move
}

// MovePiecePayload is a MovePiece packet's JSON payload.
type MovePiecePayload struct {
	Move move.Move
}

// MoveAppliedPayload is a MoveApplied packet's JSON payload.
type MoveAppliedPayload struct {
	Record   move.Record
	Notation string
}

// GameOverPayload is a GameOver packet's JSON payload.
type GameOverPayload struct {
	Winner *Color
	Reason string
}

func gameOverPayload(result *game.Result) GameOverPayload {
	return GameOverPayload{Winner: result.Winner, Reason: result.Reason.String()}
}

// ErrorPayload is an Error packet's JSON payload.
type ErrorPayload struct {
	Message string
}
