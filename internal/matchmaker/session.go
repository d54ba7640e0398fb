/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package matchmaker

import (
	"github.com/frankkopp/chessd/internal/game"
	. "github.com/frankkopp/chessd/internal/types"
)

// GameSession pairs two players with the single GameState they share.
// Exactly one GameState per session, touched only by that session's own
// goroutines — see SPEC_FULL.md §5.
type GameSession struct {
	ID    GameID
	White PlayerID
	Black PlayerID
	Game  *game.GameState
}

// newGameSession starts a fresh game with white and black seated
// White/Black respectively.
func newGameSession(white, black PlayerID) *GameSession {
	return &GameSession{
		ID:    NewGameID(),
		White: white,
		Black: black,
		Game:  game.NewGame(),
	}
}

// ColorOf reports which color player occupies in this session, or false
// if they are not a participant.
func (s *GameSession) ColorOf(player PlayerID) (Color, bool) {
	switch player {
	case s.White:
		return White, true
	case s.Black:
		return Black, true
	default:
		return Color(0), false
	}
}
