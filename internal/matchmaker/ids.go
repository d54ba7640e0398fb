/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package matchmaker pairs waiting players into GameSessions. A single
// Matchmaker goroutine owns a FIFO queue of pending requests fed by a
// channel; pairing is decided in that one goroutine so the queue itself
// never needs a lock.
package matchmaker

import "github.com/google/uuid"

// PlayerID identifies one connected player. The server mints a fresh one
// for each accepted connection.
type PlayerID uuid.UUID

// NewPlayerID mints a fresh random PlayerID.
func NewPlayerID() PlayerID {
	return PlayerID(uuid.New())
}

func (id PlayerID) String() string {
	return uuid.UUID(id).String()
}

// GameID identifies one GameSession.
type GameID uuid.UUID

// NewGameID mints a fresh random GameID.
func NewGameID() GameID {
	return GameID(uuid.New())
}

func (id GameID) String() string {
	return uuid.UUID(id).String()
}
