/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package matchmaker

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/chessd/internal/logging"
)

var out = logging.GetLog()

// request is one player's enqueue call, carried over the requests channel
// into the single run loop so pending never needs a lock.
type request struct {
	ctx    context.Context
	player PlayerID
	result chan<- *GameSession
}

// Matchmaker pairs waiting players FIFO: the first pending request is
// completed by the next arrival. A run loop goroutine is the only reader
// and writer of pending, so no mutex protects it.
type Matchmaker struct {
	requests chan request
	active   *semaphore.Weighted
}

// New starts a Matchmaker backed by a request channel of depth queueSize,
// with at most maxActiveGames GameSessions running concurrently.
func New(queueSize int, maxActiveGames int64) *Matchmaker {
	m := &Matchmaker{
		requests: make(chan request, queueSize),
		active:   semaphore.NewWeighted(maxActiveGames),
	}
	go m.run()
	return m
}

// Enqueue joins the matchmaking queue. It blocks only until the run loop's
// request channel accepts the request, or returns ctx's error if ctx is
// done first. The returned channel receives the formed GameSession once
// the player has been paired; each of the two paired players gets the
// same session on their own channel.
func (m *Matchmaker) Enqueue(ctx context.Context, player PlayerID) (<-chan *GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make(chan *GameSession, 1)
	select {
	case m.requests <- request{ctx: ctx, player: player, result: result}:
		return result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns one slot to the active-game semaphore. Call it exactly
// once per GameSession, when that session ends.
func (m *Matchmaker) Release() {
	m.active.Release(1)
}

// run is the sole owner of pending: one goroutine pairs requests FIFO, so
// the queue itself never needs a lock. A new session only starts once the
// active-game semaphore grants a slot, mirroring the teacher's
// initSemaphore.Acquire(context.TODO(), 1) pattern in search.Search —
// except the Acquire here is bound to the most recently arrived request's
// ctx, so a caller giving up while the pairing is waiting on a slot
// actually unblocks it instead of waiting on a background context forever.
func (m *Matchmaker) run() {
	var pending *request

	for req := range m.requests {
		req := req
		if pending == nil {
			pending = &req
			continue
		}

		opponent := pending
		pending = nil

		if err := m.active.Acquire(req.ctx, 1); err != nil {
			out.Warningf("acquire canceled while pairing %s vs %s: %v", opponent.player, req.player, err)
			pending = opponent
			continue
		}

		session := newGameSession(opponent.player, req.player)
		out.Infof("matched %s vs %s into game %s", opponent.player, req.player, session.ID)

		opponent.result <- session
		req.result <- session
	}
}
