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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnqueue_PairsTwoPlayers(t *testing.T) {
	m := New(8, 4)
	ctx := context.Background()

	p1 := NewPlayerID()
	p2 := NewPlayerID()

	ch1, err := m.Enqueue(ctx, p1)
	assert.NoError(t, err)
	ch2, err := m.Enqueue(ctx, p2)
	assert.NoError(t, err)

	var s1, s2 *GameSession
	select {
	case s1 = <-ch1:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for player 1's session")
	}
	select {
	case s2 = <-ch2:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for player 2's session")
	}

	assert.Same(t, s1, s2)
	color1, ok := s1.ColorOf(p1)
	assert.True(t, ok)
	color2, ok := s1.ColorOf(p2)
	assert.True(t, ok)
	assert.NotEqual(t, color1, color2)
}

func TestEnqueue_ContextCancelled(t *testing.T) {
	m := New(0, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Enqueue(ctx, NewPlayerID())
	assert.Error(t, err)
}

// TestEnqueue_SecondPlayerContextUnblocksAcquire pins the active-game
// semaphore at one slot, exhausts it with a first pairing, then confirms
// canceling the stalled pairing's most-recent-arrival context unblocks its
// Acquire instead of hanging on a background context forever, and that the
// requeued opponent can still be paired once a slot frees up.
func TestEnqueue_SecondPlayerContextUnblocksAcquire(t *testing.T) {
	m := New(8, 1)

	aCh, err := m.Enqueue(context.Background(), NewPlayerID())
	assert.NoError(t, err)
	bCh, err := m.Enqueue(context.Background(), NewPlayerID())
	assert.NoError(t, err)
	select {
	case <-aCh:
	case <-time.After(time.Second):
		t.Fatal("first pairing never acquired the sole active-game slot")
	}
	<-bCh

	cCh, err := m.Enqueue(context.Background(), NewPlayerID())
	assert.NoError(t, err)
	ctxD, cancelD := context.WithCancel(context.Background())
	dCh, err := m.Enqueue(ctxD, NewPlayerID())
	assert.NoError(t, err)

	select {
	case <-cCh:
		t.Fatal("second pairing should not complete while the active-game slot is exhausted")
	case <-dCh:
		t.Fatal("second pairing should not complete while the active-game slot is exhausted")
	case <-time.After(100 * time.Millisecond):
	}

	cancelD()
	// let the run loop observe the cancellation before a slot frees up;
	// otherwise the pending Acquire may be granted the released slot.
	time.Sleep(50 * time.Millisecond)
	m.Release() // the first pairing's game ended, freeing its slot

	eCh, err := m.Enqueue(context.Background(), NewPlayerID())
	assert.NoError(t, err)

	select {
	case <-cCh:
	case <-time.After(time.Second):
		t.Fatal("player C was never paired after a slot became available")
	}
	select {
	case <-eCh:
	case <-time.After(time.Second):
		t.Fatal("player E was never paired after a slot became available")
	}
}
