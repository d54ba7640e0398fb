/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := Packet{Type: MovePiece, Encoding: JSON, Payload: []byte(`{"from":{"Row":6,"Column":4}}`)}

	wire, err := EncodePacket(p)
	assert.NoError(t, err)
	assert.Equal(t, Version, wire[0])

	decoded, err := DecodePacket(wire)
	assert.NoError(t, err)
	assert.Equal(t, p.Type, decoded.Type)
	assert.Equal(t, p.Encoding, decoded.Encoding)
	assert.Equal(t, p.Payload, decoded.Payload)
}

func TestDecodePacket_VersionMismatch(t *testing.T) {
	wire := []byte{99, 0, 0, 0}
	_, err := DecodePacket(wire)
	assert.True(t, errors.Is(err, ErrVersionMismatch))
}

func TestDecodePacket_ShortHeader(t *testing.T) {
	_, err := DecodePacket([]byte{Version, 0})
	assert.True(t, errors.Is(err, ErrShortHeader))
}

func TestDecodePacket_IncompletePacket(t *testing.T) {
	wire, err := EncodePacket(Packet{Type: Resign, Encoding: String, Payload: []byte("resign")})
	assert.NoError(t, err)

	_, err = DecodePacket(wire[:len(wire)-1])
	assert.True(t, errors.Is(err, ErrIncompletePacket))
}

func TestEncodePacket_PayloadTooLarge(t *testing.T) {
	_, err := EncodePacket(Packet{Payload: make([]byte, MaxPacketSize)})
	assert.True(t, errors.Is(err, ErrPayloadTooLarge))
}

func TestPacketFramer_SplitAcrossPushes(t *testing.T) {
	p := Packet{Type: Resign, Encoding: String, Payload: []byte("resign")}
	wire, err := EncodePacket(p)
	assert.NoError(t, err)

	framer := NewPacketFramer()

	_, ok, err := framer.Push(wire[:2])
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = framer.Push(wire[2:5])
	assert.NoError(t, err)
	assert.False(t, ok)

	decoded, ok, err := framer.Push(wire[5:])
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Resign, decoded.Type)
	assert.Equal(t, []byte("resign"), decoded.Payload)
}

func TestPacketFramer_TwoPacketsInOnePush(t *testing.T) {
	p1, _ := EncodePacket(Packet{Type: DrawOffer, Encoding: String, Payload: nil})
	p2, _ := EncodePacket(Packet{Type: DrawOfferAccept, Encoding: String, Payload: nil})

	framer := NewPacketFramer()
	first, ok, err := framer.Push(append(p1, p2...))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, DrawOffer, first.Type)

	second, ok, err := framer.Push(nil)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, DrawOfferAccept, second.Type)
}
