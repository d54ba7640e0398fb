/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package server

import (
	"encoding/json"

	"github.com/frankkopp/chessd/internal/matchmaker"
	"github.com/frankkopp/chessd/internal/notation"
	"github.com/frankkopp/chessd/internal/protocol"
	. "github.com/frankkopp/chessd/internal/types"
)

// Session is one connected player's half of a GameSession. It holds no
// net.Conn directly — Send is a callback Server.handleConn wires to a
// framed socket write, so HandlePacket can be driven directly from tests
// without a real connection, mirroring uci.UciHandler.Command.
type Session struct {
	Player   matchmaker.PlayerID
	Color    Color
	Game     *matchmaker.GameSession
	Opponent *Session
	Send     func(protocol.Packet)
}

// HandlePacket dispatches one incoming packet to the session's game and
// returns the packet to send back to the sender. Packets meant for the
// opponent (MoveApplied, GameOver and draw-offer relays) are delivered
// during dispatch through s.Opponent.Send, when that is set.
func HandlePacket(s *Session, pkt protocol.Packet) protocol.Packet {
	switch pkt.Type {
	case protocol.LegalMovesQuery:
		return handleLegalMovesQuery(s, pkt)
	case protocol.MovePiece:
		return handleMovePiece(s, pkt)
	case protocol.Resign:
		return handleResign(s)
	case protocol.DrawOffer:
		return handleDrawOffer(s, protocol.DrawOffer)
	case protocol.DrawOfferAccept:
		return handleDrawOffer(s, protocol.DrawOfferAccept)
	case protocol.DrawOfferReject:
		return handleDrawOffer(s, protocol.DrawOfferReject)
	default:
		return errorPacket("unexpected packet type: " + pkt.Type.String())
	}
}

func handleLegalMovesQuery(s *Session, pkt protocol.Packet) protocol.Packet {
	var query LegalMovesQueryPayload
	if err := json.Unmarshal(pkt.Payload, &query); err != nil {
		return errorPacket(err.Error())
	}

	pm, ok := s.Game.Game.LegalMovesForPiece(Position{Row: query.Row, Column: query.Column})
	if !ok {
		return errorPacket("no piece of the side to move at that square")
	}

	return jsonPacket(protocol.LegalMovesResponse, LegalMovesResponsePayload{Piece: pm.Piece, Moves: pm.Moves})
}

func handleMovePiece(s *Session, pkt protocol.Packet) protocol.Packet {
	if s.Game.Game.CurrentPlayer() != s.Color {
		return errorPacket("it is not your turn")
	}

	var in MovePiecePayload
	if err := json.Unmarshal(pkt.Payload, &in); err != nil {
		return errorPacket(err.Error())
	}

	pm, ok := s.Game.Game.LegalMovesForPiece(in.Move.From)
	if !ok {
		return errorPacket("no piece of yours at that square")
	}
	legal := false
	for _, m := range pm.Moves {
		if m.Equal(in.Move) {
			legal = true
			break
		}
	}
	if !legal {
		return errorPacket("illegal move")
	}

	record := s.Game.Game.MakeMove(in.Move)
	applied := jsonPacket(protocol.MoveApplied, MoveAppliedPayload{Record: record, Notation: notation.Record(record)})

	if s.Opponent != nil && s.Opponent.Send != nil {
		s.Opponent.Send(applied)
	}

	if s.Game.Game.IsGameOver() {
		gameOver := jsonPacket(protocol.GameOver, gameOverPayload(s.Game.Game.Result()))
		if s.Opponent != nil && s.Opponent.Send != nil {
			s.Opponent.Send(gameOver)
		}
		return gameOver
	}

	return applied
}

func handleResign(s *Session) protocol.Packet {
	winner := s.Color.Opponent()
	pkt := jsonPacket(protocol.GameOver, GameOverPayload{Winner: &winner, Reason: "Resignation"})
	if s.Opponent != nil && s.Opponent.Send != nil {
		s.Opponent.Send(pkt)
	}
	return pkt
}

// handleDrawOffer only relays between the two session goroutines of one
// GameSession: the server never itself decides whether a draw is
// accepted, per spec.md's Non-goals.
func handleDrawOffer(s *Session, t protocol.PacketType) protocol.Packet {
	relay := protocol.Packet{Type: t, Encoding: protocol.String, Payload: nil}
	if s.Opponent != nil && s.Opponent.Send != nil {
		s.Opponent.Send(relay)
	}
	return protocol.Packet{Type: t, Encoding: protocol.String, Payload: nil}
}

func jsonPacket(t protocol.PacketType, v interface{}) protocol.Packet {
	payload, err := json.Marshal(v)
	if err != nil {
		return errorPacket(err.Error())
	}
	return protocol.Packet{Type: t, Encoding: protocol.JSON, Payload: payload}
}

func errorPacket(message string) protocol.Packet {
	payload, _ := json.Marshal(ErrorPayload{Message: message})
	return protocol.Packet{Type: protocol.Error, Encoding: protocol.JSON, Payload: payload}
}
