/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package server implements the TCP front end: one goroutine per
// connection frames incoming bytes with protocol.PacketFramer and
// dispatches to the matchmaker or to the connection's own GameState,
// mirroring the teacher's uci.UciHandler split between a blocking Loop
// and a directly testable packet handler (see HandlePacket).
package server

import (
	"context"
	"io"
	"net"
	"sync"
	"time"

	"github.com/frankkopp/chessd/internal/config"
	"github.com/frankkopp/chessd/internal/logging"
	"github.com/frankkopp/chessd/internal/matchmaker"
	"github.com/frankkopp/chessd/internal/protocol"
	. "github.com/frankkopp/chessd/internal/types"
	"github.com/frankkopp/chessd/internal/util"
)

var out = logging.GetLog()
var protoLog = logging.GetProtocolLog()

// Server accepts TCP connections and pairs them via its Matchmaker.
type Server struct {
	Matchmaker *matchmaker.Matchmaker

	pending  sync.Map // matchmaker.GameID -> *Session, the half waiting for its opponent's connection to register
	shutdown *util.Bool
	listener net.Listener
}

// New returns a Server backed by the given Matchmaker.
func New(mm *matchmaker.Matchmaker) *Server {
	return &Server{Matchmaker: mm, shutdown: util.NewBool(false)}
}

// Shutdown marks the server as stopping and closes its listener, which
// unblocks Accept in ListenAndServe with an error that is then swallowed
// as a clean exit. In-flight connections are unaffected; they drain on
// their own once their peer disconnects.
func (s *Server) Shutdown() {
	if s.shutdown.Swap(true) {
		return
	}
	if s.listener != nil {
		s.listener.Close()
	}
}

// ListenAndServe binds addr and runs the accept loop until Shutdown is
// called or the listener errors for another reason.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = ln
	defer ln.Close()
	out.Infof("listening on %s", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.shutdown.Load() {
				return nil
			}
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	player := matchmaker.NewPlayerID()
	out.Infof("connection from %s accepted as player %s", conn.RemoteAddr(), player)

	ch, err := s.Matchmaker.Enqueue(context.Background(), player)
	if err != nil {
		out.Errorf("enqueue failed for player %s: %v", player, err)
		return
	}

	gameSession := <-ch
	color, _ := gameSession.ColorOf(player)

	sess := &Session{
		Player: player,
		Color:  color,
		Game:   gameSession,
		Send: func(pkt protocol.Packet) {
			writePacket(conn, pkt)
		},
	}
	s.link(gameSession.ID, sess)
	// One active-game slot per GameSession: the White seat's connection
	// returns it.
	if color == White {
		defer s.Matchmaker.Release()
	}

	framer := protocol.NewPacketFramer()
	buf := make([]byte, 4096)
	for {
		if secs := config.Settings.Server.ReadTimeoutSeconds; secs > 0 {
			conn.SetReadDeadline(time.Now().Add(time.Duration(secs) * time.Second))
		}
		n, err := conn.Read(buf)
		if err != nil {
			if err != io.EOF {
				out.Errorf("read error from player %s: %v", player, err)
			}
			return
		}

		chunk := buf[:n]
		for {
			pkt, ok, err := framer.Push(chunk)
			chunk = nil // fed to the framer once; further iterations drain its buffer
			if err != nil {
				out.Errorf("malformed packet from player %s: %v", player, err)
				return
			}
			if !ok {
				break
			}
			protoLog.Debugf("%s -> %s %s", player, pkt.Type, pkt.Encoding)
			if pkt.Type == protocol.CloseConnection {
				return
			}
			response := HandlePacket(sess, pkt)
			writePacket(conn, response)
		}
	}
}

// link records sess under gameID until its opponent's handleConn goroutine
// registers too, at which point both Sessions are wired to each other.
func (s *Server) link(gameID matchmaker.GameID, sess *Session) {
	if peer, loaded := s.pending.LoadAndDelete(gameID); loaded {
		peerSess := peer.(*Session)
		peerSess.Opponent = sess
		sess.Opponent = peerSess
		return
	}
	s.pending.Store(gameID, sess)
}

func writePacket(conn net.Conn, pkt protocol.Packet) {
	wire, err := protocol.EncodePacket(pkt)
	if err != nil {
		out.Errorf("failed to encode outgoing packet: %v", err)
		return
	}
	if _, err := conn.Write(wire); err != nil {
		out.Errorf("write error: %v", err)
		return
	}
	protoLog.Debugf("%s <- %s %s", conn.RemoteAddr(), pkt.Type, pkt.Encoding)
}
