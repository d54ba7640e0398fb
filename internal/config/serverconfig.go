/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package config

// serverConfiguration is a data structure to hold the configuration of the
// TCP game server.
type serverConfiguration struct {
	// ListenAddr is the address the server binds to, e.g. ":4711".
	ListenAddr string

	// ReadTimeoutSeconds bounds how long a connection may go silent before
	// the server drops it. 0 disables the timeout.
	ReadTimeoutSeconds int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Server.ListenAddr = ":4711"
	Settings.Server.ReadTimeoutSeconds = 300
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupServer() {
	if Settings.Server.ListenAddr == "" {
		Settings.Server.ListenAddr = ":4711"
	}
}
