// Package common provides shared constants and wire types used across the
// pwrsched client-server communication layer.
package common

import "time"

const (
	// AppName is the canonical application name used for sockets, pipes and
	// keyring entries.
	AppName = "pwrsched"

	// TCPHost is the host used for TCP fallback connections.
	TCPHost = "127.0.0.1"

	// DefaultTCPPort is the TCP fallback port the daemon listens on when the
	// local socket transport is unavailable.
	DefaultTCPPort = 3042

	// DefaultDialTimeout is the maximum time a client waits when connecting
	// to the daemon.
	DefaultDialTimeout = 5 * time.Second

	// RPCPath is the HTTP path serving the JSON-RPC bridge.
	RPCPath = "/rpc"

	// EventsPath is the HTTP path serving the websocket event feed.
	EventsPath = "/events"
)
