package common

// Environment variable names for configuration.
const (
	// SocketPathEnv overrides the unix socket path the daemon listens on.
	SocketPathEnv = "PWRSCHED_SOCKET_PATH"

	// PipeNameEnv overrides the Windows named pipe name.
	PipeNameEnv = "PWRSCHED_PIPE_NAME"

	// TCPPortEnv overrides the TCP fallback port.
	TCPPortEnv = "PWRSCHED_TCP_PORT"

	// ForceTCPEnv forces the TCP transport even when a local socket or
	// named pipe would be available.
	ForceTCPEnv = "PWRSCHED_FORCE_TCP"

	// DataDirEnv overrides the directory holding the userdata and history
	// files.
	DataDirEnv = "PWRSCHED_DATA_DIR"

	// AuthTokenEnv supplies the RPC auth token directly, bypassing the
	// OS keyring. Intended for headless and test environments.
	AuthTokenEnv = "PWRSCHED_AUTH_TOKEN"

	// DebugEnv enables debug logging in the client.
	DebugEnv = "PWRSCHED_DEBUG"
)
