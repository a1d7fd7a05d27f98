//go:build windows

package server

import (
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"

	"github.com/pwrsched/pwrsched/common"
)

// pipeSecurityDescriptor restricts pipe access to:
// - SYSTEM: full control (for service scenarios)
// - Built-in Administrators: full control
// - Creator Owner: full control (the user running the daemon)
const pipeSecurityDescriptor = "D:(A;;GA;;;SY)(A;;GA;;;BA)(A;;GA;;;CO)"

// createListener creates a Windows named pipe listener with TCP fallback.
// Transport priority: named pipe > TCP.
func (s *Server) createListener() (net.Listener, error) {
	if forceTCP() {
		s.log.Info("server: force TCP mode enabled")
		return net.Listen("tcp", fmt.Sprintf("%s:%d", common.TCPHost, tcpPort(s.port)))
	}

	cfg := &winio.PipeConfig{
		SecurityDescriptor: pipeSecurityDescriptor,
	}
	l, err := winio.ListenPipe(common.PipePath(), cfg)
	if err != nil {
		s.log.Warning("server: named pipe creation failed: %v", err)
		s.log.Warning("server: falling back to tcp (firewall prompts may occur)")
		tcpListener, tcpErr := net.Listen("tcp", fmt.Sprintf("%s:%d", common.TCPHost, tcpPort(s.port)))
		if tcpErr != nil {
			return nil, fmt.Errorf("error listening: %w", tcpErr)
		}
		return tcpListener, nil
	}
	return l, nil
}

// cleanupSocket is a no-op on Windows; the pipe disappears with its
// last handle.
func cleanupSocket() {}
