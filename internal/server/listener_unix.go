//go:build !windows

package server

import (
	"fmt"
	"net"
	"os"

	"github.com/pwrsched/pwrsched/common"
)

// createListener creates a unix socket listener with TCP fallback.
// Transport priority: unix socket > TCP.
func (s *Server) createListener() (net.Listener, error) {
	if forceTCP() {
		s.log.Info("server: force TCP mode enabled")
		return net.Listen("tcp", fmt.Sprintf("%s:%d", common.TCPHost, tcpPort(s.port)))
	}

	path := socketPath()
	_ = os.Remove(path)
	l, err := net.ListenUnix("unix", &net.UnixAddr{
		Name: path,
		Net:  "unix",
	})
	if err != nil {
		s.log.Warning("server: unix socket unavailable: %v", err)
		s.log.Warning("server: falling back to tcp")
		tcpListener, tcpErr := net.Listen("tcp", fmt.Sprintf("%s:%d", common.TCPHost, tcpPort(s.port)))
		if tcpErr != nil {
			return nil, fmt.Errorf("error listening: %w", tcpErr)
		}
		return tcpListener, nil
	}
	_ = os.Chmod(path, 0700)
	return l, nil
}

func cleanupSocket() {
	path := socketPath()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return
	}
}
