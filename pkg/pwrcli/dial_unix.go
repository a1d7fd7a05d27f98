//go:build !windows

package pwrcli

import (
	"context"
	"fmt"
	"net"

	"github.com/pwrsched/pwrsched/common"
)

// dial establishes a connection to the daemon over its unix socket with
// TCP fallback. Transport priority: unix socket > TCP.
func dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: common.DefaultDialTimeout}
	if forceTCP() {
		debugLog("force TCP mode, connecting to %s", tcpAddress())
		return d.DialContext(ctx, "tcp", tcpAddress())
	}

	debugLog("attempting connection via unix socket at %s", socketPath())
	conn, unixErr := d.DialContext(ctx, "unix", socketPath())
	if unixErr != nil {
		debugLog("unix socket connection failed: %v, falling back to TCP", unixErr)
		conn, err := d.DialContext(ctx, "tcp", tcpAddress())
		if err != nil {
			return nil, fmt.Errorf("failed to connect: unix socket error: %v; tcp error: %w", unixErr, err)
		}
		debugLog("connected via TCP fallback to %s", tcpAddress())
		return conn, nil
	}
	debugLog("connected via unix socket")
	return conn, nil
}
