//go:build windows

package pwrcli

import (
	"context"
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"

	"github.com/pwrsched/pwrsched/common"
)

// dial establishes a connection to the daemon over its named pipe with
// TCP fallback. Transport priority: named pipe > TCP.
func dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: common.DefaultDialTimeout}
	if forceTCP() {
		debugLog("force TCP mode, connecting to %s", tcpAddress())
		return d.DialContext(ctx, "tcp", tcpAddress())
	}

	pipePath := common.PipePath()
	debugLog("attempting connection via named pipe at %s", pipePath)
	dialCtx, cancel := context.WithTimeout(ctx, common.DefaultDialTimeout)
	defer cancel()
	conn, pipeErr := winio.DialPipeContext(dialCtx, pipePath)
	if pipeErr != nil {
		debugLog("named pipe connection failed: %v, falling back to TCP", pipeErr)
		conn, err := d.DialContext(ctx, "tcp", tcpAddress())
		if err != nil {
			return nil, fmt.Errorf("failed to connect: named pipe error: %v; tcp error: %w", pipeErr, err)
		}
		debugLog("connected via TCP fallback to %s", tcpAddress())
		return conn, nil
	}
	debugLog("connected via named pipe")
	return conn, nil
}
