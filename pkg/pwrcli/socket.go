package pwrcli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pwrsched/pwrsched/common"
)

func socketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), common.AppName+".sock")
}

// tcpPort returns the TCP fallback port from the environment or the default.
func tcpPort() int {
	if port := os.Getenv(common.TCPPortEnv); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			if p >= 1 && p <= 65535 {
				return p
			}
			debugLog("invalid TCP port %d, using default %d", p, common.DefaultTCPPort)
		}
	}
	return common.DefaultTCPPort
}

// forceTCP returns true if PWRSCHED_FORCE_TCP=1.
func forceTCP() bool {
	v := os.Getenv(common.ForceTCPEnv)
	return v == "1" || v == "true"
}

// debugMode returns true if PWRSCHED_DEBUG=1.
func debugMode() bool {
	return os.Getenv(common.DebugEnv) == "1"
}

func tcpAddress() string {
	return fmt.Sprintf("%s:%d", common.TCPHost, tcpPort())
}

// debugLog logs only when debug mode is on.
func debugLog(format string, args ...any) {
	if debugMode() {
		log.Printf(format, args...)
	}
}
