package server

import (
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

func forceTCP() bool {
	v := os.Getenv(common.ForceTCPEnv)
	return v == "1" || v == "true"
}

// tcpPort resolves the fallback port, preferring the environment
// override over the configured value.
func tcpPort(configured int) int {
	if v := os.Getenv(common.TCPPortEnv); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			return p
		}
	}
	if configured > 0 {
		return configured
	}
	return common.DefaultTCPPort
}
