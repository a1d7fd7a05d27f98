package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pwrsched/pwrsched/common"
	"github.com/pwrsched/pwrsched/pkg/credman/keyring"
	"github.com/pwrsched/pwrsched/pkg/pwrcli"
)

const requestTimeout = 10 * time.Second

// resolveToken finds the RPC auth token the daemon issued: environment
// override first, then the OS keyring, then the file fallback in the
// data directory.
func resolveToken() (string, error) {
	if token := os.Getenv(common.AuthTokenEnv); token != "" {
		return token, nil
	}
	if token, err := keyring.NewKeyring().GetToken(); err == nil && token != "" {
		return token, nil
	}
	dir := os.Getenv(common.DataDirEnv)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, common.AppName)
	}
	if token, err := keyring.NewFileTokenStore(dir).GetToken(); err == nil {
		return token, nil
	}
	return "", fmt.Errorf("no auth token found; is the daemon running?")
}

// getClient builds a daemon client with the resolved auth token.
func getClient() (*pwrcli.Client, error) {
	token, err := resolveToken()
	if err != nil {
		return nil, err
	}
	return pwrcli.NewClient(token), nil
}

// reqContext returns the standard per-request context.
func reqContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
