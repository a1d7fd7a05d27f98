// Package keyring provides token storage using the operating system's
// native keyring service with automatic fallback to file-based storage.
package keyring

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenFileName = "rpc.token"
	tokenFileMode = 0600
)

// FileTokenStore provides file-based token storage as a fallback when the
// system keyring is unavailable. Tokens are stored with 0600 permissions.
type FileTokenStore struct {
	configDir string
}

var (
	fileRandRead = rand.Read
	fileReadFile = os.ReadFile
	fileRemove   = os.Remove
	fileRename   = os.Rename
	fileMkdirAll = os.MkdirAll
	fileTempFile = os.CreateTemp
)

// NewFileTokenStore creates a FileTokenStore rooted at configDir. The
// directory must exist or be creatable.
func NewFileTokenStore(configDir string) *FileTokenStore {
	return &FileTokenStore{configDir: configDir}
}

func (f *FileTokenStore) tokenPath() string {
	return filepath.Join(f.configDir, tokenFileName)
}

// SetToken generates a fresh random token and writes it atomically via a
// temp file and rename, so an interrupted process never leaves a partial
// token behind.
func (f *FileTokenStore) SetToken() (string, error) {
	if err := fileMkdirAll(f.configDir, 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := fileRandRead(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(raw)

	tmpFile, err := fileTempFile(f.configDir, ".rpc.token.tmp.*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.WriteString(token); err != nil {
		tmpFile.Close()
		fileRemove(tmpPath)
		return "", fmt.Errorf("write token: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		fileRemove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, tokenFileMode); err != nil {
		fileRemove(tmpPath)
		return "", fmt.Errorf("set permissions: %w", err)
	}
	if err := fileRename(tmpPath, f.tokenPath()); err != nil {
		fileRemove(tmpPath)
		return "", fmt.Errorf("rename token file: %w", err)
	}
	return token, nil
}

// GetToken reads the stored token. Surrounding whitespace is trimmed so a
// hand-edited file still works.
func (f *FileTokenStore) GetToken() (string, error) {
	data, err := fileReadFile(f.tokenPath())
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("empty token file %s", f.tokenPath())
	}
	return token, nil
}

// DeleteToken removes the token file.
func (f *FileTokenStore) DeleteToken() error {
	return fileRemove(f.tokenPath())
}
