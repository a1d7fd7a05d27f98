package keyring

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileTokenStore(dir)

	token, err := fs.SetToken()
	if err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d; want 64 hex chars", len(token))
	}

	got, err := fs.GetToken()
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if got != token {
		t.Errorf("GetToken = %q; want %q", got, token)
	}

	info, err := os.Stat(filepath.Join(dir, tokenFileName))
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != tokenFileMode {
		t.Errorf("token file mode = %o; want %o", perm, tokenFileMode)
	}
}

func TestFileTokenStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	fs := NewFileTokenStore(dir)
	if _, err := fs.SetToken(); err != nil {
		t.Fatalf("SetToken with missing dir: %v", err)
	}
}

func TestFileTokenStoreTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileTokenStore(dir)
	if err := os.WriteFile(fs.tokenPath(), []byte("  abc123\n"), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := fs.GetToken()
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if got != "abc123" {
		t.Errorf("GetToken = %q; want abc123", got)
	}
}

func TestFileTokenStoreEmptyFile(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileTokenStore(dir)
	if err := os.WriteFile(fs.tokenPath(), []byte("  \n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.GetToken(); err == nil || !strings.Contains(err.Error(), "empty token") {
		t.Fatalf("expected empty token error, got %v", err)
	}
}

func TestFileTokenStoreDelete(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileTokenStore(dir)
	if _, err := fs.SetToken(); err != nil {
		t.Fatal(err)
	}
	if err := fs.DeleteToken(); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if _, err := fs.GetToken(); err == nil {
		t.Fatal("expected error after delete")
	}
}

func TestFileTokenStoreMissing(t *testing.T) {
	fs := NewFileTokenStore(t.TempDir())
	if _, err := fs.GetToken(); err == nil {
		t.Fatal("expected error for missing token file")
	}
}
