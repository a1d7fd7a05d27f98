package keyring

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/zalando/go-keyring"

	"github.com/pwrsched/pwrsched/common"
)

// Keyring stores the daemon's RPC auth token in the operating system's
// native keyring service.
type Keyring struct {
	AppName  string
	KeyField string
}

var (
	keyringSet    = keyring.Set
	keyringGet    = keyring.Get
	keyringDelete = keyring.Delete
	randRead      = rand.Read
)

func NewKeyring() *Keyring {
	return &Keyring{
		AppName:  common.AppName,
		KeyField: "rpc-token",
	}
}

// SetToken generates a fresh random token, stores it in the keyring and
// returns it.
func (k *Keyring) SetToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := randRead(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)
	if err := keyringSet(k.AppName, k.KeyField, token); err != nil {
		return "", err
	}
	return token, nil
}

// GetToken retrieves the stored token.
func (k *Keyring) GetToken() (string, error) {
	return keyringGet(k.AppName, k.KeyField)
}

// DeleteToken removes the token from the keyring.
func (k *Keyring) DeleteToken() error {
	return keyringDelete(k.AppName, k.KeyField)
}
