package keyring

import (
	"errors"
	"testing"
)

func TestNewKeyringDefaults(t *testing.T) {
	k := NewKeyring()
	if k.AppName != "pwrsched" {
		t.Errorf("AppName = %q; want pwrsched", k.AppName)
	}
	if k.KeyField != "rpc-token" {
		t.Errorf("KeyField = %q; want rpc-token", k.KeyField)
	}
}

func TestSetTokenStoresHex(t *testing.T) {
	origSet, origRand := keyringSet, randRead
	defer func() { keyringSet, randRead = origSet, origRand }()

	var stored string
	keyringSet = func(service, user, password string) error {
		if service != "pwrsched" || user != "rpc-token" {
			t.Errorf("stored under %q/%q", service, user)
		}
		stored = password
		return nil
	}

	k := NewKeyring()
	token, err := k.SetToken()
	if err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if token != stored {
		t.Errorf("returned token %q differs from stored %q", token, stored)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d; want 64 hex chars", len(token))
	}
}

func TestSetTokenRandFailure(t *testing.T) {
	origRand := randRead
	defer func() { randRead = origRand }()

	randRead = func(b []byte) (int, error) { return 0, errors.New("entropy exhausted") }
	if _, err := NewKeyring().SetToken(); err == nil {
		t.Fatal("expected error when random source fails")
	}
}

func TestGetTokenPassthrough(t *testing.T) {
	origGet := keyringGet
	defer func() { keyringGet = origGet }()

	keyringGet = func(service, user string) (string, error) { return "stored-token", nil }
	token, err := NewKeyring().GetToken()
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if token != "stored-token" {
		t.Errorf("token = %q; want stored-token", token)
	}
}

func TestDeleteTokenPassthrough(t *testing.T) {
	origDelete := keyringDelete
	defer func() { keyringDelete = origDelete }()

	called := false
	keyringDelete = func(service, user string) error {
		called = true
		return nil
	}
	if err := NewKeyring().DeleteToken(); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if !called {
		t.Error("keyring delete was not invoked")
	}
}
