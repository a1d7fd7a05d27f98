package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// dummyHandler returns 200 OK for testing the auth middleware.
var dummyHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

func TestRequireToken_ValidToken(t *testing.T) {
	secret := "test-secret-12345"
	handler := requireToken(secret, dummyHandler)

	req := httptest.NewRequest(http.MethodPost, "/rpc", nil)
	req.Header.Set("Authorization", "Bearer "+secret)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Fatalf("expected 'ok' body, got %q", rr.Body.String())
	}
}

func TestRequireToken_MissingToken(t *testing.T) {
	handler := requireToken("test-secret-12345", dummyHandler)

	req := httptest.NewRequest(http.MethodPost, "/rpc", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["jsonrpc"] != "2.0" {
		t.Errorf("expected jsonrpc 2.0 error body, got %v", resp)
	}
}

func TestRequireToken_WrongToken(t *testing.T) {
	handler := requireToken("right", dummyHandler)

	req := httptest.NewRequest(http.MethodPost, "/rpc", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestValidToken(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   bool
	}{
		{"exact match", "s3cret", "Bearer s3cret", true},
		{"empty secret rejects all", "", "Bearer anything", false},
		{"missing bearer prefix", "s3cret", "s3cret", false},
		{"wrong token", "s3cret", "Bearer other", false},
		{"empty header", "s3cret", "", false},
		{"lowercase prefix", "s3cret", "bearer s3cret", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := validToken(tc.secret, tc.header); got != tc.want {
				t.Errorf("validToken(%q, %q) = %v; want %v", tc.secret, tc.header, got, tc.want)
			}
		})
	}
}
