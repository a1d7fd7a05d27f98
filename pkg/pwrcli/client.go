// Package pwrcli is the client library for the pwrsched daemon. It speaks
// JSON-RPC 2.0 over the daemon's local transport (unix socket, named pipe
// or TCP fallback) and exposes typed wrappers for every method.
package pwrcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/pwrsched/pwrsched/common"
)

// virtualHost is a placeholder authority; the transport dials the local
// socket regardless of the URL host.
const virtualHost = "pwrsched"

// Client is a connection to the daemon's RPC endpoint. It is safe for
// concurrent use.
type Client struct {
	httpc  *http.Client
	base   string
	token  string
	nextID atomic.Int64
}

// NewClient returns a client authenticating with the given token.
func NewClient(token string) *Client {
	transport := &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			return dial(ctx)
		},
	}
	return &Client{
		httpc: &http.Client{Transport: transport},
		base:  "http://" + virtualHost,
		token: token,
	}
}

// RPCError is a JSON-RPC error returned by the daemon.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// call performs one JSON-RPC exchange.
func (c *Client) call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(&rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+common.RPCPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", method, err)
	}

	var rr rpcResponse
	if err := json.Unmarshal(data, &rr); err != nil {
		return nil, fmt.Errorf("%s: decode response (http %d): %w", method, resp.StatusCode, err)
	}
	if rr.Error != nil {
		return nil, rr.Error
	}
	return rr.Result, nil
}

// invoke calls method and unmarshals the result into T.
func invoke[T any](ctx context.Context, c *Client, method string, params any) (*T, error) {
	raw, err := c.call(ctx, method, params)
	if err != nil {
		return nil, err
	}
	var out T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("%s: decode result: %w", method, err)
		}
	}
	return &out, nil
}
