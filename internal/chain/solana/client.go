// Package solana implements the chain client for Solana-style networks over
// plain JSON-RPC. Slots stand in for block numbers; a skipped or
// not-yet-confirmed slot reports the block as absent.
package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

// Skipped/missing slot error codes returned by getBlock.
const (
	codeSlotSkipped       = -32007
	codeLongTermSkipped   = -32009
	codeBlockNotAvailable = -32004
)

// Client talks to a Solana JSON-RPC endpoint.
type Client struct {
	chain    model.Chain
	endpoint string
	http     *http.Client
}

// New builds a Solana client for the endpoint.
func New(chain model.Chain, endpoint string) *Client {
	return &Client{
		chain:    chain,
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Chain identifies the network this client is bound to.
func (c *Client) Chain() model.Chain {
	return c.chain
}

// HeadBlockNumber returns the current slot.
func (c *Client) HeadBlockNumber(ctx context.Context) (uint64, error) {
	raw, rpcErr, err := c.call(ctx, "getSlot", []any{map[string]string{"commitment": "finalized"}})
	if err != nil {
		return 0, err
	}
	if rpcErr != nil {
		return 0, fmt.Errorf("%s getSlot: %w", c.chain, rpcErr)
	}

	var slot uint64
	if err := json.Unmarshal(raw, &slot); err != nil {
		return 0, fmt.Errorf("decode %s slot: %w", c.chain, err)
	}
	return slot, nil
}

// BlockByNumber returns the block at a slot, or nil for skipped or
// not-yet-available slots.
func (c *Client) BlockByNumber(ctx context.Context, number uint64) (*model.Block, error) {
	params := []any{number, map[string]any{
		"transactionDetails":             "signatures",
		"rewards":                        false,
		"maxSupportedTransactionVersion": 0,
	}}
	raw, rpcErr, err := c.call(ctx, "getBlock", params)
	if err != nil {
		return nil, err
	}
	if rpcErr != nil {
		switch rpcErr.Code {
		case codeSlotSkipped, codeLongTermSkipped, codeBlockNotAvailable:
			return nil, nil
		}
		return nil, fmt.Errorf("%s getBlock %d: %w", c.chain, number, rpcErr)
	}

	return parseBlock(c.chain, number, raw)
}

// ClientVersion reports the solana-core version of the node.
func (c *Client) ClientVersion(ctx context.Context) (string, error) {
	raw, rpcErr, err := c.call(ctx, "getVersion", []any{})
	if err != nil {
		return "", err
	}
	if rpcErr != nil {
		return "", fmt.Errorf("%s getVersion: %w", c.chain, rpcErr)
	}

	var version struct {
		SolanaCore string `json:"solana-core"`
	}
	if err := json.Unmarshal(raw, &version); err != nil {
		return "", fmt.Errorf("decode %s version: %w", c.chain, err)
	}
	return version.SolanaCore, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params any) (json.RawMessage, *rpcError, error) {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return nil, nil, fmt.Errorf("encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("post %s to %s: %w", method, c.chain, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("post %s to %s: unexpected status %d", method, c.chain, resp.StatusCode)
	}

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	return decoded.Result, decoded.Error, nil
}

type blockResult struct {
	Blockhash         string   `json:"blockhash"`
	PreviousBlockhash string   `json:"previousBlockhash"`
	BlockTime         *int64   `json:"blockTime"`
	Signatures        []string `json:"signatures"`
}

func parseBlock(chain model.Chain, slot uint64, raw json.RawMessage) (*model.Block, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var decoded blockResult
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode %s block %d: %w", chain, slot, err)
	}
	if decoded.BlockTime == nil || *decoded.BlockTime < 0 {
		// Without a usable timestamp the block cannot enter the TPS
		// window; report it as not yet available.
		return nil, nil
	}

	return &model.Block{
		Chain:       chain,
		BlockNumber: slot,
		Timestamp:   uint64(*decoded.BlockTime),
		NumTxs:      uint64(len(decoded.Signatures)),
		Hash:        decoded.Blockhash,
		ParentHash:  decoded.PreviousBlockhash,
	}, nil
}
