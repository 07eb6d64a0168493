// Package bitcoin implements the chain client for bitcoin-style networks on
// top of btcd's rpcclient.
package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/rpcclient"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
	"github.com/goodnatureofminers/chainpulse7000-backend/pkg/safe"
)

// Client talks to a bitcoin node over its JSON-RPC interface. The btcd
// client is not context-aware; a stalled call occupies only its own job.
type Client struct {
	chain model.Chain
	rpc   *rpcclient.Client
}

// Dial connects to a bitcoin RPC endpoint. Only plain http endpoints are
// supported, matching the node's default JSON-RPC transport.
func Dial(chain model.Chain, rawURL, user, password string) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse %s rpc url: %w", chain, err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("%s rpc url scheme %q not supported, use http", chain, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%s rpc url missing host", chain)
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	rpc, err := rpcclient.New(cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("init %s rpc client: %w", chain, err)
	}
	return &Client{chain: chain, rpc: rpc}, nil
}

// Chain identifies the network this client is bound to.
func (c *Client) Chain() model.Chain {
	return c.chain
}

// HeadBlockNumber returns the node's block count.
func (c *Client) HeadBlockNumber(_ context.Context) (uint64, error) {
	count, err := c.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get %s block count: %w", c.chain, err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("%s block count: %w", c.chain, err)
	}
	return height, nil
}

// BlockByNumber returns the block at a height, or nil when the node does not
// have the height yet.
func (c *Client) BlockByNumber(_ context.Context, number uint64) (*model.Block, error) {
	if number > math.MaxInt64 {
		return nil, fmt.Errorf("%s height %d exceeds rpc limit", c.chain, number)
	}

	hash, err := c.rpc.GetBlockHash(int64(number))
	if isOutOfRange(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s block hash at %d: %w", c.chain, number, err)
	}

	verbose, err := c.rpc.GetBlockVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get %s block %s: %w", c.chain, hash, err)
	}

	return verboseToBlock(c.chain, number, verbose)
}

// ClientVersion reports the node's advertised subversion.
func (c *Client) ClientVersion(_ context.Context) (string, error) {
	info, err := c.rpc.GetNetworkInfo()
	if err != nil {
		return "", fmt.Errorf("get %s network info: %w", c.chain, err)
	}
	return info.SubVersion, nil
}

// Shutdown tears down the RPC connection.
func (c *Client) Shutdown() {
	c.rpc.Shutdown()
	c.rpc.WaitForShutdown()
}

// isOutOfRange reports whether err is the node rejecting a height above its
// current tip. btcd answers ErrRPCOutOfRange, bitcoind answers
// ErrRPCInvalidParameter ("Block height out of range").
func isOutOfRange(err error) bool {
	var rpcErr *btcjson.RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	return rpcErr.Code == btcjson.ErrRPCOutOfRange || rpcErr.Code == btcjson.ErrRPCInvalidParameter
}

func verboseToBlock(chain model.Chain, number uint64, verbose *btcjson.GetBlockVerboseResult) (*model.Block, error) {
	timestamp, err := safe.Uint64(verbose.Time)
	if err != nil {
		return nil, fmt.Errorf("%s block %d timestamp: %w", chain, number, err)
	}
	return &model.Block{
		Chain:       chain,
		BlockNumber: number,
		Timestamp:   timestamp,
		NumTxs:      uint64(len(verbose.Tx)),
		Hash:        verbose.Hash,
		ParentHash:  verbose.PreviousHash,
	}, nil
}
