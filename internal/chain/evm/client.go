// Package evm implements the chain client for EVM-style networks
// (ethereum, polygon, avalanche) on top of go-ethereum's ethclient.
package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

// defaultRPS caps request rate against public RPC gateways.
const defaultRPS = 20

// Client talks to one EVM-style chain over JSON-RPC.
type Client struct {
	chain model.Chain
	eth   *ethclient.Client
	rpc   *rpc.Client
	rl    ratelimit.Limiter
}

// Dial connects to an EVM JSON-RPC endpoint.
func Dial(ctx context.Context, chain model.Chain, rawURL string) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s rpc: %w", chain, err)
	}
	return &Client{
		chain: chain,
		eth:   ethclient.NewClient(rpcClient),
		rpc:   rpcClient,
		rl:    ratelimit.New(defaultRPS),
	}, nil
}

// Chain identifies the network this client is bound to.
func (c *Client) Chain() model.Chain {
	return c.chain
}

// HeadBlockNumber returns the remote head height.
func (c *Client) HeadBlockNumber(ctx context.Context) (uint64, error) {
	c.rl.Take()
	number, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get %s block number: %w", c.chain, err)
	}
	return number, nil
}

// BlockByNumber returns the header at a height converted to the uniform
// block model, or nil when the node does not have the block yet.
func (c *Client) BlockByNumber(ctx context.Context, number uint64) (*model.Block, error) {
	c.rl.Take()
	header, err := c.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s header %d: %w", c.chain, number, err)
	}

	c.rl.Take()
	txCount, err := c.eth.TransactionCount(ctx, header.Hash())
	if err != nil {
		return nil, fmt.Errorf("get %s block %d transaction count: %w", c.chain, number, err)
	}

	block := headerToBlock(c.chain, header, uint64(txCount))
	return &block, nil
}

// ClientVersion reports the remote node version string.
func (c *Client) ClientVersion(ctx context.Context) (string, error) {
	c.rl.Take()
	var version string
	if err := c.rpc.CallContext(ctx, &version, "web3_clientVersion"); err != nil {
		return "", fmt.Errorf("get %s client version: %w", c.chain, err)
	}
	return version, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

func headerToBlock(chain model.Chain, header *types.Header, txCount uint64) model.Block {
	return model.Block{
		Chain:       chain,
		BlockNumber: header.Number.Uint64(),
		Timestamp:   header.Time,
		NumTxs:      txCount,
		Hash:        header.Hash().Hex(),
		ParentHash:  header.ParentHash.Hex(),
	}
}
