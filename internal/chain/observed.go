package chain

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, chain model.Chain, err error, started time.Time)
	}
)

// ObservedClient wraps a Client with metrics instrumentation.
type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented client.
func NewObservedClient(client Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// Chain identifies the wrapped client's network.
func (o *ObservedClient) Chain() model.Chain {
	return o.client.Chain()
}

// HeadBlockNumber returns the remote head height.
func (o *ObservedClient) HeadBlockNumber(ctx context.Context) (number uint64, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("head_block_number", o.client.Chain(), err, started)
	}()
	return o.client.HeadBlockNumber(ctx)
}

// BlockByNumber returns the block at a height, nil when absent.
func (o *ObservedClient) BlockByNumber(ctx context.Context, number uint64) (block *model.Block, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("block_by_number", o.client.Chain(), err, started)
	}()
	return o.client.BlockByNumber(ctx, number)
}

// ClientVersion reports the remote node version.
func (o *ObservedClient) ClientVersion(ctx context.Context) (version string, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("client_version", o.client.Chain(), err, started)
	}()
	return o.client.ClientVersion(ctx)
}
