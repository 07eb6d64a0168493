// Package chain defines the uniform client capability each protocol family
// implements for the importer and calculator.
package chain

import (
	"context"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

// Client is the per-chain capability the importer runs against. One
// implementation exists per protocol family; everything above it is written
// entirely against this interface.
type Client interface {
	// Chain identifies the network this client is bound to.
	Chain() model.Chain
	// HeadBlockNumber returns the remote head height.
	HeadBlockNumber(ctx context.Context) (uint64, error)
	// BlockByNumber returns the block at the given height, or (nil, nil)
	// when the remote does not have it yet. Absence is a normal outcome,
	// distinct from failure.
	BlockByNumber(ctx context.Context, number uint64) (*model.Block, error)
	// ClientVersion reports the remote node version. Diagnostic only.
	ClientVersion(ctx context.Context) (string, error)
}
