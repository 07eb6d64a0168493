// Package service contains the import, calculation and scheduling pipelines.
package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainClient reads the remote chain state for one chain.
	ChainClient interface {
		HeadBlockNumber(ctx context.Context) (uint64, error)
		// BlockByNumber returns (nil, nil) when the block is not available
		// yet, which is distinct from a request failure.
		BlockByNumber(ctx context.Context, number uint64) (*model.Block, error)
	}

	// BlockStore persists block history, head pointers and TPS values.
	BlockStore interface {
		HighestBlockNumber(ctx context.Context, chain model.Chain) (uint64, bool, error)
		StoreHighestBlockNumber(ctx context.Context, chain model.Chain, number uint64) error
		Block(ctx context.Context, chain model.Chain, number uint64) (*model.Block, error)
		StoreBlock(ctx context.Context, block model.Block) error
		StoreTPS(ctx context.Context, chain model.Chain, tps float64) error
	}

	ImporterMetrics interface {
		ObservePass(err error, started time.Time)
		ObserveBlockStored()
		ObserveReorg()
	}

	CalculatorMetrics interface {
		ObserveRun(chain model.Chain, err error, started time.Time)
		SetTPS(chain model.Chain, tps float64)
	}

	// ImportRunner is one chain's import job as the scheduler sees it.
	ImportRunner interface {
		Run(ctx context.Context) error
	}

	// CalculateRunner is the TPS calculation job as the scheduler sees it.
	CalculateRunner interface {
		Run(ctx context.Context) error
	}
)
