package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
	"github.com/goodnatureofminers/chainpulse7000-backend/pkg/safe"
	"github.com/goodnatureofminers/chainpulse7000-backend/pkg/workerpool"
)

const (
	// tpsWindowSeconds bounds the TPS estimate to the trailing week.
	tpsWindowSeconds uint64 = 7 * 24 * 60 * 60

	calculateWorkerCount = 4
)

// CalculatorService derives a rolling transactions-per-second estimate per
// chain from the locally imported history. Chains are calculated
// concurrently and one chain's failure never blocks the others.
type CalculatorService struct {
	logger  *zap.Logger
	chains  []model.Chain
	store   BlockStore
	metrics CalculatorMetrics
	workers int
	sleep   func(context.Context, time.Duration) error
}

// NewCalculatorService builds a CalculatorService with dependencies.
func NewCalculatorService(
	chains []model.Chain,
	store BlockStore,
	metrics CalculatorMetrics,
	logger *zap.Logger,
) (*CalculatorService, error) {
	if metrics == nil {
		return nil, errors.New("calculator metrics is required")
	}
	if len(chains) == 0 {
		return nil, errors.New("at least one chain is required")
	}
	return &CalculatorService{
		logger:  logger,
		chains:  chains,
		store:   store,
		metrics: metrics,
		workers: calculateWorkerCount,
		sleep:   jitteredSleep,
	}, nil
}

// Run calculates and persists TPS for every chain, then waits out the
// recalculation delay. Per-chain failures are logged and swallowed so a
// broken chain cannot starve the rest of the cycle.
func (s *CalculatorService) Run(ctx context.Context) error {
	results := workerpool.Gather(ctx, s.workers, s.chains, s.calculateChain)
	for i, err := range results {
		if err != nil {
			s.logger.Error("tps calculation failed",
				zap.String("chain", string(s.chains[i])),
				zap.Error(err))
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.sleep(ctx, recalculateDelay)
}

func (s *CalculatorService) calculateChain(ctx context.Context, chain model.Chain) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRun(chain, err, started)
	}()

	tps, err := s.chainTPS(ctx, chain)
	if err != nil {
		return err
	}
	if err = s.store.StoreTPS(ctx, chain, tps); err != nil {
		return fmt.Errorf("store tps: %w", err)
	}
	s.metrics.SetTPS(chain, tps)
	s.logger.Info("calculated tps",
		zap.String("chain", string(chain)),
		zap.Float64("tps", tps))
	return nil
}

// chainTPS walks backward from the chain's head summing transaction counts
// until it leaves the trailing week or runs out of local history. The
// boundary block contributes its timestamp but not its transactions.
func (s *CalculatorService) chainTPS(ctx context.Context, chain model.Chain) (float64, error) {
	head, exists, err := s.store.HighestBlockNumber(ctx, chain)
	if err != nil {
		return 0, fmt.Errorf("highest block number: %w", err)
	}
	if !exists {
		return 0, errors.New("no imported head yet")
	}

	current, err := s.store.Block(ctx, chain, head)
	if err != nil {
		return 0, fmt.Errorf("load block %d: %w", head, err)
	}
	if current == nil {
		return 0, fmt.Errorf("head block %d missing from store", head)
	}

	latestTimestamp := current.Timestamp
	windowFloor, err := safe.SubUint64(latestTimestamp, tpsWindowSeconds)
	if err != nil {
		return 0, fmt.Errorf("window floor below epoch: %w", err)
	}

	var totalTxs uint64
	var initTimestamp uint64
	for {
		prevNumber, ok := current.PrevBlockNumber()
		if !ok {
			initTimestamp = current.Timestamp
			break
		}

		prev, err := s.store.Block(ctx, chain, prevNumber)
		if err != nil {
			return 0, fmt.Errorf("load block %d: %w", prevNumber, err)
		}
		if prev == nil {
			initTimestamp = current.Timestamp
			break
		}

		totalTxs, err = safe.AddUint64(totalTxs, current.NumTxs)
		if err != nil {
			return 0, fmt.Errorf("sum transactions: %w", err)
		}

		if prev.Timestamp > current.Timestamp {
			s.logger.Warn("non-monotonic block timestamps",
				zap.String("chain", string(chain)),
				zap.Uint64("number", current.BlockNumber),
				zap.Uint64("timestamp", current.Timestamp),
				zap.Uint64("prev_timestamp", prev.Timestamp))
		}

		if prev.Timestamp <= windowFloor || prevNumber == 0 {
			initTimestamp = prev.Timestamp
			break
		}
		current = prev
	}

	totalSeconds, err := safe.SubUint64(latestTimestamp, initTimestamp)
	if err != nil {
		return 0, fmt.Errorf("window duration: %w", err)
	}
	seconds, err := safe.Uint32(totalSeconds)
	if err != nil {
		return 0, fmt.Errorf("window duration: %w", err)
	}
	txs, err := safe.Uint32(totalTxs)
	if err != nil {
		return 0, fmt.Errorf("transaction count: %w", err)
	}

	tps := float64(txs) / float64(seconds)
	if math.IsNaN(tps) || math.IsInf(tps, 0) {
		tps = 0.0
	}
	return tps, nil
}
