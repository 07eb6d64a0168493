package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

// initialSyncBlockLimit caps the very first walk on a chain with no local
// head pointer; a full backfill to genesis is not the importer's job.
const initialSyncBlockLimit = 100

// ImporterService reconciles one chain's local block history with the remote
// head. It walks backward from the head, overwriting stale rows, until it
// reconnects with verified local history or reaches genesis.
type ImporterService struct {
	logger  *zap.Logger
	chain   model.Chain
	client  ChainClient
	store   BlockStore
	metrics ImporterMetrics
	sleep   func(context.Context, time.Duration) error
}

// NewImporterService builds an ImporterService with dependencies.
func NewImporterService(
	chain model.Chain,
	client ChainClient,
	store BlockStore,
	metrics ImporterMetrics,
	logger *zap.Logger,
) (*ImporterService, error) {
	if metrics == nil {
		return nil, errors.New("importer metrics is required")
	}
	return &ImporterService{
		logger:  logger.With(zap.String("chain", string(chain))),
		chain:   chain,
		client:  client,
		store:   store,
		metrics: metrics,
		sleep:   jitteredSleep,
	}, nil
}

// Run performs one reconciliation pass and then waits out the chain's rescan
// delay. A failed pass leaves no partial state behind; the next attempt
// starts over from a fresh remote head.
func (s *ImporterService) Run(ctx context.Context) error {
	started := time.Now()
	err := s.pass(ctx)
	s.metrics.ObservePass(err, started)
	if err != nil {
		return fmt.Errorf("import %s: %w", s.chain, err)
	}
	return s.sleep(ctx, s.chain.RescanDelay())
}

func (s *ImporterService) pass(ctx context.Context) error {
	headRemote, err := s.client.HeadBlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("head block number: %w", err)
	}

	headLocal, haveLocal, err := s.store.HighestBlockNumber(ctx, s.chain)
	if err != nil {
		return fmt.Errorf("highest block number: %w", err)
	}

	if haveLocal && headLocal == headRemote {
		s.logger.Debug("no new blocks", zap.Uint64("head", headRemote))
		return nil
	}

	fields := []zap.Field{zap.Uint64("head_remote", headRemote)}
	if haveLocal {
		fields = append(fields, zap.Uint64("head_local", headLocal))
	}
	s.logger.Info("importing new blocks", fields...)

	stored := 0
	number := headRemote
	for {
		block, err := s.fetchBlock(ctx, number)
		if err != nil {
			return err
		}

		if err := s.store.StoreBlock(ctx, *block); err != nil {
			return fmt.Errorf("store block %d: %w", number, err)
		}
		s.metrics.ObserveBlockStored()
		stored++

		prevNumber, ok := block.PrevBlockNumber()
		if !ok {
			s.logger.Info("reached genesis")
			break
		}

		if !haveLocal && stored >= initialSyncBlockLimit {
			s.logger.Info("initial sync limit reached", zap.Int("blocks", stored))
			break
		}

		prev, err := s.store.Block(ctx, s.chain, prevNumber)
		if err != nil {
			return fmt.Errorf("load block %d: %w", prevNumber, err)
		}

		if prev != nil {
			if prev.Hash == block.ParentHash {
				if !haveLocal || prevNumber <= headLocal {
					s.logger.Debug("reached verified history", zap.Uint64("number", prevNumber))
					break
				}
				// A matching row above the head pointer means a prior pass
				// was interrupted before advancing it; keep walking.
			} else {
				s.metrics.ObserveReorg()
				s.logger.Warn("parent hash mismatch, repairing reorg",
					zap.Uint64("number", prevNumber),
					zap.String("stored_hash", prev.Hash),
					zap.String("parent_hash", block.ParentHash))
			}
		}

		if err := s.sleep(ctx, courtesyDelay); err != nil {
			return err
		}
		number = prevNumber
	}

	if err := s.store.StoreHighestBlockNumber(ctx, s.chain, headRemote); err != nil {
		return fmt.Errorf("store highest block number: %w", err)
	}

	s.logger.Info("pass complete",
		zap.Uint64("head", headRemote),
		zap.Int("blocks_stored", stored))

	return nil
}

// fetchBlock retries until the remote serves the block. A freshly announced
// head may not have propagated to the queried node yet.
func (s *ImporterService) fetchBlock(ctx context.Context, number uint64) (*model.Block, error) {
	for {
		block, err := s.client.BlockByNumber(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", number, err)
		}
		if block != nil {
			return block, nil
		}
		s.logger.Debug("block not available yet, retrying", zap.Uint64("number", number))
		if err := s.sleep(ctx, retryDelay); err != nil {
			return nil, err
		}
	}
}
