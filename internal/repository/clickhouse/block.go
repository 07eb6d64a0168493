package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

// Block loads one stored block, or nil when the (chain, number) key was
// never written.
func (r *Repository) Block(ctx context.Context, chain model.Chain, number uint64) (_ *model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block", chain, err, start)
	}()

	const query = `
SELECT number, timestamp, num_txs, hash, parent_hash
FROM blocks FINAL
WHERE chain = ? AND number = ?`

	rows, err := r.conn.Query(ctx, query, chain, number)
	if err != nil {
		return nil, fmt.Errorf("query block: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate block: %w", err)
		}
		return nil, nil
	}

	block := model.Block{Chain: chain}
	if err = rows.Scan(&block.BlockNumber, &block.Timestamp, &block.NumTxs, &block.Hash, &block.ParentHash); err != nil {
		return nil, fmt.Errorf("scan block: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block: %w", err)
	}

	return &block, nil
}

// StoreBlock upserts a block keyed by (chain, number). Writing a different
// version of an existing key is the reorg-repair path, not an error.
func (r *Repository) StoreBlock(ctx context.Context, block model.Block) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("store_block", block.Chain, err, start)
	}()

	const query = `
INSERT INTO blocks (chain, number, timestamp, num_txs, hash, parent_hash)
VALUES (?, ?, ?, ?, ?, ?)`

	if err = r.conn.Exec(ctx, query,
		block.Chain,
		block.BlockNumber,
		block.Timestamp,
		block.NumTxs,
		block.Hash,
		block.ParentHash,
	); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}
