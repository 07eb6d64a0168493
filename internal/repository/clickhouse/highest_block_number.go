package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

// HighestBlockNumber returns the chain's head pointer; false when the chain
// has never completed an import pass.
func (r *Repository) HighestBlockNumber(ctx context.Context, chain model.Chain) (_ uint64, _ bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("highest_block_number", chain, err, start)
	}()

	const query = `
SELECT number
FROM chain_heads FINAL
WHERE chain = ?`

	rows, err := r.conn.Query(ctx, query, chain)
	if err != nil {
		return 0, false, fmt.Errorf("query highest block number: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, false, fmt.Errorf("iterate highest block number: %w", err)
		}
		return 0, false, nil
	}

	var number uint64
	if err = rows.Scan(&number); err != nil {
		return 0, false, fmt.Errorf("scan highest block number: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate highest block number: %w", err)
	}

	return number, true, nil
}

// StoreHighestBlockNumber advances the chain's head pointer.
func (r *Repository) StoreHighestBlockNumber(ctx context.Context, chain model.Chain, number uint64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("store_highest_block_number", chain, err, start)
	}()

	const query = `
INSERT INTO chain_heads (chain, number)
VALUES (?, ?)`

	if err = r.conn.Exec(ctx, query, chain, number); err != nil {
		return fmt.Errorf("insert highest block number: %w", err)
	}
	return nil
}
