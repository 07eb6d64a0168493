package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

// StoreTPS persists the latest computed TPS value for a chain.
func (r *Repository) StoreTPS(ctx context.Context, chain model.Chain, tps float64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("store_tps", chain, err, start)
	}()

	const query = `
INSERT INTO chain_tps (chain, tps)
VALUES (?, ?)`

	if err = r.conn.Exec(ctx, query, chain, tps); err != nil {
		return fmt.Errorf("insert tps: %w", err)
	}
	return nil
}
