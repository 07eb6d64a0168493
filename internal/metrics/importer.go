// Package metrics exposes prometheus collectors for the import and
// calculation pipelines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

var (
	importPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse7000",
		Subsystem: "importer",
		Name:      "pass_total",
		Help:      "Count of import passes per chain.",
	}, []string{"chain", "status"})

	importPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainpulse7000",
		Subsystem: "importer",
		Name:      "pass_duration_seconds",
		Help:      "Duration of import passes.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"chain", "status"})

	importBlocksStoredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse7000",
		Subsystem: "importer",
		Name:      "blocks_stored_total",
		Help:      "Count of blocks written during reconciliation walks.",
	}, []string{"chain"})

	importReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse7000",
		Subsystem: "importer",
		Name:      "reorgs_detected_total",
		Help:      "Count of parent hash mismatches found while walking backward.",
	}, []string{"chain"})
)

// Importer tracks metrics for one chain's import pipeline.
type Importer struct {
	chain model.Chain
}

// NewImporter constructs an Importer metrics collector.
func NewImporter(chain model.Chain) *Importer {
	if chain == "" {
		chain = "unknown"
	}
	return &Importer{chain: chain}
}

// ObservePass records the outcome and duration of one import pass.
func (m Importer) ObservePass(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	importPassTotal.WithLabelValues(string(m.chain), status).Inc()
	importPassDuration.WithLabelValues(string(m.chain), status).
		Observe(time.Since(started).Seconds())
}

// ObserveBlockStored counts one block written during a walk.
func (m Importer) ObserveBlockStored() {
	importBlocksStoredTotal.WithLabelValues(string(m.chain)).Inc()
}

// ObserveReorg counts one detected reorg.
func (m Importer) ObserveReorg() {
	importReorgsTotal.WithLabelValues(string(m.chain)).Inc()
}
