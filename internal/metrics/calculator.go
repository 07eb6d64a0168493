package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

var (
	calculateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse7000",
		Subsystem: "calculator",
		Name:      "runs_total",
		Help:      "Count of per-chain TPS calculations.",
	}, []string{"chain", "status"})

	calculateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainpulse7000",
		Subsystem: "calculator",
		Name:      "run_duration_seconds",
		Help:      "Duration of per-chain TPS calculations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	tpsValue = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainpulse7000",
		Subsystem: "calculator",
		Name:      "tps",
		Help:      "Last computed transactions per second per chain.",
	}, []string{"chain"})
)

// Calculator tracks metrics for the TPS calculation pipeline.
type Calculator struct{}

// NewCalculator constructs a Calculator metrics collector.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// ObserveRun records the outcome and duration of one chain's calculation.
func (m Calculator) ObserveRun(chain model.Chain, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	calculateTotal.WithLabelValues(string(chain), status).Inc()
	calculateDuration.WithLabelValues(string(chain), status).
		Observe(time.Since(started).Seconds())
}

// SetTPS publishes the freshly computed TPS value for a chain.
func (m Calculator) SetTPS(chain model.Chain, tps float64) {
	tpsValue.WithLabelValues(string(chain)).Set(tps)
}
