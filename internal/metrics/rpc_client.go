package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse7000",
		Subsystem: "rpc_client",
		Name:      "requests_total",
		Help:      "Count of chain RPC requests.",
	}, []string{"operation", "chain", "status"})

	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainpulse7000",
		Subsystem: "rpc_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of chain RPC requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

// RPCClient tracks metrics for chain RPC calls.
type RPCClient struct{}

// NewRPCClient creates an RPCClient metrics collector.
func NewRPCClient() *RPCClient {
	return &RPCClient{}
}

// Observe records duration and status of one RPC call.
func (m RPCClient) Observe(operation string, chain model.Chain, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if chain == "" {
		chain = "unknown"
	}
	rpcRequestsTotal.WithLabelValues(operation, string(chain), status).Inc()
	rpcRequestDuration.WithLabelValues(operation, string(chain), status).
		Observe(time.Since(started).Seconds())
}
