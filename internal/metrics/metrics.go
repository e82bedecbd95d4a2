package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RPCCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "vesting_rpc_calls_total", Help: "Ledger RPC calls issued"},
		[]string{"method", "status"},
	)
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "vesting_transactions_total", Help: "Transactions built by the CLI"},
		[]string{"command", "status"},
	)
	ComputeUnitsEstimated = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vesting_compute_units_estimated",
			Help:    "Compute unit limits set from simulation",
			Buckets: prometheus.ExponentialBuckets(1_000, 2, 12),
		},
	)
)

func init() {
	prometheus.MustRegister(RPCCallsTotal, TransactionsTotal, ComputeUnitsEstimated)
}

// ObserveRPC counts one RPC call by outcome.
func ObserveRPC(method string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	RPCCallsTotal.WithLabelValues(method, status).Inc()
}

// WriteFile dumps the default registry in the node_exporter textfile format.
// A CLI run is too short-lived to be scraped, so the counters are written on exit instead.
func WriteFile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
