package storage

import "github.com/prometheus/client_golang/prometheus"

// SnapshotWrites counts successful snapshot saves. Every mutation writes the
// full snapshot, so this is also the total number of mutations applied.
//
// The router registers it with the Prometheus registry together with the
// request metrics.
var SnapshotWrites = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "snapshot_writes_total",
		Help: "How many times the snapshot has been written to the store.",
	},
)
