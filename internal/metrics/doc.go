// Package metrics records per-route request statistics for the native server.
//
// Metrics implements router.Observer and tracks:
//   - Request counts per route
//   - Response times with percentile calculations (P50, P95, P99)
//   - HTTP status code distribution
//
// Unmapped paths are folded into a single "unmatched" route so the number of
// tracked series stays bounded.
//
// Example usage:
//
//	m := metrics.NewMetrics()
//	r, err := router.New(logger, routes, router.WithObserver(m))
//
//	// Serve the snapshot on a separate listener
//	mux := http.NewServeMux()
//	mux.HandleFunc("/metrics", m.Handler())
//
// Storage is guarded by a sync.RWMutex and safe for concurrent use.
package metrics
