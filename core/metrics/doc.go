// Package metrics declares the Prometheus collectors of the synchronizer.
//
// Collectors are registered on the default registry at init through
// promauto and exposed by the HTTP server on /metrics.
package metrics
