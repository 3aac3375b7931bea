// SPDX-License-Identifier: MIT

package encoder

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultClusters is K when WithClusters is not given.
	DefaultClusters = 1

	// DefaultWorkers computes rows sequentially.
	DefaultWorkers = 1

	// DefaultName is the TSPLIB NAME when WithName is not given.
	DefaultName = "tspk"

	// rowsPerWorker sizes the in-flight window of concurrently computed rows.
	rowsPerWorker = 4
)

// Option configures an Encoder.
type Option func(*options)

type options struct {
	clusters int
	workers  int
	name     string
}

func defaultOptions() options {
	return options{
		clusters: DefaultClusters,
		workers:  DefaultWorkers,
		name:     DefaultName,
	}
}

// WithClusters sets K, the number of dummy nodes (and clusters). Validated by New.
func WithClusters(k int) Option {
	return func(o *options) { o.clusters = k }
}

// WithWorkers sets how many rows are computed concurrently. The output is
// identical for any value. Validated by New.
func WithWorkers(w int) Option {
	return func(o *options) { o.workers = w }
}

// WithName sets the TSPLIB NAME field.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}
