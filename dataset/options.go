// SPDX-License-Identifier: MIT

package dataset

import "math"

// DefaultSentinel marks a missing measurement in the text encoding. Every
// real value in a well-formed file is strictly below it.
const DefaultSentinel = 1000.0

// DefaultMissingToken is written in place of a missing value by Write.
const DefaultMissingToken = "0"

// Option configures Load, FromRows and Write.
type Option func(*options)

type options struct {
	sentinel     float64
	missingToken string
}

func defaultOptions() options {
	return options{
		sentinel:     DefaultSentinel,
		missingToken: DefaultMissingToken,
	}
}

// WithSentinel overrides the missing-value threshold. Values >= s are missing.
// It panics on a non-finite or non-positive s (programmer error).
func WithSentinel(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		panic(ErrSentinel)
	}
	return func(o *options) { o.sentinel = s }
}

// WithMissingToken sets the token Write emits for a missing cell.
func WithMissingToken(tok string) Option {
	return func(o *options) { o.missingToken = tok }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
