package polykeymap

import (
	"github.com/KeXu001/polykey-map/model"
)

type options struct {
	logger          *Logger
	metrics         MetricsCollector
	pathKinds       []model.Kind
	initialCapacity int
}

// Option configures Map constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for mutating operations.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures operational metrics collection.
// If nil is passed, collection stays disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

// WithPathKinds pins every access path to one key domain. Once set, any
// key presented for a path with a different kind fails with
// ErrKindMismatch (or reads as absent on Contains). The number of kinds
// must equal the map's number of paths.
//
// Without this option a path accepts keys of any domain, matching plain
// per-path uniqueness.
func WithPathKinds(kinds ...model.Kind) Option {
	return func(o *options) {
		o.pathKinds = kinds
	}
}

// WithInitialCapacity pre-sizes the value store, the keyset registry and
// every path index for n records.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}
