package polykeymap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordLink is called after each link operation.
	RecordLink(duration time.Duration, err error)

	// RecordErase is called after each erase operation, whether by key or
	// via an iterator.
	RecordErase(duration time.Duration, err error)

	// RecordLookup is called after each At/Value resolution.
	RecordLookup(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error) {}
func (NoopMetricsCollector) RecordLink(time.Duration, error)   {}
func (NoopMetricsCollector) RecordErase(time.Duration, error)  {}
func (NoopMetricsCollector) RecordLookup(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	LinkCount        atomic.Int64
	LinkErrors       atomic.Int64
	EraseCount       atomic.Int64
	EraseErrors      atomic.Int64
	LookupCount      atomic.Int64
	LookupErrors     atomic.Int64
	LookupTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordLink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLink(duration time.Duration, err error) {
	b.LinkCount.Add(1)
	if err != nil {
		b.LinkErrors.Add(1)
	}
}

// RecordErase implements MetricsCollector.
func (b *BasicMetricsCollector) RecordErase(duration time.Duration, err error) {
	b.EraseCount.Add(1)
	if err != nil {
		b.EraseErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, err error) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LookupErrors.Add(1)
	}
}
