package metrics

import (
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"
)

var (
	ingesterProcessHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "process_height_total",
		Help:      "Count of processed block heights.",
	}, []string{"network", "status"})

	ingesterProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of processing a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "last_processed_height",
		Help:      "Highest block height processed successfully.",
	}, []string{"network"})

	ingesterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "flush_total",
		Help:      "Count of transaction batch flushes.",
	}, []string{"network", "status"})

	ingesterFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "flush_size",
		Help:      "Number of transactions per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	ingesterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "flush_duration_seconds",
		Help:      "Duration of flushing a transaction batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Ingester tracks metrics for the block ingestion pipeline.
type Ingester struct {
	network string
	last    *atomic.Uint64
}

func NewIngester(network model.Network) *Ingester {
	return &Ingester{network: orUnknown(string(network)), last: atomic.NewUint64(0)}
}

// ObserveProcessHeight records processing of a single height.
func (m Ingester) ObserveProcessHeight(err error, height uint64, started time.Time) {
	s := status(err)
	ingesterProcessHeightTotal.WithLabelValues(m.network, s).Inc()
	ingesterProcessHeightDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	for {
		last := m.last.Load()
		if height <= last && last != 0 {
			return
		}
		if m.last.CompareAndSwap(last, height) {
			ingesterLastHeight.WithLabelValues(m.network).Set(float64(height))
			return
		}
	}
}

// ObserveFlush records a batch flush to the ledger.
func (m Ingester) ObserveFlush(err error, transactions int, started time.Time) {
	s := status(err)
	ingesterFlushTotal.WithLabelValues(m.network, s).Inc()
	ingesterFlushDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	ingesterFlushSize.WithLabelValues(m.network).Observe(float64(transactions))
}
