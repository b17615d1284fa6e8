package metrics

import (
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerCreateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "create_total",
		Help:      "Count of transaction batch creations.",
	}, []string{"network", "status"})

	ledgerCreateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "create_duration_seconds",
		Help:      "Duration of persisting and linking a transaction batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ledgerCreateSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "create_batch_size",
		Help:      "Number of transactions per creation batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	ledgerRemoveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "remove_total",
		Help:      "Count of transaction removals.",
	}, []string{"network", "status"})

	ledgerRemoveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "remove_duration_seconds",
		Help:      "Duration of transaction removals.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ledgerLinkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "link_transitions_total",
		Help:      "Count of transactions reaching a lifecycle state.",
	}, []string{"network", "state"})
)

// Ledger tracks metrics for the transaction ledger.
type Ledger struct {
	network string
}

func NewLedger(network model.Network) *Ledger {
	return &Ledger{network: orUnknown(string(network))}
}

// ObserveCreate records a creation batch outcome, size and duration.
func (m Ledger) ObserveCreate(err error, transactions int, started time.Time) {
	s := status(err)
	ledgerCreateTotal.WithLabelValues(m.network, s).Inc()
	ledgerCreateDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	ledgerCreateSize.WithLabelValues(m.network).Observe(float64(transactions))
}

// ObserveRemove records a removal outcome and duration.
func (m Ledger) ObserveRemove(err error, started time.Time) {
	s := status(err)
	ledgerRemoveTotal.WithLabelValues(m.network, s).Inc()
	ledgerRemoveDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveLink counts links transactions that entered the given state.
func (m Ledger) ObserveLink(state model.LinkState, links int) {
	if links <= 0 {
		return
	}
	ledgerLinkTotal.WithLabelValues(m.network, string(state)).Add(float64(links))
}
