package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	webhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Total number of payment webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)

	webhookProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront_orders",
			Subsystem: "webhook",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of webhook processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "checkout",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by payment method and result",
		},
		[]string{"method", "result"},
	)

	clientPaymentCallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "checkout",
			Name:      "client_callbacks_total",
			Help:      "Total number of payment UI callbacks by kind",
		},
		[]string{"kind"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		webhookEventsTotal,
		webhookProcessingDuration,
		checkoutsTotal,
		clientPaymentCallbacks,
	)
}
