// Package metrics declares the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PaymentsInitiated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "wordpay",
	Name:      "payments_initiated_total",
	Help:      "Payment initiations by gateway outcome (settled, pending, rejected, unreachable).",
}, []string{"outcome"})

var GatewayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "wordpay",
	Name:      "gateway_request_duration_seconds",
	Help:      "Latency of push-payment submissions.",
	Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
}, []string{"outcome"})

var Settlements = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "wordpay",
	Name:      "settlements_total",
	Help:      "Settlement attempts by path and result (applied, duplicate).",
}, []string{"path", "status", "result"})

var Callbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "wordpay",
	Name:      "callbacks_total",
	Help:      "Inbound provider callbacks by handling result.",
}, []string{"result"})

var CallbackQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "wordpay",
	Name:      "callback_queue_depth",
	Help:      "Callbacks waiting for a worker.",
})

var WordsCredited = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "wordpay",
	Name:      "words_credited_total",
	Help:      "Words added to user balances by settlements.",
})

var WordsConsumed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "wordpay",
	Name:      "words_consumed_total",
	Help:      "Words deducted from user balances.",
})
