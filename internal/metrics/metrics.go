// Package metrics holds the Prometheus collectors of the listener. A nil
// *Metrics is valid and records nothing, so components can run without
// instrumentation in tests.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sui_wallet_listener"

type Metrics struct {
	rpcCallsTotal   *prometheus.CounterVec
	rpcCallDuration *prometheus.HistogramVec

	subscriptionEventsTotal *prometheus.CounterVec
	subscriptionErrorsTotal *prometheus.CounterVec
	activeSubscriptions     prometheus.Gauge

	detailFetchFailuresTotal prometheus.Counter
	reportsTotal             *prometheus.CounterVec
	reportDeliveriesTotal    *prometheus.CounterVec

	withdrawalsTotal *prometheus.CounterVec

	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors. If registry is nil,
// prometheus.DefaultRegisterer is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		rpcCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_calls_total",
				Help:      "Total number of Sui JSON-RPC calls by method and status",
			},
			[]string{"method", "status"},
		),
		rpcCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_call_duration_seconds",
				Help:      "Duration of Sui JSON-RPC calls in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method"},
		),
		subscriptionEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "subscription_events_total",
				Help:      "Total number of transaction events received per subscription filter",
			},
			[]string{"filter"},
		),
		subscriptionErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "subscription_errors_total",
				Help:      "Total number of subscription stream errors per subscription filter",
			},
			[]string{"filter"},
		),
		activeSubscriptions: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_subscriptions",
				Help:      "Number of currently open transaction subscriptions",
			},
		),
		detailFetchFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "detail_fetch_failures_total",
				Help:      "Total number of transaction detail fetches that failed",
			},
		),
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reports_total",
				Help:      "Total number of transaction reports produced by type and status",
			},
			[]string{"type", "status"},
		),
		reportDeliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_deliveries_total",
				Help:      "Total number of report deliveries by sink and result",
			},
			[]string{"sink", "result"},
		),
		withdrawalsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "withdrawals_total",
				Help:      "Total number of withdrawal attempts by result",
			},
			[]string{"result"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
			[]string{"handler", "method", "status"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status"},
		),
	}
}

func (m *Metrics) RecordRPCCall(method string, err error, duration float64) {
	if m == nil {
		return
	}
	m.rpcCallsTotal.WithLabelValues(method, resultLabel(err)).Inc()
	m.rpcCallDuration.WithLabelValues(method).Observe(duration)
}

func (m *Metrics) RecordSubscriptionEvent(filter string) {
	if m == nil {
		return
	}
	m.subscriptionEventsTotal.WithLabelValues(filter).Inc()
}

func (m *Metrics) RecordSubscriptionError(filter string) {
	if m == nil {
		return
	}
	m.subscriptionErrorsTotal.WithLabelValues(filter).Inc()
}

func (m *Metrics) SetActiveSubscriptions(n int) {
	if m == nil {
		return
	}
	m.activeSubscriptions.Set(float64(n))
}

func (m *Metrics) RecordDetailFetchFailure() {
	if m == nil {
		return
	}
	m.detailFetchFailuresTotal.Inc()
}

func (m *Metrics) RecordReport(txType, status string) {
	if m == nil {
		return
	}
	m.reportsTotal.WithLabelValues(txType, status).Inc()
}

func (m *Metrics) RecordDelivery(sink string, err error) {
	if m == nil {
		return
	}
	m.reportDeliveriesTotal.WithLabelValues(sink, resultLabel(err)).Inc()
}

func (m *Metrics) RecordWithdrawal(err error) {
	if m == nil {
		return
	}
	m.withdrawalsTotal.WithLabelValues(resultLabel(err)).Inc()
}

func (m *Metrics) RecordHTTPRequest(handler, method string, statusCode int, duration float64) {
	if m == nil {
		return
	}
	status := statusCodeToString(statusCode)
	m.httpRequestDuration.WithLabelValues(handler, method, status).Observe(duration)
	m.httpRequestsTotal.WithLabelValues(handler, method, status).Inc()
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func statusCodeToString(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}
