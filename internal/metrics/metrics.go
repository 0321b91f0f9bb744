// Package metrics exports service and report metrics for Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"WealthSentinel/internal/model"
)

const namespace = "wealth_sentinel"

// Metrics holds every collector on a private registry. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	reportsTotal    prometheus.Counter
	alertsTotal     *prometheus.CounterVec
	score           prometheus.Gauge
	netWorth        prometheus.Gauge
	fireProgress    prometheus.Gauge
	emergencyMonths prometheus.Gauge
}

// New creates the collectors and registers them.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		reportsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Reports computed by the scheduler.",
		}),
		alertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Alerts raised by the daily check, by kind.",
		}, []string{"kind"}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "freedom_score",
			Help:      "Financial freedom score of the last report (0-100).",
		}),
		netWorth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "net_worth",
			Help:      "Net worth of the last report.",
		}),
		fireProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fire_progress_percent",
			Help:      "Progress towards the FIRE number in the last report.",
		}),
		emergencyMonths: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "emergency_fund_months",
			Help:      "Months of expenses covered by cash in the last report.",
		}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.reportsTotal,
		m.alertsTotal,
		m.score,
		m.netWorth,
		m.fireProgress,
		m.emergencyMonths,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveReport updates the last-report gauges.
func (m *Metrics) ObserveReport(r *model.Report) {
	if m == nil {
		return
	}
	m.reportsTotal.Inc()
	m.score.Set(r.Score.Score)
	m.netWorth.Set(r.NetWorth)
	m.fireProgress.Set(r.FIRE.ProgressPercent)
	m.emergencyMonths.Set(r.EmergencyFund.Months)
}

// ObserveAlert counts a raised alert.
func (m *Metrics) ObserveAlert(a model.Alert) {
	if m == nil {
		return
	}
	m.alertsTotal.WithLabelValues(string(a.Kind)).Inc()
}
