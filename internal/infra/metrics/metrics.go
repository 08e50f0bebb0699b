package metrics

import (
	"net/http"
	"strconv"
	"time"

	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotelfastbill"

// Metrics owns its registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	bookingsCreated  prometheus.Counter
	bookingsRejected *prometheus.CounterVec
	pricingFailures  prometheus.Counter
	bookingTotal     prometheus.Histogram
	billedHours      prometheus.Histogram
	invoicesIssued   *prometheus.CounterVec
}

var _ shared.BillingRecorder = (*Metrics)(nil)

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings accepted.",
		}),
		bookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Bookings refused by reason.",
		}, []string{"reason"}),
		pricingFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_failures_total",
			Help:      "Stored bookings that could not be priced on read.",
		}),
		bookingTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_total_vnd",
			Help:      "Total charge of accepted bookings.",
			Buckets:   []float64{60_000, 100_000, 200_000, 500_000, 1_000_000, 2_000_000},
		}),
		billedHours: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_billed_hours",
			Help:      "Billable hours of accepted bookings.",
			Buckets:   []float64{1, 2, 3, 6, 12, 24, 48},
		}),
		invoicesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_issued_total",
			Help:      "Invoices rendered by format.",
		}, []string{"format"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.bookingsCreated,
		m.bookingsRejected,
		m.pricingFailures,
		m.bookingTotal,
		m.billedHours,
		m.invoicesIssued,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) BookingCreated(p pricing.PriceBreakdown) {
	m.bookingsCreated.Inc()
	m.bookingTotal.Observe(float64(p.Total.Int64()))
	m.billedHours.Observe(float64(p.Hours))
}

func (m *Metrics) BookingRejected(reason string) {
	m.bookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) PricingFailed() {
	m.pricingFailures.Inc()
}

func (m *Metrics) InvoiceIssued(format string) {
	m.invoicesIssued.WithLabelValues(format).Inc()
}
