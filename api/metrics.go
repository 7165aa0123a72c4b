package api

import (
	"strategyalign/internal/domain"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is a private prometheus registry so several routers can coexist
// in one process
type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	Analyses        *prometheus.CounterVec
	Holdings        prometheus.Histogram
	UnmatchedRatio  prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "strategyalign_request_duration_seconds",
				Help:    "Duration of api requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
			[]string{"route", "status"},
		),

		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strategyalign_analyses_total",
				Help: "Completed alignment runs by weight source",
			},
			[]string{"weight_source"},
		),

		Holdings: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "strategyalign_holdings",
				Help:    "Joined holdings per alignment run",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),

		UnmatchedRatio: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "strategyalign_unmatched_ratio",
				Help:    "Share of holdings with no reference row (0.0 to 1.0)",
				Buckets: prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
	}

	m.Registry.MustRegister(m.RequestDuration, m.Analyses, m.Holdings, m.UnmatchedRatio)
	return m
}

func (m *Metrics) ObserveRequest(route string, status int, seconds float64) {
	m.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(seconds)
}

func (m *Metrics) ObserveResult(result domain.AlignmentResult) {
	m.Analyses.WithLabelValues(string(result.WeightSource)).Inc()
	m.Holdings.Observe(float64(result.TotalHoldings))
	if result.TotalHoldings > 0 {
		m.UnmatchedRatio.Observe(float64(len(result.Unmatched)) / float64(result.TotalHoldings))
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
