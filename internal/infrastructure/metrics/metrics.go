// Package metrics exposes Prometheus metrics for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcome labels.
const (
	OutcomeOK               = "ok"
	OutcomeInvalidLocation  = "invalid_location"
	OutcomeNoData           = "no_data"
	OutcomeComputationError = "computation_error"
	OutcomeBadRequest       = "bad_request"
)

type Provider struct {
	reg *prometheus.Registry

	searchesTotal  *prometheus.CounterVec
	searchResults  prometheus.Histogram
	searchDuration prometheus.Histogram
}

func New() *Provider {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	p := &Provider{
		reg: reg,
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "antivenom_searches_total",
				Help: "Nearest-center searches by outcome.",
			},
			[]string{"outcome"},
		),
		searchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "antivenom_search_results",
				Help:    "Number of centers returned per successful search.",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
			},
		),
		searchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "antivenom_search_duration_seconds",
				Help:    "Wall time of the search use case.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(p.searchesTotal, p.searchResults, p.searchDuration)
	return p
}

func (p *Provider) ObserveSearch(outcome string, resultCount int, seconds float64) {
	p.searchesTotal.WithLabelValues(outcome).Inc()
	p.searchDuration.Observe(seconds)
	if outcome == OutcomeOK {
		p.searchResults.Observe(float64(resultCount))
	}
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

func (p *Provider) Register(cs ...prometheus.Collector) {
	for _, c := range cs {
		p.reg.MustRegister(c)
	}
}
