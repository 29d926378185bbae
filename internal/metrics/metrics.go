// Package metrics exposes Prometheus counters for page activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profilo_page_renders_total",
		Help: "Rendered pages and fragments by content view and kind",
	}, []string{"content", "kind"})

	FilterChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profilo_filter_changes_total",
		Help: "Filter toggles by facet, and clears",
	}, []string{"facet"})

	CVExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profilo_cv_exports_total",
		Help: "CV export attempts by strategy and result",
	}, []string{"strategy", "result"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
