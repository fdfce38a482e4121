package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CyclesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_update_cycles_total",
		Help: "Update cycles processed, by trigger",
	}, []string{"trigger"})
	CycleDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_update_cycle_duration_ms",
		Help:    "Update cycle duration in milliseconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 50, 100},
	})
	SelectionFallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_selection_fallbacks_total",
		Help: "Substitutions of the selected region by the country aggregate, by stage",
	}, []string{"stage"})
	ViewportFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_viewport_fallbacks_total",
		Help: "Selected regions rendered unzoomed because no geometry matched",
	})
	EmptyViewsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_empty_views_total",
		Help: "Views rendered with a no-data placeholder, by view",
	}, []string{"view"})
	SessionsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_sessions_created_total",
		Help: "Dashboard sessions created",
	})
)

func init() {
	prometheus.MustRegister(CyclesTotal)
	prometheus.MustRegister(CycleDurationMs)
	prometheus.MustRegister(SelectionFallbacksTotal)
	prometheus.MustRegister(ViewportFallbacksTotal)
	prometheus.MustRegister(EmptyViewsTotal)
	prometheus.MustRegister(SessionsCreatedTotal)
}

func Handler() http.Handler { return promhttp.Handler() }
