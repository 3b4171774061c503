package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "estimator"

var (
	Calculations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calculations_total",
		Help:      "Calculator runs by assembly kind.",
	}, []string{"kind"})

	EstimationsAdded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimations_added_total",
		Help:      "Estimations appended to sessions.",
	})

	DraftInvoicesBuilt = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "draft_invoices_built_total",
		Help:      "Draft invoices assembled from sessions.",
	})

	UnresolvedMaterials = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unresolved_materials_total",
		Help:      "Materials that matched no catalog product and became placeholder lines.",
	})

	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(Calculations, EstimationsAdded, DraftInvoicesBuilt, UnresolvedMaterials, RequestDuration)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
