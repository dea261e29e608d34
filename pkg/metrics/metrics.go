package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	concretePlanner = "concrete_planner"

	estimatesCreatedTotal = "estimates_created_total"
	exportsRenderedTotal  = "exports_rendered_total"

	exportFormatLabel = "format"
)

var exportsRenderedLabels = []string{
	exportFormatLabel,
}

var estimatesCreatedTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: concretePlanner,
		Name:      estimatesCreatedTotal,
		Help:      "number of estimates created and stored",
	},
)

var exportsRenderedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: concretePlanner,
		Name:      exportsRenderedTotal,
		Help:      "number of bill-of-materials exports rendered, by format",
	},
	exportsRenderedLabels,
)

func IncreaseEstimatesCreatedTotal() {
	estimatesCreatedTotalMetric.Inc()
}

func IncreaseExportsRenderedTotal(format string) {
	labels := prometheus.Labels{
		exportFormatLabel: format,
	}
	exportsRenderedTotalMetric.With(labels).Inc()
}

func init() {
	prometheus.MustRegister(estimatesCreatedTotalMetric)
	prometheus.MustRegister(exportsRenderedTotalMetric)
}

// PrometheusMetricsHandler serves the default registry over HTTP.
type PrometheusMetricsHandler struct{}

func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{}
}

func (h *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.Handler()
}
