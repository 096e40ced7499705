// Package metrics exposes Prometheus instrumentation for the construction
// pipeline, plus a lightweight runtime memory probe used by verbose logging.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/partcalc/internal/denumerant"
)

// BuildMetrics holds the construction-pipeline instruments on a private
// registry, so repeated instantiation in tests never trips duplicate
// registration on the global default registry.
type BuildMetrics struct {
	registry *prometheus.Registry

	kernelInvocations *prometheus.CounterVec
	partsIncorporated prometheus.Counter
	partBuildSeconds  prometheus.Histogram
}

// NewBuildMetrics creates the instrument set together with the standard Go
// runtime and process collectors.
func NewBuildMetrics() *BuildMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &BuildMetrics{
		registry: reg,
		kernelInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "partcalc_kernel_invocations_total",
			Help: "Update-kernel applications during construction, by kernel strategy.",
		}, []string{"kernel"}),
		partsIncorporated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "partcalc_parts_incorporated_total",
			Help: "Restriction-list elements fully incorporated into a representation.",
		}),
		partBuildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "partcalc_part_build_seconds",
			Help:    "Wall time spent incorporating one restriction-list element.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}),
	}
	reg.MustRegister(m.kernelInvocations, m.partsIncorporated, m.partBuildSeconds)
	return m
}

// Handler returns the HTTP handler serving this instrument set in the
// Prometheus exposition format.
func (m *BuildMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Observer returns a construction observer that feeds these instruments.
func (m *BuildMetrics) Observer() denumerant.Observer {
	return buildObserver{m: m}
}

type buildObserver struct {
	m *BuildMetrics
}

func (o buildObserver) KernelInvoked(kind denumerant.KernelKind) {
	o.m.kernelInvocations.WithLabelValues(kind.String()).Inc()
}

func (o buildObserver) PartIncorporated(_ int64, _ int, d time.Duration) {
	o.m.partsIncorporated.Inc()
	o.m.partBuildSeconds.Observe(d.Seconds())
}
