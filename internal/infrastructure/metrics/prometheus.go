// Package metrics contadores Prometheus del caixa y del servidor HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Styllo-POS/internal/application/cashier"
)

var _ cashier.Metrics = (*Registry)(nil)

// Registry agrupa los colectores en un registro propio (no el global).
type Registry struct {
	reg       *prometheus.Registry
	summaries prometheus.Counter
	closings  *prometheus.CounterVec
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

// New registra los colectores del proceso, de Go y de negocio.
func New(namespace string) *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		summaries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cash_summaries_total",
			Help:      "Resumos de caixa calculados.",
		}),
		closings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cash_closings_total",
			Help:      "Fechamentos registrados por status.",
		}, []string{"status"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP por método, rota e status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latência das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.summaries, r.closings, r.requests, r.latency,
	)
	return r
}

func (r *Registry) SummaryComputed() { r.summaries.Inc() }

func (r *Registry) ClosingRecorded(status string) { r.closings.WithLabelValues(status).Inc() }

// ObserveRequest registra una petición terminada. route es el patrón, no la URL.
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler expone el registro en formato texto.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer para tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
