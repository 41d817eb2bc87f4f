package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa os coletores HTTP expostos em /metrics
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registra os coletores no registerer informado
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ads_dashboard",
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota, método e status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ads_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	reg.MustRegister(m.requests, m.duration)
	return m
}

// Middleware mede contagem e latência de cada requisição
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			route := routeLabel(r.URL.Path)
			m.requests.WithLabelValues(route, r.Method, strconv.Itoa(lrw.statusCode)).Inc()
			m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

// routeLabel corta o caminho no recurso para não criar um label por id
func routeLabel(path string) string {
	if !isAPIPath(path) {
		if path == "/healthcheck" || path == "/metrics" {
			return path
		}
		return "other"
	}

	parts := strings.SplitN(strings.TrimPrefix(path, apiPrefix+"/"), "/", 3)
	switch {
	case parts[0] == "":
		return apiPrefix
	case len(parts) == 1:
		return apiPrefix + "/" + parts[0]
	case parts[0] == "auth" || parts[0] == "dashboard":
		return apiPrefix + "/" + parts[0] + "/" + parts[1]
	default:
		return apiPrefix + "/" + parts[0] + "/:id"
	}
}
