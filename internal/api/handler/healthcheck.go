package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Pinger verifica se o banco responde
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Healthcheck falhou ao pingar o banco")
			utils.WriteJSON(w, http.StatusServiceUnavailable, utils.Response{
				Success: false,
				Message: "banco de dados indisponível",
			})
			return
		}

		utils.WriteSuccess(w, http.StatusOK, map[string]string{
			"time": time.Now().Format(time.RFC3339),
		}, "")
	})
}

func MetricsHandler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
